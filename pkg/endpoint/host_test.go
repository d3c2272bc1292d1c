package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voyago/rides-go-sdk/pkg/config"
)

func TestHostMatrix(t *testing.T) {
	tests := []struct {
		name    string
		sandbox bool
		region  config.Region
		host    string
	}{
		{"production default", false, config.RegionDefault, "https://api.voyago.com"},
		{"production china", false, config.RegionChina, "https://api.voyago.com.cn"},
		{"sandbox default", true, config.RegionDefault, "https://sandbox-api.voyago.com"},
		{"sandbox china", true, config.RegionChina, "https://sandbox-api.voyago.com.cn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Sandbox: tt.sandbox, Region: tt.region}
			assert.Equal(t, tt.host, Host(cfg))
		})
	}
}

func TestHostFollowsConfigChanges(t *testing.T) {
	cfg := &config.Config{Region: config.RegionDefault}
	assert.Equal(t, "https://api.voyago.com", Host(cfg))

	cfg.SetSandbox(true)
	assert.Equal(t, "https://sandbox-api.voyago.com", Host(cfg))

	cfg.SetRegion(config.RegionChina)
	assert.Equal(t, "https://sandbox-api.voyago.com.cn", Host(cfg))

	cfg.RestoreDefaults()
	assert.Equal(t, "https://api.voyago.com", Host(cfg))
}
