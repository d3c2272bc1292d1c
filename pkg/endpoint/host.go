package endpoint

import "github.com/voyago/rides-go-sdk/pkg/config"

// The four base hosts the SDK ever talks to. No other host value is
// produced anywhere.
const (
	productionHost      = "https://api.voyago.com"
	productionChinaHost = "https://api.voyago.com.cn"
	sandboxHost         = "https://sandbox-api.voyago.com"
	sandboxChinaHost    = "https://sandbox-api.voyago.com.cn"
)

// Host resolves the base host from the sandbox flag and the region. It is
// evaluated fresh on every request so runtime configuration changes take
// effect immediately; nothing is cached.
func Host(cfg *config.Config) string {
	if cfg.Sandbox {
		if cfg.Region == config.RegionChina {
			return sandboxChinaHost
		}
		return sandboxHost
	}
	if cfg.Region == config.RegionChina {
		return productionChinaHost
	}
	return productionHost
}
