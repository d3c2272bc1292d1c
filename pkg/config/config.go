package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/voyago/rides-go-sdk/internal/common/core"
)

// Region selects which national domain family requests target.
type Region string

const (
	RegionDefault Region = "default"
	RegionChina   Region = "china"
)

// Config holds the runtime settings of the SDK. It is read, never mutated,
// by the request executor at the moment each request is built, so a change
// made while a request is in flight only affects requests built afterward.
type Config struct {
	ServerToken string
	Region      Region
	Sandbox     bool
	// Mostly used for log level.
	Development  bool
	RetryMode    core.RetryMode
	RetryMaxTime time.Duration
}

const defaultRetryMaxTime = 5 * time.Minute

var (
	regionMap = map[string]Region{
		"default": RegionDefault,
		"china":   RegionChina,
	}
	retryModeMap = map[string]core.RetryMode{
		"none":    core.None,
		"backoff": core.Backoff,
	}
)

// New returns a new Config with sensible defaults.
//
// The following environment variables are honored:
//
// - RIDES_SERVER_TOKEN: the server token sent in the Authorization header.
// - RIDES_REGION: the region to target. Defaults to "default". Valid values are "default", "china".
// - RIDES_SANDBOX: whether to route requests to the sandbox environment.
// - RIDES_DEVELOPMENT: whether to enable development mode.
// - RIDES_RETRY_MODE: the retry mode to use. Defaults to "none". Valid values are "none", "backoff".
// - RIDES_RETRY_MAX_TIME: the maximum time to spend retrying. Defaults to 5 minutes.
//
// None of them are required; the zero configuration targets the production
// default-region API without authentication.
func New() (*Config, error) {
	cfg := &Config{
		Region:       RegionDefault,
		RetryMode:    core.None,
		RetryMaxTime: defaultRetryMaxTime,
	}

	cfg.ServerToken = os.Getenv("RIDES_SERVER_TOKEN")

	if v := os.Getenv("RIDES_REGION"); v != "" {
		region, err := ParseRegion(v)
		if err != nil {
			return nil, fmt.Errorf("invalid RIDES_REGION: %w", err)
		}
		cfg.Region = region
	}

	if v := os.Getenv("RIDES_SANDBOX"); v != "" {
		cfg.Sandbox, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("RIDES_DEVELOPMENT"); v != "" {
		cfg.Development, _ = strconv.ParseBool(v)
	}

	if v := os.Getenv("RIDES_RETRY_MODE"); v != "" {
		retry, ok := retryModeMap[v]
		if !ok {
			fmt.Println("[ERROR] failed to set retry mode, disabling retries")
		} else {
			cfg.RetryMode = retry
		}
	}

	if v := os.Getenv("RIDES_RETRY_MAX_TIME"); v != "" {
		duration, err := time.ParseDuration(v)
		if err == nil {
			cfg.RetryMaxTime = duration
		} else {
			fmt.Println("[ERROR] failed to parse RIDES_RETRY_MAX_TIME, keeping the default")
		}
	}

	return cfg, nil
}

// ParseRegion converts a region name into a Region.
func ParseRegion(s string) (Region, error) {
	region, ok := regionMap[s]
	if !ok {
		return RegionDefault, fmt.Errorf("unknown region %q, valid values are \"default\", \"china\"", s)
	}
	return region, nil
}

// SetServerToken replaces the server token used for subsequent requests.
func (c *Config) SetServerToken(token string) {
	c.ServerToken = token
}

// SetRegion replaces the region used for subsequent requests.
func (c *Config) SetRegion(region Region) {
	c.Region = region
}

// SetSandbox toggles sandbox routing for subsequent requests.
func (c *Config) SetSandbox(sandbox bool) {
	c.Sandbox = sandbox
}

// RestoreDefaults resets the token, region and sandbox flag to their
// process-start defaults. Retry settings and development mode are left
// alone since they are operational knobs, not request routing state.
func (c *Config) RestoreDefaults() {
	c.ServerToken = ""
	c.Region = RegionDefault
	c.Sandbox = false
}
