package config

import "time"

// Config holds runtime settings for the ClientPortal CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - DatabaseFile: path of the local SQLite file holding persisted tokens.
//   - RequestTimeout: per-RPC deadline for unary calls.
//   - ResubscribeMinBackoff / ResubscribeMaxBackoff: bounds of the
//     exponential backoff used when the change stream drops.
//
// Units: durations are time.Duration values (e.g. 10*time.Second).
type Config struct {
	ServerEndpointAddr    string
	DatabaseFile          string
	RequestTimeout        time.Duration
	ResubscribeMinBackoff time.Duration
	ResubscribeMaxBackoff time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabaseFile = "portal.db"
	c.RequestTimeout = 10 * time.Second
	c.ResubscribeMinBackoff = 1 * time.Second
	c.ResubscribeMaxBackoff = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
