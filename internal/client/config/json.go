package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/clientportal/internal/flagx"
	"github.com/dmitrijs2005/clientportal/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "10s" or as integer nanoseconds. After parsing, values
// are copied into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerEndpointAddr    string         `json:"server_endpoint_addr"`
	DatabaseFile          string         `json:"database_file"`
	RequestTimeout        timex.Duration `json:"request_timeout"`
	ResubscribeMinBackoff timex.Duration `json:"resubscribe_min_backoff"`
	ResubscribeMaxBackoff timex.Duration `json:"resubscribe_max_backoff"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Behavior:
//   - Reads and unmarshals the JSON into JsonConfig.
//   - Copies known fields into the provided Config.
//   - Panics on read or unmarshal errors (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	// Resolve file path from flags.
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	cfg.DatabaseFile = jc.DatabaseFile
	cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	cfg.ResubscribeMinBackoff = time.Duration(jc.ResubscribeMinBackoff.Duration)
	cfg.ResubscribeMaxBackoff = time.Duration(jc.ResubscribeMaxBackoff.Duration)
}
