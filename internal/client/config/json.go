package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/placeprep/ppclient/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// specified in whole seconds.
type jsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
	DatabasePath   string `json:"database_path"`
}

// parseJSON overlays Config with values loaded from a JSON file whose path
// comes from the -c/-config flags. When neither flag is given, nothing is
// loaded. Only fields present in the file override the current values.
//
// Intended usage is: defaults -> parseJSON -> parseFlags, where later stages
// override earlier ones.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlags()
	if path == "" {
		return
	}

	var jc jsonConfig

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.TimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.TimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
}
