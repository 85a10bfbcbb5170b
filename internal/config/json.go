package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/piiguard/internal/flagx"
)

// parseJson overlays cfg with values from the JSON file named by -c/-config.
//
// Only keys present in the file are applied, so a partial file keeps earlier
// values for the rest. No flag means no file and no changes.
func parseJson(cfg *Config, args []string) error {
	jsonConfigFile := flagx.JsonConfigFlags(args)
	if jsonConfigFile == "" {
		return nil
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", jsonConfigFile, err)
	}
	return nil
}
