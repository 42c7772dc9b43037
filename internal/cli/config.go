package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// config mirrors the optional TOML file accepted by --config. Zero values
// mean "not set in the file": explicit flags always win, then the file, then
// the built-in defaults.
//
// Example file:
//
//	regions = 4
//	edge = 1
//	tolerance = 1e-9
//	format = "geojson"
type config struct {
	Regions   int     `toml:"regions"`
	Edge      int     `toml:"edge"`
	Tolerance float64 `toml:"tolerance"`
	Format    string  `toml:"format"`
}

// loadConfig reads and parses a TOML config file.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, err
	}

	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}
