package cmd

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config overrides host behavior for testing or batch use, following
// vippsas-sqlcode/cli/cmd's yaml-file-beside-the-binary pattern. Precedence
// is flag > config file > built-in default; none of it changes language
// semantics, only how the host's Ponder/sleep primitive behaves.
type Config struct {
	SuppressSleep    bool    `yaml:"suppress_sleep"`
	MaxPonderSeconds float64 `yaml:"max_ponder_seconds"`
	LogLevel         string  `yaml:"log_level"`
}

// loadConfig reads path if it is non-empty, falling back to ./spellscript.yaml
// when present. A missing file at the default location is not an error.
func loadConfig(path string) (Config, error) {
	if path == "" {
		path = "spellscript.yaml"
		if _, err := os.Stat(path); err != nil {
			return Config{}, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
