package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds tfrum configuration loaded from .tfrum.yaml. Command
// flags take precedence over config values.
type Config struct {
	Format        string   `yaml:"format"`
	Keywords      []string `yaml:"keywords"`
	HashiPrefixes []string `yaml:"hashi_prefixes"`
	Dedupe        string   `yaml:"dedupe"`
}

// Load searches for .tfrum.yaml or .tfrum.yml in the given directory
// and returns the parsed config. Returns an empty Config if no file is
// found.
func Load(dir string) (Config, error) {
	candidates := []string{
		filepath.Join(dir, ".tfrum.yaml"),
		filepath.Join(dir, ".tfrum.yml"),
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}

		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
		return cfg, nil
	}

	return Config{}, nil
}
