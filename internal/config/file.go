package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// loadFile merges the first config file found into c.
// An explicit NBA_SCRAPER_CONFIG path must exist; search paths are optional.
func (c *Config) loadFile() error {
	if explicit := os.Getenv(envConfigPath); explicit != "" {
		return c.loadFromFile(explicit)
	}
	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err == nil {
			return c.loadFromFile(path)
		}
	}
	return nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
