// Package config loads the hgt command's YAML configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults.
const (
	DefaultTileDir   = "."
	DefaultCacheSize = 16
)

// Config represents the configuration file.
type Config struct {
	TileDir       string `yaml:"tile_dir,omitempty"`
	// CacheSize is the maximum number of open tiles.
	CacheSize     int    `yaml:"cache_size,omitempty"`
	// PageCacheSize is the page cache size in bytes per tile. Zero disables
	// the page cache.
	PageCacheSize int    `yaml:"page_cache_size,omitempty"`
	Cols          int    `yaml:"cols,omitempty"`
	Rows          int    `yaml:"rows,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		TileDir:   DefaultTileDir,
		CacheSize: DefaultCacheSize,
	}
}

// Load reads and parses the YAML configuration file at path. Unset fields
// take their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.TileDir == "" {
		cfg.TileDir = DefaultTileDir
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	return cfg, nil
}
