package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/kerbaras/mangareader/pkg/data"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variables. A .env file in the working directory is loaded
// first. Nested keys use a double underscore: MANGAREADER_STORE__DRIVER
// sets store.driver.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading .env: %w", err)
	}

	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration as YAML, creating the directory.
func (c *Config) Save(path string) error {
	raw, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validDrivers = map[string]bool{
	data.DriverDuckDB: true,
	data.DriverSQLite: true,
	data.DriverRedis:  true,
	data.DriverMemory: true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Catalog.Location == "" {
		return fmt.Errorf("catalog.location is required")
	}
	if !validDrivers[c.Store.Driver] {
		return fmt.Errorf("invalid store.driver %q: must be one of duckdb, sqlite, redis, memory", c.Store.Driver)
	}
	switch c.Store.Driver {
	case data.DriverDuckDB, data.DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("store.path is required for %s", c.Store.Driver)
		}
	case data.DriverRedis:
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("store.redis_addr is required for redis")
		}
	}
	if c.PageConcurrency < 1 {
		return fmt.Errorf("page_concurrency must be at least 1")
	}
	return nil
}
