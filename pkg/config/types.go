package config

import "github.com/kerbaras/mangareader/pkg/data"

// Config is the top-level mangareader configuration, read from
// ~/.mangareader/config.yml and MANGAREADER_* environment variables.
type Config struct {
	Catalog         CatalogConfig `yaml:"catalog" koanf:"catalog"`
	Store           StoreConfig   `yaml:"store" koanf:"store"`
	Serve           ServeConfig   `yaml:"serve" koanf:"serve"`
	ExportDir       string        `yaml:"export_dir" koanf:"export_dir"`
	LogFile         string        `yaml:"log_file" koanf:"log_file"`
	PageConcurrency int           `yaml:"page_concurrency" koanf:"page_concurrency"`
}

// CatalogConfig says where the catalog document comes from: an http(s)
// URL, a JSON file or a directory of page images.
type CatalogConfig struct {
	Location string `yaml:"location" koanf:"location"`
	BaseURL  string `yaml:"base_url" koanf:"base_url"`
}

// StoreConfig selects the key-value store for unlocks and preferences.
type StoreConfig struct {
	Driver        string `yaml:"driver" koanf:"driver"`
	Path          string `yaml:"path" koanf:"path"`
	RedisAddr     string `yaml:"redis_addr" koanf:"redis_addr"`
	RedisPassword string `yaml:"redis_password" koanf:"redis_password"`
	RedisDB       int    `yaml:"redis_db" koanf:"redis_db"`
	RedisPrefix   string `yaml:"redis_prefix" koanf:"redis_prefix"`
}

// Options converts the section into data.StoreOptions.
func (s StoreConfig) Options() data.StoreOptions {
	return data.StoreOptions{
		Driver:        s.Driver,
		Path:          s.Path,
		RedisAddr:     s.RedisAddr,
		RedisPassword: s.RedisPassword,
		RedisDB:       s.RedisDB,
		RedisPrefix:   s.RedisPrefix,
	}
}

// ServeConfig configures the static catalog server.
type ServeConfig struct {
	Addr     string `yaml:"addr" koanf:"addr"`
	Root     string `yaml:"root" koanf:"root"`
	AllowAll bool   `yaml:"allow_all" koanf:"allow_all"`
}
