package config

import (
	"os"
	"path/filepath"

	"github.com/kerbaras/mangareader/pkg/data"
)

const (
	appDirName     = ".mangareader"
	configFileName = "config.yml"
	EnvPrefix      = "MANGAREADER_"
)

// HomeDir is ~/.mangareader, or ./.mangareader when there is no home.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return appDirName
	}
	return filepath.Join(home, appDirName)
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	return filepath.Join(HomeDir(), configFileName)
}

func DefaultConfig() *Config {
	dir := HomeDir()
	return &Config{
		Catalog: CatalogConfig{
			Location: filepath.Join("data", "manga-data.json"),
		},
		Store: StoreConfig{
			Driver:      data.DriverDuckDB,
			Path:        filepath.Join(dir, "mangareader.db"),
			RedisAddr:   "localhost:6379",
			RedisPrefix: "mangareader:",
		},
		Serve: ServeConfig{
			Addr: ":8080",
			Root: ".",
		},
		ExportDir:       filepath.Join(dir, "exports"),
		PageConcurrency: 3,
	}
}
