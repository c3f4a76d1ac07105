package data

import "fmt"

const (
	DriverDuckDB = "duckdb"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// StoreOptions selects and configures a Store driver.
type StoreOptions struct {
	Driver        string
	Path          string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

// OpenStore opens the store named by opts.Driver. An empty driver means
// DuckDB.
func OpenStore(opts StoreOptions) (Store, error) {
	switch opts.Driver {
	case DriverDuckDB, "":
		return NewDuckDBStore(opts.Path)
	case DriverSQLite:
		return NewSQLiteStore(opts.Path)
	case DriverRedis:
		return NewRedisStore(opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.RedisPrefix)
	case DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", opts.Driver)
	}
}
