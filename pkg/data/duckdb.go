package data

import (
	"database/sql"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// InitDuckDB opens (or creates) a DuckDB file and makes sure the key-value
// table exists.
func InitDuckDB(path string) (*sql.DB, error) {
	return openSQL("duckdb", path)
}

// NewDuckDBStore opens the default store.
func NewDuckDBStore(path string) (*SQLStore, error) {
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	return NewSQLStore(db), nil
}
