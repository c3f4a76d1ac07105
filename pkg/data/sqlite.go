package data

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// InitSQLite opens a SQLite file through the pure-Go driver, for builds
// without cgo.
func InitSQLite(path string) (*sql.DB, error) {
	db, err := openSQL("sqlite", path)
	if err != nil {
		return nil, err
	}
	// One writer at a time; concurrent readers from other processes still
	// see last-writer-wins values.
	db.SetMaxOpenConns(1)
	return db, nil
}

func NewSQLiteStore(path string) (*SQLStore, error) {
	db, err := InitSQLite(path)
	if err != nil {
		return nil, err
	}
	return NewSQLStore(db), nil
}
