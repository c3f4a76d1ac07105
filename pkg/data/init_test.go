package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInitDuckDB(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-init-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	db, err := InitDuckDB(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize DB: %v", err)
	}
	defer db.Close()

	var tableCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM information_schema.tables WHERE table_name = 'kv_store'`).Scan(&tableCount)
	if err != nil {
		t.Fatalf("Failed to query tables: %v", err)
	}

	if tableCount != 1 {
		t.Errorf("Expected 1 table, got %d", tableCount)
	}
}

func TestInitDuckDBCreatesDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "test-init-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	dbPath := filepath.Join(tmpDir, "nested", "dir", "test.db")

	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize DB with nested path: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("DB file was not created")
	}
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "store.sqlite"))
	if err != nil {
		t.Fatalf("Failed to open sqlite store: %v", err)
	}
	defer store.Close()

	if err := store.Set("imageFitMode", "height"); err != nil {
		t.Fatalf("Failed to set value: %v", err)
	}
	if err := store.Set("imageFitMode", "both"); err != nil {
		t.Fatalf("Failed to overwrite value: %v", err)
	}

	value, ok, err := store.Get("imageFitMode")
	if err != nil || !ok {
		t.Fatalf("Expected value, got ok=%v err=%v", ok, err)
	}
	if value != "both" {
		t.Errorf("Expected 'both', got '%s'", value)
	}
}

func TestOpenStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := OpenStore(StoreOptions{Driver: DriverMemory})
		if err != nil {
			t.Fatalf("OpenStore() error = %v", err)
		}
		if _, ok := store.(*MemoryStore); !ok {
			t.Errorf("Expected *MemoryStore, got %T", store)
		}
	})

	t.Run("default is duckdb", func(t *testing.T) {
		store, err := OpenStore(StoreOptions{Path: filepath.Join(t.TempDir(), "default.db")})
		if err != nil {
			t.Fatalf("OpenStore() error = %v", err)
		}
		defer store.Close()
		if _, ok := store.(*SQLStore); !ok {
			t.Errorf("Expected *SQLStore, got %T", store)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := OpenStore(StoreOptions{Driver: DriverSQLite, Path: filepath.Join(t.TempDir(), "s.db")})
		if err != nil {
			t.Fatalf("OpenStore() error = %v", err)
		}
		defer store.Close()
		if _, ok := store.(*SQLStore); !ok {
			t.Errorf("Expected *SQLStore, got %T", store)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := OpenStore(StoreOptions{Driver: "etcd"}); err == nil {
			t.Error("Expected error for unknown driver")
		}
	})

	t.Run("redis", func(t *testing.T) {
		addr := os.Getenv("MANGAREADER_TEST_REDIS_ADDR")
		if addr == "" {
			t.Skip("MANGAREADER_TEST_REDIS_ADDR not set")
		}
		store, err := OpenStore(StoreOptions{Driver: DriverRedis, RedisAddr: addr, RedisPrefix: "mangareader-test:"})
		if err != nil {
			t.Fatalf("OpenStore() error = %v", err)
		}
		defer store.Close()

		if err := store.Set("theme", "dark"); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
		value, ok, err := store.Get("theme")
		if err != nil || !ok || value != "dark" {
			t.Errorf("Get() = %q, %v, %v; want dark, true, nil", value, ok, err)
		}
	})
}
