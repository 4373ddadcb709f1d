package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteDriverName is the pure Go driver registered by modernc.org/sqlite.
const SQLiteDriverName = "sqlite"

// OpenSQLite opens the database at path (SQLITE_PATH by default).
// An in-memory database is limited to one connection so every query sees the same data.
func OpenSQLite(path string) (*sql.DB, error) {
	if path == "" {
		path = getenvDefault("SQLITE_PATH", "storefront.db")
	}
	db, err := sql.Open(SQLiteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}
	return db, nil
}
