package models

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

var (
	db   *sql.DB
	dbMu sync.RWMutex // guards swapping db during init/close
)

// InitDB opens the client-portal database and runs migrations.
// An empty path opens an in-memory database.
func InitDB(path string) error {
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return serr.Wrap(err, "failed to create database directory")
		}
	}

	conn, err := sql.Open("duckdb", path)
	if err != nil {
		return serr.Wrap(err, "failed to open database")
	}
	// DuckDB in-memory databases are per connection
	conn.SetMaxOpenConns(1)

	if err := migrate(conn); err != nil {
		conn.Close()
		return serr.Wrap(err, "failed to migrate database")
	}

	dbMu.Lock()
	db = conn
	dbMu.Unlock()

	if path == "" {
		logger.Info("Database initialized", "storage", "memory")
	} else {
		logger.Info("Database initialized", "path", path)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if db != nil {
		if err := db.Close(); err != nil {
			logger.LogErr(err, "failed to close database")
		}
		db = nil
	}
}

func conn() (*sql.DB, error) {
	dbMu.RLock()
	defer dbMu.RUnlock()
	if db == nil {
		return nil, serr.New("database not initialized - call InitDB first")
	}
	return db, nil
}

func migrate(conn *sql.DB) error {
	if _, err := conn.Exec(CreateUsersTableSQL); err != nil {
		return serr.Wrap(err, "failed to create users table")
	}
	return nil
}
