package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// DatabasePool wraps the sqlite connection pool holding the user's
// settings. A disabled pool serves defaults only and drops writes, for
// running without persistence.
type DatabasePool struct {
	Enabled bool
	pool    *sqlitex.Pool
}

// Checks for an existing SQLite database at the given path and creates one if it does not already exist
func InitializeDatabase(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not get info on file '%s': %w", path, err)
	}

	// create intermediate folders
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("could not create intermediate folders: %w", err)
	}

	// create the new database file
	conn, err := sqlite.OpenConn(path, sqlite.OpenReadWrite, sqlite.OpenCreate)
	if err != nil {
		return fmt.Errorf("could not create new database file: %w", err)
	}
	conn.Close()

	return nil
}

func NewDatabasePool(path string) (DatabasePool, error) {
	pool, err := sqlitex.NewPool(filepath.Clean(path), sqlitex.PoolOptions{})
	if err != nil {
		return DatabasePool{}, fmt.Errorf("could not open connection pool: %w", err)
	}

	return DatabasePool{Enabled: true, pool: pool}, nil
}

func (db DatabasePool) Close() error {
	if !db.Enabled {
		return nil
	}
	return db.pool.Close()
}
