package db

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitemigration"
)

// Updates database schema as needed
func MakeMigrations(path string) error {
	schema := []string{`
		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`}

	pool := sqlitemigration.NewPool(
		filepath.Clean(path),
		sqlitemigration.Schema{
			Migrations: schema,
		},
		sqlitemigration.Options{
			Flags: sqlite.OpenReadWrite | sqlite.OpenCreate,
			OnError: func(e error) {
				log.Println("could not make database migrations: ", e)
			},
		})
	defer pool.Close()

	// Migrations are blocking, so use a new connection as an indicator for their completion before closing the pool
	conn, err := pool.Get(context.TODO())
	if err != nil {
		return fmt.Errorf("could not open connection to database: %w", err)
	}
	pool.Put(conn)

	return nil
}
