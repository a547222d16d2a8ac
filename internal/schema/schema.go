// Package schema applies embedded golang-migrate migrations to a database/sql
// handle. Both the local state store and the SQL document store use it.
package schema

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Driver selects the migrate database driver.
type Driver string

const (
	SQLite   Driver = "sqlite3"
	Postgres Driver = "postgres"
)

// Result describes what a migration run did.
type Result struct {
	Version uint
	Dirty   bool
	Changed bool
}

// Up applies every migration under dir in fsys that db has not seen yet.
// The migrate instance is not closed: that would close db.
func Up(db *sql.DB, driver Driver, fsys fs.FS, dir string) (*Result, error) {
	source, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}

	var target database.Driver
	switch driver {
	case SQLite:
		target, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	case Postgres:
		target, err = migratepgx.WithInstance(db, &migratepgx.Config{})
	default:
		return nil, fmt.Errorf("unknown migration driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(driver), target)
	if err != nil {
		return nil, fmt.Errorf("migration instance: %w", err)
	}

	res := &Result{Changed: true}
	if err := m.Up(); errors.Is(err, migrate.ErrNoChange) {
		res.Changed = false
	} else if err != nil {
		return nil, fmt.Errorf("migration up: %w", err)
	}

	res.Version, res.Dirty, err = m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return nil, fmt.Errorf("migration version: %w", err)
	}
	return res, nil
}
