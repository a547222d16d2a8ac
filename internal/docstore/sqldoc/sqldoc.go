// Package sqldoc stores documents in a single SQL table. It runs on SQLite
// for a local profile and on PostgreSQL for a shared deployment.
package sqldoc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/sqldoc/migrations"
	"github.com/matheus3301/chatsync/internal/schema"
	_ "github.com/mattn/go-sqlite3"
)

const maxTxAttempts = 5

// Backend is a docstore.Backend over database/sql.
type Backend struct {
	db      *sql.DB
	dialect dialect
}

var _ docstore.Backend = (*Backend)(nil)

// OpenSQLite opens a SQLite database with WAL mode. Write transactions take
// the database lock at BEGIN so concurrent writers queue instead of failing
// on lock upgrade.
func OpenSQLite(path string) (*Backend, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on&_txlock=immediate")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return &Backend{db: db, dialect: sqliteDialect}, nil
}

// OpenPostgres opens a PostgreSQL database through the pgx stdlib driver.
func OpenPostgres(dsn string) (*Backend, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Backend{db: db, dialect: postgresDialect}, nil
}

// MigrateResult describes what happened during migration.
type MigrateResult = schema.Result

// Migrate brings the document schema up to date.
func (b *Backend) Migrate() (*MigrateResult, error) {
	return schema.Up(b.db, b.dialect.driver, migrations.FS, b.dialect.migrationsDir())
}

func (d dialect) migrationsDir() string {
	if d.name == postgresDialect.name {
		return "postgres"
	}
	return "sqlite"
}

// queryer is the subset shared by *sql.DB and *sql.Tx.
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

const selectColumns = `SELECT path, data, create_seq, update_seq, created_at, updated_at FROM documents`

func (b *Backend) Get(ctx context.Context, path string) (*docstore.Snapshot, error) {
	return getDoc(ctx, b.db, b.dialect, path)
}

func (b *Backend) List(ctx context.Context, collection string) ([]*docstore.Snapshot, error) {
	return listDocs(ctx, b.db, b.dialect, collection)
}

func (b *Backend) Close() error {
	return b.db.Close()
}

func getDoc(ctx context.Context, q queryer, d dialect, path string) (*docstore.Snapshot, error) {
	var s docstore.Snapshot
	var data string
	err := q.QueryRowContext(ctx, d.placeholders(selectColumns+` WHERE path = ?`), path).
		Scan(&s.Path, &data, &s.CreateSeq, &s.UpdateSeq, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", path, err)
	}
	s.Data = []byte(data)
	return &s, nil
}

func listDocs(ctx context.Context, q queryer, d dialect, collection string) ([]*docstore.Snapshot, error) {
	rows, err := q.QueryContext(ctx, d.placeholders(selectColumns+` WHERE parent = ? ORDER BY create_seq, path`), collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer func() { _ = rows.Close() }()

	var out []*docstore.Snapshot
	for rows.Next() {
		var s docstore.Snapshot
		var data string
		if err := rows.Scan(&s.Path, &data, &s.CreateSeq, &s.UpdateSeq, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Data = []byte(data)
		out = append(out, &s)
	}
	return out, rows.Err()
}
