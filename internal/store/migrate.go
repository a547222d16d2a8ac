package store

import (
	"github.com/matheus3301/chatsync/internal/schema"
	"github.com/matheus3301/chatsync/internal/store/migrations"
)

// MigrateResult describes what happened during migration.
type MigrateResult = schema.Result

// Migrate brings the outbox and drafts tables up to date.
func (db *DB) Migrate() (*MigrateResult, error) {
	return schema.Up(db.DB, schema.SQLite, migrations.FS, ".")
}
