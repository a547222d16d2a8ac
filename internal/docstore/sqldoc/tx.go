package sqldoc

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/matheus3301/chatsync/internal/docstore"
)

// RunInTx runs fn in a database transaction. The first statement bumps the
// global write sequence, which also takes the row lock that serializes
// writers on PostgreSQL.
func (b *Backend) RunInTx(ctx context.Context, fn func(ctx context.Context, tx docstore.BackendTx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = b.runOnce(ctx, fn)
		if err == nil || !b.dialect.retryable(err) {
			return err
		}
	}
	return fmt.Errorf("transaction failed after %d attempts: %w", maxTxAttempts, err)
}

func (b *Backend) runOnce(ctx context.Context, fn func(ctx context.Context, tx docstore.BackendTx) error) error {
	sqlTx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = sqlTx.Rollback() }()

	t := &tx{ctx: ctx, tx: sqlTx, dialect: b.dialect}
	if err := sqlTx.QueryRowContext(ctx,
		`UPDATE doc_sequence SET value = value + 1 WHERE id = 1 RETURNING value`).Scan(&t.seq); err != nil {
		return fmt.Errorf("bump sequence: %w", err)
	}

	if err := fn(ctx, t); err != nil {
		return err
	}
	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

type tx struct {
	ctx     context.Context
	tx      *sql.Tx
	dialect dialect
	seq     int64
}

func (t *tx) Get(path string) (*docstore.Snapshot, error) {
	return getDoc(t.ctx, t.tx, t.dialect, path)
}

func (t *tx) List(collection string) ([]*docstore.Snapshot, error) {
	return listDocs(t.ctx, t.tx, t.dialect, collection)
}

func (t *tx) Now() (int64, error) {
	var now int64
	if err := t.tx.QueryRowContext(t.ctx, t.dialect.nowQuery).Scan(&now); err != nil {
		return 0, fmt.Errorf("store clock: %w", err)
	}
	return now, nil
}

func (t *tx) Seq() (int64, error) { return t.seq, nil }

func (t *tx) Put(s *docstore.Snapshot, created bool) error {
	var err error
	if created {
		_, err = t.tx.ExecContext(t.ctx, t.dialect.placeholders(`
			INSERT INTO documents (path, parent, data, create_seq, update_seq, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`),
			s.Path, docstore.Parent(s.Path), string(s.Data), s.CreateSeq, s.UpdateSeq, s.CreatedAt, s.UpdatedAt)
	} else {
		_, err = t.tx.ExecContext(t.ctx, t.dialect.placeholders(`
			UPDATE documents SET data = ?, update_seq = ?, updated_at = ? WHERE path = ?`),
			string(s.Data), s.UpdateSeq, s.UpdatedAt, s.Path)
	}
	if err != nil {
		return err
	}
	return t.recordChange(s.Path)
}

func (t *tx) Remove(path string) error {
	if _, err := t.tx.ExecContext(t.ctx, t.dialect.placeholders(`DELETE FROM documents WHERE path = ?`), path); err != nil {
		return err
	}
	return t.recordChange(path)
}

// recordChange feeds Follow in other processes.
func (t *tx) recordChange(path string) error {
	_, err := t.tx.ExecContext(t.ctx, t.dialect.placeholders(`INSERT INTO doc_changes (seq, path) VALUES (?, ?)`), t.seq, path)
	return err
}
