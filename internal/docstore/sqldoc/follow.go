package sqldoc

import (
	"context"
	"fmt"
	"time"
)

// changeRetention is how many sequence numbers of change history are kept.
const changeRetention = 10000

// Follow polls the change log every interval and calls notify with the
// paths written since the previous poll, including writes made by other
// processes sharing the database. It returns when ctx ends.
func (b *Backend) Follow(ctx context.Context, interval time.Duration, notify func(paths ...string)) error {
	var last int64
	if err := b.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM doc_changes`).Scan(&last); err != nil {
		return fmt.Errorf("read change log: %w", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		paths, seq, err := b.changesSince(ctx, last)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		if len(paths) == 0 {
			continue
		}
		last = seq
		notify(paths...)

		if seq > changeRetention {
			_, _ = b.db.ExecContext(ctx, b.dialect.placeholders(`DELETE FROM doc_changes WHERE seq < ?`), seq-changeRetention)
		}
	}
}

func (b *Backend) changesSince(ctx context.Context, after int64) ([]string, int64, error) {
	rows, err := b.db.QueryContext(ctx, b.dialect.placeholders(
		`SELECT seq, path FROM doc_changes WHERE seq > ? ORDER BY seq`), after)
	if err != nil {
		return nil, after, fmt.Errorf("read change log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	seen := map[string]bool{}
	var paths []string
	last := after
	for rows.Next() {
		var seq int64
		var path string
		if err := rows.Scan(&seq, &path); err != nil {
			return nil, after, err
		}
		last = seq
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}
	return paths, last, rows.Err()
}
