// Package memdoc is an in-memory docstore backend. Transactions are
// serialized by a single mutex.
package memdoc

import (
	"context"
	"sync"
	"time"

	"github.com/matheus3301/chatsync/internal/docstore"
)

// Backend keeps all documents in a map.
type Backend struct {
	mu    sync.Mutex
	docs  map[string]*docstore.Snapshot
	seq   int64
	clock func() int64
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{
		docs:  make(map[string]*docstore.Snapshot),
		clock: func() int64 { return time.Now().UnixMilli() },
	}
}

// SetClock replaces the store clock. Tests use it to pin timestamps.
func (b *Backend) SetClock(clock func() int64) {
	b.mu.Lock()
	b.clock = clock
	b.mu.Unlock()
}

func (b *Backend) Get(_ context.Context, path string) (*docstore.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.get(path)
}

func (b *Backend) List(_ context.Context, collection string) ([]*docstore.Snapshot, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.list(collection), nil
}

func (b *Backend) RunInTx(ctx context.Context, fn func(ctx context.Context, tx docstore.BackendTx) error) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	tx := &memTx{b: b, puts: map[string]*docstore.Snapshot{}, removes: map[string]bool{}}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for path := range tx.removes {
		delete(b.docs, path)
	}
	for path, snap := range tx.puts {
		b.docs[path] = snap
	}
	if tx.hasSeq {
		b.seq = tx.seq
	}
	return nil
}

func (b *Backend) Close() error { return nil }

func (b *Backend) get(path string) (*docstore.Snapshot, error) {
	snap, ok := b.docs[path]
	if !ok {
		return nil, docstore.ErrNotFound
	}
	return clone(snap), nil
}

func (b *Backend) list(collection string) []*docstore.Snapshot {
	var out []*docstore.Snapshot
	for path, snap := range b.docs {
		if docstore.Parent(path) == collection {
			out = append(out, clone(snap))
		}
	}
	return out
}

func clone(s *docstore.Snapshot) *docstore.Snapshot {
	c := *s
	c.Data = append([]byte(nil), s.Data...)
	return &c
}

// memTx reads the committed map; its own writes land in overlays that are
// folded in only when the transaction function succeeds.
type memTx struct {
	b       *Backend
	puts    map[string]*docstore.Snapshot
	removes map[string]bool
	seq     int64
	hasSeq  bool
}

func (t *memTx) Get(path string) (*docstore.Snapshot, error) { return t.b.get(path) }

func (t *memTx) List(collection string) ([]*docstore.Snapshot, error) {
	return t.b.list(collection), nil
}

func (t *memTx) Now() (int64, error) { return t.b.clock(), nil }

func (t *memTx) Seq() (int64, error) {
	if !t.hasSeq {
		t.seq, t.hasSeq = t.b.seq+1, true
	}
	return t.seq, nil
}

func (t *memTx) Put(snap *docstore.Snapshot, _ bool) error {
	delete(t.removes, snap.Path)
	t.puts[snap.Path] = clone(snap)
	return nil
}

func (t *memTx) Remove(path string) error {
	delete(t.puts, path)
	t.removes[path] = true
	return nil
}
