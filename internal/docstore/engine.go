package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/matheus3301/chatsync/internal/bus"
	"go.uber.org/zap"
)

// Backend is a storage engine. Engine layers write semantics, transactions
// and subscriptions on top of these primitives.
type Backend interface {
	Get(ctx context.Context, path string) (*Snapshot, error)
	// List returns every document directly inside collection.
	List(ctx context.Context, collection string) ([]*Snapshot, error)
	// RunInTx runs fn inside one storage transaction and commits if fn
	// returns nil. It may call fn again when the storage layer reports a
	// retryable conflict.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx BackendTx) error) error
	Close() error
}

// BackendTx is a storage transaction.
type BackendTx interface {
	Get(path string) (*Snapshot, error)
	List(collection string) ([]*Snapshot, error)
	// Now returns the store clock in unix millis.
	Now() (int64, error)
	// Seq returns the write sequence assigned to this transaction.
	Seq() (int64, error)
	// Put inserts (created) or replaces a document.
	Put(snap *Snapshot, created bool) error
	Remove(path string) error
}

// Engine implements Store over a Backend. Committed changes are announced on
// the bus, which is how subscriptions learn about them.
type Engine struct {
	backend Backend
	bus     *bus.Bus
	logger  *zap.Logger
}

// New wraps a backend. A nil bus gets a private one.
func New(backend Backend, b *bus.Bus, logger *zap.Logger) *Engine {
	if b == nil {
		b = bus.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{backend: backend, bus: b, logger: logger}
}

var _ Store = (*Engine)(nil)

func (e *Engine) NewID() string { return NewID() }

func (e *Engine) Get(ctx context.Context, path string) (*Snapshot, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	return e.backend.Get(ctx, path)
}

func (e *Engine) Query(ctx context.Context, q Query) ([]*Snapshot, error) {
	if err := ValidateCollection(q.Collection); err != nil {
		return nil, err
	}
	docs, err := e.backend.List(ctx, q.Collection)
	if err != nil {
		return nil, err
	}
	return ApplyQuery(q, docs)
}

// Commit applies writes atomically.
func (e *Engine) Commit(ctx context.Context, writes ...Write) error {
	return e.RunTransaction(ctx, func(_ context.Context, tx Tx) error {
		tx.Write(writes...)
		return nil
	})
}

// RunTransaction runs fn and commits its buffered writes atomically. fn may
// run more than once if the backend retries, so it must not have side
// effects outside tx.
func (e *Engine) RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error {
	var changed []string
	err := e.backend.RunInTx(ctx, func(ctx context.Context, btx BackendTx) error {
		t := &txn{btx: btx}
		if err := fn(ctx, t); err != nil {
			return err
		}
		paths, err := applyWrites(btx, t.writes)
		if err != nil {
			return err
		}
		changed = paths
		return nil
	})
	if err != nil {
		return err
	}
	e.Notify(changed...)
	return nil
}

// Notify announces changed document paths to subscribers. Backends that
// observe external writers call it directly.
func (e *Engine) Notify(paths ...string) {
	for _, p := range paths {
		e.bus.Emit(docTopic(p), p)
		e.bus.Emit(collectionTopic(Parent(p)), p)
	}
}

func (e *Engine) Close() error {
	return e.backend.Close()
}

type txn struct {
	btx    BackendTx
	now    int64
	hasNow bool
	writes []Write
}

func (t *txn) Get(path string) (*Snapshot, error) {
	if err := ValidatePath(path); err != nil {
		return nil, err
	}
	return t.btx.Get(path)
}

func (t *txn) Query(q Query) ([]*Snapshot, error) {
	if err := ValidateCollection(q.Collection); err != nil {
		return nil, err
	}
	docs, err := t.btx.List(q.Collection)
	if err != nil {
		return nil, err
	}
	return ApplyQuery(q, docs)
}

func (t *txn) ServerTime() (int64, error) {
	if t.hasNow {
		return t.now, nil
	}
	now, err := t.btx.Now()
	if err != nil {
		return 0, err
	}
	t.now, t.hasNow = now, true
	return now, nil
}

func (t *txn) Write(w ...Write) {
	t.writes = append(t.writes, w...)
}

type staged struct {
	snap    *Snapshot
	body    map[string]any
	existed bool
	live    bool
}

// applyWrites folds the writes into per-path state and stores the result.
// Several writes may target the same path; they apply in order.
func applyWrites(btx BackendTx, writes []Write) ([]string, error) {
	if len(writes) == 0 {
		return nil, nil
	}
	seq, err := btx.Seq()
	if err != nil {
		return nil, fmt.Errorf("write sequence: %w", err)
	}
	now, err := btx.Now()
	if err != nil {
		return nil, fmt.Errorf("store clock: %w", err)
	}

	state := map[string]*staged{}
	var order []string
	for _, w := range writes {
		if err := ValidatePath(w.Path); err != nil {
			return nil, err
		}
		st, ok := state[w.Path]
		if !ok {
			st = &staged{}
			snap, err := btx.Get(w.Path)
			switch {
			case errors.Is(err, ErrNotFound):
			case err != nil:
				return nil, fmt.Errorf("read %s: %w", w.Path, err)
			default:
				body, err := snap.Fields()
				if err != nil {
					return nil, err
				}
				st.snap, st.body, st.existed, st.live = snap, body, true, true
			}
			state[w.Path] = st
			order = append(order, w.Path)
		}

		switch w.Op {
		case OpCreate:
			if st.live {
				return nil, fmt.Errorf("create %s: %w", w.Path, ErrAlreadyExists)
			}
			fallthrough
		case OpSet:
			body, err := encodeBody(w.Value)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", w.Op, w.Path, err)
			}
			st.body, st.live = body, true
		case OpUpdate:
			if !st.live {
				return nil, fmt.Errorf("update %s: %w", w.Path, ErrNotFound)
			}
			fallthrough
		case OpMerge:
			if !st.live {
				st.body, st.live = map[string]any{}, true
			}
			if err := applyFields(st.body, w.Fields); err != nil {
				return nil, fmt.Errorf("%s %s: %w", w.Op, w.Path, err)
			}
		case OpDelete:
			st.body, st.live = nil, false
		default:
			return nil, fmt.Errorf("unknown write op %d on %s", w.Op, w.Path)
		}
	}

	changed := make([]string, 0, len(order))
	for _, path := range order {
		st := state[path]
		if !st.live {
			if st.existed {
				if err := btx.Remove(path); err != nil {
					return nil, fmt.Errorf("remove %s: %w", path, err)
				}
				changed = append(changed, path)
			}
			continue
		}
		data, err := json.Marshal(st.body)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", path, err)
		}
		snap := &Snapshot{
			Path:      path,
			Data:      data,
			CreateSeq: seq,
			UpdateSeq: seq,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if st.existed {
			snap.CreateSeq = st.snap.CreateSeq
			snap.CreatedAt = st.snap.CreatedAt
		}
		if err := btx.Put(snap, !st.existed); err != nil {
			return nil, fmt.Errorf("put %s: %w", path, err)
		}
		changed = append(changed, path)
	}
	return changed, nil
}
