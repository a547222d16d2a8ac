// Package docstore is the hierarchical document store the sync engine talks
// to: single-document reads, atomic multi-document commits, transactions and
// live subscriptions. Storage engines plug in through Backend.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("docstore: document not found")
	ErrAlreadyExists = errors.New("docstore: document already exists")
	ErrInvalidPath   = errors.New("docstore: invalid path")
)

// Snapshot is a read-only copy of a stored document.
type Snapshot struct {
	Path      string
	Data      json.RawMessage
	CreateSeq int64 // write sequence of the commit that created the document
	UpdateSeq int64 // write sequence of the last commit that touched it
	CreatedAt int64 // store clock, unix millis
	UpdatedAt int64
}

// ID returns the last path segment.
func (s *Snapshot) ID() string { return ID(s.Path) }

// DataTo decodes the document body into v.
func (s *Snapshot) DataTo(v any) error {
	if err := json.Unmarshal(s.Data, v); err != nil {
		return fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return nil
}

// Fields decodes the document body into a generic map.
func (s *Snapshot) Fields() (map[string]any, error) {
	m := map[string]any{}
	if len(s.Data) == 0 {
		return m, nil
	}
	if err := json.Unmarshal(s.Data, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return m, nil
}

// DocFunc receives document snapshots. A nil snapshot with a nil error means
// the document does not exist.
type DocFunc func(snap *Snapshot, err error)

// QueryFunc receives the full result set of a query each time it changes.
type QueryFunc func(snaps []*Snapshot, err error)

// Tx is the view a transaction function gets. Reads observe the state at
// transaction start; writes are buffered and applied atomically at commit.
type Tx interface {
	Get(path string) (*Snapshot, error)
	Query(q Query) ([]*Snapshot, error)
	// ServerTime returns the store clock in unix millis, fixed for the transaction.
	ServerTime() (int64, error)
	Write(w ...Write)
}

// Store is the document store contract consumed by the engine.
type Store interface {
	NewID() string
	Get(ctx context.Context, path string) (*Snapshot, error)
	Query(ctx context.Context, q Query) ([]*Snapshot, error)
	Commit(ctx context.Context, writes ...Write) error
	RunTransaction(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WatchDoc(path string, fn DocFunc) *Subscription
	WatchQuery(q Query, fn QueryFunc) *Subscription
	Close() error
}

// NewID allocates a new random document id.
func NewID() string {
	return uuid.NewString()
}

// Join builds a path from segments.
func Join(segments ...string) string {
	return strings.Join(segments, "/")
}

// Parent returns the collection path containing a document path.
func Parent(path string) string {
	i := strings.LastIndexByte(path, '/')
	if i < 0 {
		return ""
	}
	return path[:i]
}

// ID returns the last segment of a path.
func ID(path string) string {
	return path[strings.LastIndexByte(path, '/')+1:]
}

// ValidatePath checks that path names a document: an even number of
// non-empty segments.
func ValidatePath(path string) error {
	n, err := countSegments(path)
	if err != nil {
		return err
	}
	if n%2 != 0 {
		return fmt.Errorf("%w: %q is a collection path", ErrInvalidPath, path)
	}
	return nil
}

// ValidateCollection checks that path names a collection.
func ValidateCollection(path string) error {
	n, err := countSegments(path)
	if err != nil {
		return err
	}
	if n%2 != 1 {
		return fmt.Errorf("%w: %q is a document path", ErrInvalidPath, path)
	}
	return nil
}

func countSegments(path string) (int, error) {
	if path == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	segs := strings.Split(path, "/")
	for _, s := range segs {
		if s == "" {
			return 0, fmt.Errorf("%w: %q has an empty segment", ErrInvalidPath, path)
		}
	}
	return len(segs), nil
}
