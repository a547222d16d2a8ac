package mongodoc

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/chatsync/internal/docstore"
)

func openTestBackend(t *testing.T) *docstore.Engine {
	t.Helper()
	uri := os.Getenv("CHATSYNC_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("CHATSYNC_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	b, err := Open(ctx, uri, "chatsync_test_"+uuid.NewString()[:8])
	if err != nil {
		t.Fatal(err)
	}
	if err := b.EnsureIndexes(ctx); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = b.db.Drop(context.Background())
		_ = b.Close()
	})
	return docstore.New(b, nil, nil)
}

func TestCommitAndQuery(t *testing.T) {
	e := openTestBackend(t)
	ctx := context.Background()

	if err := e.Commit(ctx,
		docstore.Create("chats/a_b/messages/m1", map[string]any{"text": "hi", "timestamp": 1}),
		docstore.Create("chats/a_b/messages/m2", map[string]any{"text": "yo", "timestamp": 2}),
	); err != nil {
		t.Fatal(err)
	}

	got, err := e.Query(ctx, docstore.Collection("chats/a_b/messages").OrderByField("timestamp", true))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID() != "m2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].CreateSeq == got[1].CreateSeq {
		t.Fatal("expected distinct commits to get distinct sequences")
	}
}

func TestCreateConflictRollsBack(t *testing.T) {
	e := openTestBackend(t)
	ctx := context.Background()

	if err := e.Commit(ctx, docstore.Create("users/a", map[string]any{"n": 1})); err != nil {
		t.Fatal(err)
	}
	err := e.Commit(ctx,
		docstore.Set("users/b", map[string]any{"n": 2}),
		docstore.Create("users/a", map[string]any{"n": 3}),
	)
	if err == nil {
		t.Fatal("expected conflict")
	}
	if _, err := e.Get(ctx, "users/b"); err != docstore.ErrNotFound {
		t.Fatalf("expected users/b to be rolled back, got %v", err)
	}
}
