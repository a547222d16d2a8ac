package chatlist

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/memdoc"
	"github.com/matheus3301/chatsync/internal/fanout"
	"github.com/matheus3301/chatsync/internal/graph"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type env struct {
	docs   *docstore.Engine
	ids    *identity.Store
	graph  *graph.Service
	writer *fanout.Writer
	w      *Watcher
}

func newEnv(t *testing.T) *env {
	t.Helper()
	return newEnvWith(t, memdoc.New())
}

func newEnvWith(t *testing.T, backend docstore.Backend) *env {
	t.Helper()
	docs := docstore.New(backend, nil, nil)
	t.Cleanup(func() { _ = docs.Close() })
	ids := identity.New(docs, nil)
	writer := fanout.NewWriter(docs, nil)
	for _, u := range []model.User{{ID: "alice", DisplayName: "Alice"}, {ID: "bob", DisplayName: "Bob"}, {ID: "carol", DisplayName: "Carol"}} {
		_, err := ids.Register(context.Background(), u)
		require.NoError(t, err)
	}
	return &env{
		docs:   docs,
		ids:    ids,
		graph:  graph.New(docs, ids, writer, nil),
		writer: writer,
		w:      NewWatcher(ids, projection.New(docs), nil),
	}
}

func (e *env) befriend(t *testing.T, a, b string) {
	t.Helper()
	req, err := e.graph.Send(context.Background(), a, b)
	require.NoError(t, err)
	_, err = e.graph.Accept(context.Background(), req.ID, b)
	require.NoError(t, err)
}

var errInjected = errors.New("injected failure")

// flakyBackend fails every chat-list read while failReads is set.
type flakyBackend struct {
	*memdoc.Backend
	failReads atomic.Bool
}

func (b *flakyBackend) List(ctx context.Context, collection string) ([]*docstore.Snapshot, error) {
	if b.failReads.Load() && strings.HasSuffix(collection, "/chatList") {
		return nil, errInjected
	}
	return b.Backend.List(ctx, collection)
}

func (e *env) send(t *testing.T, id, from, to, text string) {
	t.Helper()
	_, err := e.writer.Apply(context.Background(), fanout.NewMessage{Message: model.Message{
		ID: id, ChatID: model.ChatID(from, to), SenderID: from, Text: text,
	}})
	require.NoError(t, err)
}

func partner(entries []model.ChatListEntry, id string) (model.ChatListEntry, bool) {
	for _, e := range entries {
		if e.PartnerID == id {
			return e, true
		}
	}
	return model.ChatListEntry{}, false
}

type update struct {
	entries []model.ChatListEntry
	err     error
}

func waitFor(t *testing.T, ch <-chan update, cond func(update) bool) update {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case u := <-ch:
			if cond(u) {
				return u
			}
		case <-deadline:
			t.Fatal("timeout waiting for chat list")
			return update{}
		}
	}
}

func TestSessionFollowsFriendsAndRows(t *testing.T) {
	e := newEnv(t)
	ch := make(chan update, 32)
	s := e.w.Open("alice", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	defer s.Close()

	first := waitFor(t, ch, func(update) bool { return true })
	require.NoError(t, first.err)
	assert.Empty(t, first.entries)

	e.befriend(t, "alice", "bob")
	e.befriend(t, "carol", "alice")
	u := waitFor(t, ch, func(u update) bool { return len(u.entries) == 2 })
	for _, entry := range u.entries {
		assert.True(t, entry.Placeholder)
		assert.Equal(t, PlaceholderPreview, entry.LastMessagePreview)
	}

	_, err := e.writer.Apply(context.Background(), fanout.NewMessage{Message: model.Message{
		ID: "m1", ChatID: model.ChatID("alice", "carol"), SenderID: "carol", Text: "hey",
	}})
	require.NoError(t, err)

	u = waitFor(t, ch, func(u update) bool { return len(u.entries) == 2 && !u.entries[0].Placeholder })
	assert.Equal(t, "carol", u.entries[0].PartnerID)
	assert.Equal(t, "hey", u.entries[0].LastMessagePreview)
	assert.Equal(t, 1, u.entries[0].UnreadCount)
	assert.Equal(t, "bob", u.entries[1].PartnerID)
	assert.True(t, u.entries[1].Placeholder)

	list, err := e.w.List(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, u.entries, list)
}

func TestSessionCloseStopsUpdates(t *testing.T) {
	e := newEnv(t)
	ch := make(chan update, 32)
	s := e.w.Open("alice", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	waitFor(t, ch, func(update) bool { return true })

	s.Close()
	s.Close()
	e.befriend(t, "alice", "bob")

	select {
	case u := <-ch:
		t.Fatalf("update after close: %+v", u)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSessionErrorResetsToEmpty(t *testing.T) {
	e := newEnv(t)
	ch := make(chan update, 4)
	s := e.w.Open("bad/id", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	defer s.Close()

	u := waitFor(t, ch, func(u update) bool { return u.err != nil })
	assert.NotNil(t, u.entries)
	assert.Empty(t, u.entries)
}

func TestSessionHoldsBackAfterRowsError(t *testing.T) {
	backend := &flakyBackend{Backend: memdoc.New()}
	e := newEnvWith(t, backend)
	e.befriend(t, "alice", "bob")

	ch := make(chan update, 64)
	s := e.w.Open("alice", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	defer s.Close()

	e.send(t, "m1", "bob", "alice", "hi")
	waitFor(t, ch, func(u update) bool {
		b, ok := partner(u.entries, "bob")
		return u.err == nil && ok && b.LastMessagePreview == "hi"
	})

	backend.failReads.Store(true)
	e.send(t, "m2", "bob", "alice", "again")
	failed := waitFor(t, ch, func(u update) bool { return u.err != nil })
	assert.ErrorIs(t, failed.err, errInjected)
	assert.Empty(t, failed.entries)

	// A friend-list change must not resurrect the rows from before the error.
	e.befriend(t, "alice", "carol")
	quiet := time.After(150 * time.Millisecond)
drain:
	for {
		select {
		case u := <-ch:
			require.Error(t, u.err, "list delivered while rows are failing: %+v", u.entries)
		case <-quiet:
			break drain
		}
	}

	backend.failReads.Store(false)
	e.send(t, "m3", "bob", "alice", "third")
	u := waitFor(t, ch, func(u update) bool { return u.err == nil })
	b, ok := partner(u.entries, "bob")
	require.True(t, ok)
	assert.Equal(t, "third", b.LastMessagePreview)
	assert.Equal(t, 3, b.UnreadCount)
	_, ok = partner(u.entries, "carol")
	assert.True(t, ok)
}

func TestSessionRefreshesPlaceholderProfile(t *testing.T) {
	e := newEnv(t)
	e.befriend(t, "alice", "bob")

	ch := make(chan update, 64)
	s := e.w.Open("alice", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	defer s.Close()

	waitFor(t, ch, func(u update) bool {
		b, ok := partner(u.entries, "bob")
		return ok && b.Placeholder && b.PartnerName == "Bob"
	})

	name, online := "Robert", true
	_, err := e.writer.Apply(context.Background(), fanout.ProfileChanged{UserID: "bob", DisplayName: &name, Online: &online})
	require.NoError(t, err)

	u := waitFor(t, ch, func(u update) bool {
		b, ok := partner(u.entries, "bob")
		return ok && b.PartnerName == "Robert"
	})
	b, _ := partner(u.entries, "bob")
	assert.True(t, b.Placeholder)
	assert.True(t, b.PartnerOnline)
}

func TestSessionDropsRemovedFriendWatch(t *testing.T) {
	e := newEnv(t)
	e.befriend(t, "alice", "bob")

	ch := make(chan update, 64)
	s := e.w.Open("alice", func(entries []model.ChatListEntry, err error) {
		ch <- update{entries, err}
	})
	defer s.Close()

	waitFor(t, ch, func(u update) bool { return len(u.entries) == 1 })

	require.NoError(t, e.docs.Commit(context.Background(), docstore.Update(model.UserPath("alice"), map[string]any{
		"friendIds": []string{},
	})))
	waitFor(t, ch, func(u update) bool { return u.err == nil && len(u.entries) == 0 })

	s.mu.Lock()
	_, watching := s.friendSubs["bob"]
	_, cached := s.profiles["bob"]
	s.mu.Unlock()
	assert.False(t, watching)
	assert.False(t, cached)
}
