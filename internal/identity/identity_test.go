package identity

import (
	"context"
	"testing"
	"time"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/memdoc"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, *docstore.Engine) {
	t.Helper()
	e := docstore.New(memdoc.New(), nil, nil)
	t.Cleanup(func() { _ = e.Close() })
	return New(e, nil), e
}

func TestRegisterCreatesOnce(t *testing.T) {
	s, e := newStore(t)
	ctx := context.Background()

	u, err := s.Register(ctx, model.User{ID: "alice", DisplayName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.DisplayName)
	assert.Empty(t, u.FriendIDs)

	require.NoError(t, e.Commit(ctx, docstore.Update(model.UserPath("alice"), map[string]any{
		"friendIds": docstore.ArrayUnion("bob"),
	})))

	u, err = s.Register(ctx, model.User{ID: "alice", DisplayName: "Other", AvatarURL: "file:///a.png"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.DisplayName)
	assert.Equal(t, "file:///a.png", u.AvatarURL)
	assert.Equal(t, []string{"bob"}, u.FriendIDs)
}

func TestRegisterRejectsBadID(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Register(context.Background(), model.User{ID: "a_b"})
	assert.True(t, errs.IsValidation(err))
}

func TestGetMissingIsNotFound(t *testing.T) {
	s, _ := newStore(t)
	_, err := s.Get(context.Background(), "ghost")
	assert.True(t, errs.IsNotFound(err))
}

func TestFriends(t *testing.T) {
	s, e := newStore(t)
	ctx := context.Background()

	for _, u := range []model.User{{ID: "alice", DisplayName: "Alice"}, {ID: "bob", DisplayName: "Bob"}, {ID: "carol", DisplayName: "Carol"}} {
		_, err := s.Register(ctx, u)
		require.NoError(t, err)
	}
	require.NoError(t, e.Commit(ctx, docstore.Update(model.UserPath("alice"), map[string]any{
		"friendIds": docstore.ArrayUnion("carol", "bob", "ghost"),
	})))

	friends, err := s.Friends(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "Bob", friends[0].DisplayName)
	assert.Equal(t, "Carol", friends[1].DisplayName)

	ok, err := s.AreFriends(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = s.AreFriends(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWatch(t *testing.T) {
	s, _ := newStore(t)
	updates := make(chan *model.User, 4)
	sub := s.Watch("alice", func(u *model.User, err error) {
		assert.NoError(t, err)
		updates <- u
	})
	defer sub.Stop()

	select {
	case u := <-updates:
		assert.Nil(t, u)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for initial snapshot")
	}

	_, err := s.Register(context.Background(), model.User{ID: "alice"})
	require.NoError(t, err)
	select {
	case u := <-updates:
		require.NotNil(t, u)
		assert.Equal(t, "alice", u.DisplayName)
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for update")
	}
}
