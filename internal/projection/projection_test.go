package projection

import (
	"context"
	"testing"

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
	return New(e), e
}

func putRow(t *testing.T, e *docstore.Engine, owner, partner string, at int64) string {
	t.Helper()
	id := model.ChatID(owner, partner)
	require.NoError(t, e.Commit(context.Background(), docstore.Set(model.ProjectionPath(owner, id), model.ChatListEntry{
		ChatID: id, PartnerID: partner, PartnerName: partner, LastMessageAt: at,
	})))
	return id
}

func TestListMostRecentFirst(t *testing.T) {
	s, e := newStore(t)
	putRow(t, e, "alice", "bob", 10)
	putRow(t, e, "alice", "carol", 30)
	putRow(t, e, "bob", "carol", 50)

	rows, err := s.List(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "carol", rows[0].PartnerID)
	assert.Equal(t, "bob", rows[1].PartnerID)
}

func TestSetFlagsTouchesOnlyGivenFields(t *testing.T) {
	s, e := newStore(t)
	ctx := context.Background()
	id := putRow(t, e, "alice", "bob", 10)

	yes := true
	row, err := s.SetFlags(ctx, "alice", id, Flags{Pinned: &yes})
	require.NoError(t, err)
	assert.True(t, row.Pinned)
	assert.False(t, row.Muted)

	row, err = s.SetFlags(ctx, "alice", id, Flags{Muted: &yes})
	require.NoError(t, err)
	assert.True(t, row.Pinned)
	assert.True(t, row.Muted)
}

func TestSetFlagsErrors(t *testing.T) {
	s, e := newStore(t)
	ctx := context.Background()
	id := putRow(t, e, "alice", "bob", 10)

	_, err := s.SetFlags(ctx, "alice", id, Flags{})
	assert.True(t, errs.IsValidation(err))

	yes := true
	_, err = s.SetFlags(ctx, "bob", id, Flags{Archived: &yes})
	assert.True(t, errs.IsNotFound(err))
}

func TestBuildCarriesFlagsAndPartner(t *testing.T) {
	c := &model.Chat{
		ID:                  model.ChatID("alice", "bob"),
		Participants:        []string{"alice", "bob"},
		LastMessage:         "hi",
		LastMessageAt:       42,
		LastMessageSenderID: "bob",
		UnreadCount:         map[string]int{"alice": 3},
	}
	prev := &model.ChatListEntry{Pinned: true, Muted: true}

	e := Build(c, "alice", &model.User{ID: "bob", DisplayName: "Bob", IsOnline: true}, prev)
	assert.Equal(t, "bob", e.PartnerID)
	assert.Equal(t, "Bob", e.PartnerName)
	assert.True(t, e.PartnerOnline)
	assert.Equal(t, 3, e.UnreadCount)
	assert.True(t, e.Pinned)
	assert.True(t, e.Muted)
	assert.False(t, e.Archived)

	e = Build(c, "alice", nil, nil)
	assert.Equal(t, "bob", e.PartnerName)
	assert.False(t, e.Pinned)
}
