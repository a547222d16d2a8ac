package summary

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

func TestEmptyIsCanonical(t *testing.T) {
	c := Empty("bob", "alice", 7)
	assert.Equal(t, model.ChatID("alice", "bob"), c.ID)
	assert.Equal(t, model.ChatID("bob", "alice"), c.ID)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, c.UnreadCount)
	assert.Equal(t, int64(7), c.CreatedAt)
}

func TestSetLastUsesMediaLabel(t *testing.T) {
	c := Empty("alice", "bob", 0)
	SetLast(c, &model.Message{ID: "m1", SenderID: "alice", Timestamp: 5, Media: &model.Media{Type: model.MediaImage}})
	assert.Equal(t, "Image", c.LastMessage)
	assert.Equal(t, "m1", c.LastMessageID)
	assert.Equal(t, int64(5), c.LastMessageAt)

	SetLast(c, nil)
	assert.Empty(t, c.LastMessage)
	assert.Empty(t, c.LastMessageID)
	assert.Zero(t, c.LastMessageAt)
}

func TestGetFillsMissingCounters(t *testing.T) {
	docs := docstore.New(memdoc.New(), nil, nil)
	t.Cleanup(func() { _ = docs.Close() })
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")

	_, err := New(docs).Get(ctx, chatID)
	assert.True(t, errs.IsNotFound(err))

	require.NoError(t, docs.Commit(ctx, docstore.Create(model.ChatPath(chatID), map[string]any{
		"participants": []string{"alice", "bob"},
		"unreadCount":  map[string]any{"bob": 2},
	})))
	c, err := New(docs).Get(ctx, chatID)
	require.NoError(t, err)
	assert.Equal(t, chatID, c.ID)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 2}, c.UnreadCount)
}
