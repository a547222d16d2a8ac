// Package summary reads the per-chat headline documents.
package summary

import (
	"context"
	"errors"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
)

type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

func (s *Store) Get(ctx context.Context, chatID string) (*model.Chat, error) {
	snap, err := s.docs.Get(ctx, model.ChatPath(chatID))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, errs.NotFoundf("GetChat", "chat %s", chatID)
		}
		return nil, errs.FromStore("GetChat", err)
	}
	return Decode(snap)
}

// Decode converts a snapshot into a Chat. Missing counters read as zero.
func Decode(snap *docstore.Snapshot) (*model.Chat, error) {
	var c model.Chat
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	if c.ID == "" {
		c.ID = snap.ID()
	}
	if c.UnreadCount == nil {
		c.UnreadCount = map[string]int{}
	}
	for _, p := range c.Participants {
		if _, ok := c.UnreadCount[p]; !ok {
			c.UnreadCount[p] = 0
		}
	}
	return &c, nil
}

// Empty returns a new chat between a and b with zeroed counters.
func Empty(a, b string, now int64) *model.Chat {
	chatID := model.ChatID(a, b)
	first, second, _ := model.ParseChatID(chatID)
	return &model.Chat{
		ID:           chatID,
		Participants: []string{first, second},
		UnreadCount:  map[string]int{first: 0, second: 0},
		CreatedAt:    now,
	}
}

// SetLast points the headline at m, or clears it when m is nil.
func SetLast(c *model.Chat, m *model.Message) {
	if m == nil {
		c.LastMessage = ""
		c.LastMessageAt = 0
		c.LastMessageSenderID = ""
		c.LastMessageID = ""
		return
	}
	c.LastMessage = m.Preview()
	c.LastMessageAt = m.Timestamp
	c.LastMessageSenderID = m.SenderID
	c.LastMessageID = m.ID
}
