// Package messagelog reads the per-chat message log and maintains the
// best-effort per-message status annotations.
package messagelog

import (
	"context"
	"errors"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
	"go.uber.org/zap"
)

// DefaultWindow is how many recent messages a chat view loads.
const DefaultWindow = 200

type Log struct {
	docs   docstore.Store
	logger *zap.Logger
}

func New(docs docstore.Store, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{docs: docs, logger: logger}
}

// Recent returns a query for the newest messages of a chat, newest first.
func Recent(chatID string, limit int) docstore.Query {
	return docstore.Collection(model.MessagesPath(chatID)).
		OrderByField("timestamp", true).
		WithLimit(limit)
}

func (l *Log) Get(ctx context.Context, chatID, msgID string) (*model.Message, error) {
	snap, err := l.docs.Get(ctx, model.MessagePath(chatID, msgID))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, errs.NotFoundf("GetMessage", "message %s in chat %s", msgID, chatID)
		}
		return nil, errs.FromStore("GetMessage", err)
	}
	return Decode(snap)
}

// Exists reports whether a message with msgID is in the log.
func (l *Log) Exists(ctx context.Context, chatID, msgID string) (bool, error) {
	_, err := l.docs.Get(ctx, model.MessagePath(chatID, msgID))
	if errors.Is(err, docstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errs.FromStore("GetMessage", err)
	}
	return true, nil
}

// List returns up to limit messages, newest first.
func (l *Log) List(ctx context.Context, chatID string, limit int) ([]*model.Message, error) {
	if limit <= 0 {
		limit = DefaultWindow
	}
	snaps, err := l.docs.Query(ctx, Recent(chatID, limit))
	if err != nil {
		return nil, errs.FromStore("ListMessages", err)
	}
	return DecodeAll(snaps)
}

// Watch streams the newest messages of a chat, newest first.
func (l *Log) Watch(chatID string, limit int, fn func([]*model.Message, error)) *docstore.Subscription {
	if limit <= 0 {
		limit = DefaultWindow
	}
	return l.docs.WatchQuery(Recent(chatID, limit), func(snaps []*docstore.Snapshot, err error) {
		if err != nil {
			fn(nil, errs.FromStore("WatchChat", err))
			return
		}
		msgs, err := DecodeAll(snaps)
		fn(msgs, err)
	})
}

// Advance moves the partner's messages in chatID up to status as seen by
// readerID. Statuses never move backwards. It returns how many messages
// changed.
func (l *Log) Advance(ctx context.Context, chatID, readerID string, status model.MessageStatus) (int, error) {
	var changed int
	err := l.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		changed = 0
		snaps, err := tx.Query(docstore.Collection(model.MessagesPath(chatID)))
		if err != nil {
			return err
		}
		for _, snap := range snaps {
			m, err := Decode(snap)
			if err != nil {
				return err
			}
			if m.SenderID == readerID || m.Status.Rank() >= status.Rank() {
				continue
			}
			tx.Write(docstore.Update(snap.Path, map[string]any{"status": status}))
			changed++
		}
		return nil
	})
	if err != nil {
		return 0, errs.FromStore("AdvanceStatus", err)
	}
	return changed, nil
}

// Decode converts a snapshot into a Message.
func Decode(snap *docstore.Snapshot) (*model.Message, error) {
	var m model.Message
	if err := snap.DataTo(&m); err != nil {
		return nil, err
	}
	if m.ID == "" {
		m.ID = snap.ID()
	}
	m.Seq = snap.CreateSeq
	return &m, nil
}

func DecodeAll(snaps []*docstore.Snapshot) ([]*model.Message, error) {
	out := make([]*model.Message, 0, len(snaps))
	for _, s := range snaps {
		m, err := Decode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
