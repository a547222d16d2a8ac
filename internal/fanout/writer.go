// Package fanout applies one logical mutation to every replica that must
// reflect it (message log, chat summary and both chat-list projections) in a
// single store transaction.
package fanout

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/matheus3301/chatsync/internal/summary"
	"go.uber.org/zap"
)

// Mutation is a canonical change descriptor. The concrete types below are
// the only implementations.
type Mutation interface {
	name() string
	apply(tx docstore.Tx, res *Result) error
}

// Result reports what a committed mutation produced.
type Result struct {
	// Message is the stored message for NewMessage, EditMessage and
	// DeleteMessage.
	Message *model.Message
	// Chat is the chat summary after the commit; nil once deleted.
	Chat *model.Chat
	// Duplicate is set when a NewMessage id was already in the log.
	Duplicate bool
	// Noop is set when the mutation needed no writes.
	Noop bool
}

type Writer struct {
	docs   docstore.Store
	logger *zap.Logger
}

func NewWriter(docs docstore.Store, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{docs: docs, logger: logger}
}

// Apply commits m atomically. The transaction function is pure, so a backend
// retry recomputes every write from fresh reads.
func (w *Writer) Apply(ctx context.Context, m Mutation) (*Result, error) {
	var res *Result
	err := w.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		res = &Result{}
		return m.apply(tx, res)
	})
	if err != nil {
		return nil, errs.FromStore(m.name(), err)
	}
	w.logger.Debug("fan-out committed",
		zap.String("mutation", m.name()),
		zap.Bool("duplicate", res.Duplicate),
		zap.Bool("noop", res.Noop),
	)
	return res, nil
}

// chatState is the slice of the store a chat-scoped mutation works on.
type chatState struct {
	chat   *model.Chat
	exists bool
	users  map[string]*model.User
	prev   map[string]*model.ChatListEntry
}

func loadChat(tx docstore.Tx, chatID string) (*chatState, error) {
	a, b, err := model.ParseChatID(chatID)
	if err != nil {
		return nil, errs.Validationf("fanout", "%v", err)
	}
	st := &chatState{
		users: map[string]*model.User{},
		prev:  map[string]*model.ChatListEntry{},
	}

	snap, err := tx.Get(model.ChatPath(chatID))
	switch {
	case errors.Is(err, docstore.ErrNotFound):
	case err != nil:
		return nil, err
	default:
		if st.chat, err = summary.Decode(snap); err != nil {
			return nil, err
		}
		st.exists = true
	}

	for _, uid := range []string{a, b} {
		snap, err := tx.Get(model.UserPath(uid))
		switch {
		case errors.Is(err, docstore.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			if st.users[uid], err = identity.Decode(snap); err != nil {
				return nil, err
			}
		}

		snap, err = tx.Get(model.ProjectionPath(uid, chatID))
		switch {
		case errors.Is(err, docstore.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			if st.prev[uid], err = projection.Decode(snap); err != nil {
				return nil, err
			}
		}
	}
	return st, nil
}

// writeChat stores the chat summary and rebuilds both projections from it,
// so the three documents always agree on the headline and counters.
func (st *chatState) writeChat(tx docstore.Tx) {
	c := st.chat
	tx.Write(docstore.Set(model.ChatPath(c.ID), c))
	for _, owner := range c.Participants {
		partner := st.users[c.Partner(owner)]
		entry := projection.Build(c, owner, partner, st.prev[owner])
		tx.Write(docstore.Set(model.ProjectionPath(owner, c.ID), entry))
	}
}

func requireParticipant(op string, c *model.Chat, uid string) error {
	for _, p := range c.Participants {
		if p == uid {
			return nil
		}
	}
	return errs.Validationf(op, "%s is not a participant of %s", uid, c.ID)
}

func participantOf(chatID, uid string) bool {
	a, b, err := model.ParseChatID(chatID)
	return err == nil && (uid == a || uid == b)
}

func getMessage(tx docstore.Tx, op, chatID, msgID string) (*model.Message, error) {
	if msgID == "" {
		return nil, errs.Validationf(op, "missing message id")
	}
	snap, err := tx.Get(model.MessagePath(chatID, msgID))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, errs.NotFoundf(op, "message %s in chat %s", msgID, chatID)
	}
	if err != nil {
		return nil, fmt.Errorf("read message: %w", err)
	}
	return messagelog.Decode(snap)
}

// Bootstrap creates the empty chat between a and b if it does not exist.
func (w *Writer) Bootstrap(ctx context.Context, a, b string) error {
	_, err := w.Apply(ctx, BootstrapChat{A: a, B: b})
	return err
}
