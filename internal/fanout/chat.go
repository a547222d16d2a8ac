package fanout

import (
	"errors"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/summary"
)

// BootstrapChat creates the empty chat between two users if it is missing.
// Projections appear with the first message.
type BootstrapChat struct {
	A, B string
}

func (BootstrapChat) name() string { return "BootstrapChat" }

func (m BootstrapChat) apply(tx docstore.Tx, res *Result) error {
	const op = "BootstrapChat"
	if !model.ValidUserID(m.A) || !model.ValidUserID(m.B) || m.A == m.B {
		return errs.Validationf(op, "invalid participants %q and %q", m.A, m.B)
	}
	chatID := model.ChatID(m.A, m.B)
	snap, err := tx.Get(model.ChatPath(chatID))
	if err == nil {
		res.Noop = true
		res.Chat, err = summary.Decode(snap)
		return err
	}
	if !errors.Is(err, docstore.ErrNotFound) {
		return err
	}
	now, err := tx.ServerTime()
	if err != nil {
		return err
	}
	c := summary.Empty(m.A, m.B, now)
	tx.Write(docstore.Create(model.ChatPath(chatID), c))
	res.Chat = c
	return nil
}

// DeleteChat removes a chat, its whole message log and both projections.
type DeleteChat struct {
	ChatID string
	UserID string
}

func (DeleteChat) name() string { return "DeleteChat" }

func (m DeleteChat) apply(tx docstore.Tx, res *Result) error {
	const op = "DeleteChat"
	st, err := loadChat(tx, m.ChatID)
	if err != nil {
		return err
	}
	if !st.exists {
		return errs.NotFoundf(op, "chat %s", m.ChatID)
	}
	if err := requireParticipant(op, st.chat, m.UserID); err != nil {
		return err
	}

	snaps, err := tx.Query(docstore.Collection(model.MessagesPath(m.ChatID)))
	if err != nil {
		return err
	}
	for _, snap := range snaps {
		tx.Write(docstore.Delete(snap.Path))
	}
	tx.Write(docstore.Delete(model.ChatPath(m.ChatID)))
	for _, p := range st.chat.Participants {
		tx.Write(docstore.Delete(model.ProjectionPath(p, m.ChatID)))
	}
	return nil
}
