package fanout

import (
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/summary"
)

// NewMessage appends a message. Message.ID must be allocated by the caller
// and is the idempotency key: if it is already in the log the commit is a
// no-op reported as Duplicate. Timestamp and Status are assigned here.
type NewMessage struct {
	Message model.Message
}

func (NewMessage) name() string { return "NewMessage" }

func (m NewMessage) apply(tx docstore.Tx, res *Result) error {
	msg := m.Message
	const op = "NewMessage"
	if msg.ID == "" {
		return errs.Validationf(op, "missing message id")
	}
	if msg.Text == "" && msg.Media == nil {
		return errs.Validationf(op, "empty message")
	}
	if !participantOf(msg.ChatID, msg.SenderID) {
		return errs.Validationf(op, "%s is not a participant of %s", msg.SenderID, msg.ChatID)
	}

	existing, err := getMessage(tx, op, msg.ChatID, msg.ID)
	switch {
	case errs.IsNotFound(err):
	case err != nil:
		return err
	default:
		res.Message, res.Duplicate, res.Noop = existing, true, true
		snap, err := tx.Get(model.ChatPath(msg.ChatID))
		if err == nil {
			res.Chat, _ = summary.Decode(snap)
		}
		return nil
	}

	st, err := loadChat(tx, msg.ChatID)
	if err != nil {
		return err
	}
	now, err := tx.ServerTime()
	if err != nil {
		return err
	}
	if !st.exists {
		a, b, _ := model.ParseChatID(msg.ChatID)
		st.chat = summary.Empty(a, b, now)
	}

	msg.Timestamp = now
	msg.Status = model.StatusSent
	msg.Edited = false
	tx.Write(docstore.Create(model.MessagePath(msg.ChatID, msg.ID), msg))

	summary.SetLast(st.chat, &msg)
	receiver := st.chat.Partner(msg.SenderID)
	st.chat.UnreadCount[receiver]++
	st.writeChat(tx)

	res.Message, res.Chat = &msg, st.chat
	return nil
}

// EditMessage replaces the text of a message. Only the sender may edit.
// When BaseText is set the edit is rejected with a Conflict unless the
// stored text still matches it.
type EditMessage struct {
	ChatID    string
	MessageID string
	EditorID  string
	Text      string
	BaseText  *string
}

func (EditMessage) name() string { return "EditMessage" }

func (m EditMessage) apply(tx docstore.Tx, res *Result) error {
	const op = "EditMessage"
	msg, err := getMessage(tx, op, m.ChatID, m.MessageID)
	if err != nil {
		return err
	}
	if msg.SenderID != m.EditorID {
		return errs.Validationf(op, "only the sender can edit message %s", m.MessageID)
	}
	if m.Text == "" && msg.Media == nil {
		return errs.Validationf(op, "empty message")
	}
	if m.BaseText != nil && *m.BaseText != msg.Text {
		return errs.Conflictf(op, "message %s changed since it was read", m.MessageID)
	}

	msg.Text = m.Text
	msg.Edited = true
	tx.Write(docstore.Update(model.MessagePath(m.ChatID, m.MessageID), map[string]any{
		"text":   m.Text,
		"edited": true,
	}))
	res.Message = msg

	st, err := loadChat(tx, m.ChatID)
	if err != nil {
		return err
	}
	if !st.exists {
		return nil
	}
	res.Chat = st.chat
	if st.chat.LastMessageID == msg.ID {
		st.chat.LastMessage = msg.Preview()
		st.writeChat(tx)
	}
	return nil
}

// DeleteMessage removes a message from the log. Only the sender may
// delete. When it was the last message, the headline moves to the newest
// remaining message or is cleared. Unread counters are left as they are.
type DeleteMessage struct {
	ChatID    string
	MessageID string
	DeleterID string
}

func (DeleteMessage) name() string { return "DeleteMessage" }

func (m DeleteMessage) apply(tx docstore.Tx, res *Result) error {
	const op = "DeleteMessage"
	msg, err := getMessage(tx, op, m.ChatID, m.MessageID)
	if err != nil {
		return err
	}
	if msg.SenderID != m.DeleterID {
		return errs.Validationf(op, "only the sender can delete message %s", m.MessageID)
	}
	tx.Write(docstore.Delete(model.MessagePath(m.ChatID, m.MessageID)))
	res.Message = msg

	st, err := loadChat(tx, m.ChatID)
	if err != nil {
		return err
	}
	if !st.exists {
		return nil
	}
	res.Chat = st.chat
	if st.chat.LastMessageID != msg.ID {
		return nil
	}

	// Reads see the state before this transaction, so the deleted message
	// can still be among the newest two.
	snaps, err := tx.Query(messagelog.Recent(m.ChatID, 2))
	if err != nil {
		return err
	}
	var next *model.Message
	for _, snap := range snaps {
		if snap.ID() == msg.ID {
			continue
		}
		if next, err = messagelog.Decode(snap); err != nil {
			return err
		}
		break
	}
	summary.SetLast(st.chat, next)
	st.writeChat(tx)
	return nil
}

// MarkRead zeroes the reader's unread counter on the summary and on the
// reader's projection. It writes nothing when both are already zero.
type MarkRead struct {
	ChatID string
	UserID string
}

func (MarkRead) name() string { return "MarkRead" }

func (m MarkRead) apply(tx docstore.Tx, res *Result) error {
	const op = "MarkRead"
	if !participantOf(m.ChatID, m.UserID) {
		return errs.Validationf(op, "%s is not a participant of %s", m.UserID, m.ChatID)
	}
	st, err := loadChat(tx, m.ChatID)
	if err != nil {
		return err
	}
	if !st.exists {
		res.Noop = true
		return nil
	}
	res.Chat = st.chat

	prev := st.prev[m.UserID]
	if st.chat.UnreadCount[m.UserID] == 0 && (prev == nil || prev.UnreadCount == 0) {
		res.Noop = true
		return nil
	}
	st.chat.UnreadCount[m.UserID] = 0
	st.writeChat(tx)
	return nil
}
