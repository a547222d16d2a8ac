package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matheus3301/chatsync/internal/model"
)

// SaveDraft stores d, or deletes the row when the draft is empty.
func (db *DB) SaveDraft(d Draft) error {
	if d.Empty() {
		return db.ClearDraft(d.UserID, d.ChatID)
	}
	replyTo := ""
	if d.ReplyTo != nil {
		b, err := json.Marshal(d.ReplyTo)
		if err != nil {
			return fmt.Errorf("encode reply target: %w", err)
		}
		replyTo = string(b)
	}
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO drafts (user_id, chat_id, text, reply_to, retry_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, chat_id) DO UPDATE SET
			text = excluded.text,
			reply_to = excluded.reply_to,
			retry_id = excluded.retry_id,
			updated_at = excluded.updated_at`,
		d.UserID, d.ChatID, d.Text, replyTo, d.RetryID, now)
	return err
}

// GetDraft returns the draft of a chat, or nil when there is none.
func (db *DB) GetDraft(userID, chatID string) (*Draft, error) {
	var d Draft
	var replyTo string
	err := db.QueryRow(`
		SELECT user_id, chat_id, text, reply_to, retry_id, updated_at
		FROM drafts WHERE user_id = ? AND chat_id = ?`, userID, chatID).
		Scan(&d.UserID, &d.ChatID, &d.Text, &replyTo, &d.RetryID, &d.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if replyTo != "" {
		d.ReplyTo = &model.ReplyTo{}
		if err := json.Unmarshal([]byte(replyTo), d.ReplyTo); err != nil {
			return nil, fmt.Errorf("decode reply target: %w", err)
		}
	}
	return &d, nil
}

// ClearDraft removes the draft of a chat.
func (db *DB) ClearDraft(userID, chatID string) error {
	_, err := db.Exec(`DELETE FROM drafts WHERE user_id = ? AND chat_id = ?`, userID, chatID)
	return err
}
