package store

import (
	"database/sql"
	"errors"
	"time"
)

// BeginSend records a fan-out in flight. Re-issuing the same message id
// resets the entry to sending.
func (db *DB) BeginSend(e OutboxEntry) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`
		INSERT INTO outbox (message_id, temp_id, chat_id, sender_id, body, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'sending', ?, ?)
		ON CONFLICT(message_id) DO UPDATE SET
			temp_id = excluded.temp_id,
			body = excluded.body,
			status = 'sending',
			error_message = '',
			updated_at = excluded.updated_at`,
		e.MessageID, e.TempID, e.ChatID, e.SenderID, e.Body, now, now)
	return err
}

// MarkOutboxSent records that the message is in the log.
func (db *DB) MarkOutboxSent(messageID string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = 'sent', error_message = '', updated_at = ? WHERE message_id = ?`, now, messageID)
	return err
}

// MarkOutboxFailed records that the fan-out did not commit.
func (db *DB) MarkOutboxFailed(messageID, errMsg string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = 'failed', error_message = ?, updated_at = ? WHERE message_id = ?`, errMsg, now, messageID)
	return err
}

// GetOutbox returns the entry for messageID, or nil if there is none.
func (db *DB) GetOutbox(messageID string) (*OutboxEntry, error) {
	row := db.QueryRow(`
		SELECT id, message_id, temp_id, chat_id, sender_id, body, status, error_message, created_at, updated_at
		FROM outbox WHERE message_id = ?`, messageID)
	e, err := scanOutbox(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return e, err
}

// StaleSending returns entries still marked sending that were last touched
// before cutoff (unix millis).
func (db *DB) StaleSending(cutoff int64) ([]OutboxEntry, error) {
	return db.listOutbox(`
		SELECT id, message_id, temp_id, chat_id, sender_id, body, status, error_message, created_at, updated_at
		FROM outbox WHERE status = 'sending' AND updated_at < ? ORDER BY created_at ASC`, cutoff)
}

// FailedSends returns failed entries of a sender, newest first. An empty
// chatID matches every chat.
func (db *DB) FailedSends(senderID, chatID string) ([]OutboxEntry, error) {
	return db.listOutbox(`
		SELECT id, message_id, temp_id, chat_id, sender_id, body, status, error_message, created_at, updated_at
		FROM outbox
		WHERE status = 'failed' AND sender_id = ? AND (? = '' OR chat_id = ?)
		ORDER BY updated_at DESC`, senderID, chatID, chatID)
}

func (db *DB) listOutbox(query string, args ...any) ([]OutboxEntry, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []OutboxEntry
	for rows.Next() {
		e, err := scanOutbox(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOutbox(s scanner) (*OutboxEntry, error) {
	var e OutboxEntry
	if err := s.Scan(&e.ID, &e.MessageID, &e.TempID, &e.ChatID, &e.SenderID, &e.Body, &e.Status, &e.ErrorMessage, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return &e, nil
}
