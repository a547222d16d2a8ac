package store

import "github.com/matheus3301/chatsync/internal/model"

const (
	OutboxSending = "sending"
	OutboxSent    = "sent"
	OutboxFailed  = "failed"
)

// OutboxEntry tracks one fan-out from the moment it is issued until the
// message is known to be in the log or known to be absent.
type OutboxEntry struct {
	ID           int64
	MessageID    string
	TempID       string
	ChatID       string
	SenderID     string
	Body         string
	Status       string // sending, sent, failed
	ErrorMessage string
	CreatedAt    int64
	UpdatedAt    int64
}

// Draft is the unsent input of a chat. RetryID is the message id allocated
// by a failed send, re-used when the draft is sent again.
type Draft struct {
	UserID    string
	ChatID    string
	Text      string
	ReplyTo   *model.ReplyTo
	RetryID   string
	UpdatedAt int64
}

// Empty reports whether the draft holds nothing worth keeping.
func (d *Draft) Empty() bool {
	return d.Text == "" && d.ReplyTo == nil && d.RetryID == ""
}
