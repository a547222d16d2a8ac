package sync

import (
	"fmt"

	"github.com/matheus3301/chatsync/internal/store"
)

// SendFailedError reports a send whose optimistic entry was rolled back.
// Draft is the input restored for the user; its RetryID (equal to
// MessageID) makes a retry re-use the allocated id.
type SendFailedError struct {
	ChatID    string
	TempID    string
	MessageID string
	Draft     store.Draft
	Err       error
}

func (e *SendFailedError) Error() string {
	return fmt.Sprintf("send %s failed: %v", e.MessageID, e.Err)
}

func (e *SendFailedError) Unwrap() error { return e.Err }
