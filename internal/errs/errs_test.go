package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/stretchr/testify/assert"
)

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("send: %w", Validationf("SendMessage", "empty message"))
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, Validation, KindOf(err))
	assert.Equal(t, "SendMessage: validation: empty message", errors.Unwrap(err).Error())
}

func TestFromStore(t *testing.T) {
	tests := []struct {
		in   error
		want Kind
	}{
		{docstore.ErrNotFound, NotFound},
		{fmt.Errorf("create: %w", docstore.ErrAlreadyExists), Conflict},
		{docstore.ErrInvalidPath, Validation},
		{context.DeadlineExceeded, Transient},
		{errors.New("connection reset"), Transient},
		{Conflictf("EditMessage", "stale"), Conflict},
	}
	for _, tt := range tests {
		got := FromStore("op", tt.in)
		assert.Equal(t, tt.want, KindOf(got), "input %v", tt.in)
		assert.ErrorIs(t, got, tt.in)
	}
	assert.NoError(t, FromStore("op", nil))
}

func TestTransientIO(t *testing.T) {
	cause := errors.New("boom")
	err := TransientIO("fanout", cause)
	assert.True(t, IsTransient(err))
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, TransientIO("fanout", nil))
	assert.Equal(t, "transient_io", Transient.String())
}
