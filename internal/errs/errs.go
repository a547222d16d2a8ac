// Package errs is the error taxonomy shared by the sync engine and its
// collaborators.
package errs

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheus3301/chatsync/internal/docstore"
)

type Kind int

const (
	// Transient covers store and network failures. It is the zero value so
	// unclassified failures are treated as retryable by the caller.
	Transient Kind = iota
	Validation
	NotFound
	Conflict
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not_found"
	case Conflict:
		return "conflict"
	default:
		return "transient_io"
	}
}

// Error is a classified failure.
type Error struct {
	Kind Kind
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Op == "" {
		return fmt.Sprintf("%s: %s", e.Kind, msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, msg)
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

func Validationf(op, format string, args ...any) error {
	return newf(Validation, op, format, args...)
}

func NotFoundf(op, format string, args ...any) error {
	return newf(NotFound, op, format, args...)
}

func Conflictf(op, format string, args ...any) error {
	return newf(Conflict, op, format, args...)
}

// TransientIO wraps a store or network failure.
func TransientIO(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: Transient, Op: op, Err: err}
}

// KindOf classifies err. Errors outside the taxonomy are Transient.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Transient
}

func IsValidation(err error) bool { return is(err, Validation) }
func IsNotFound(err error) bool   { return is(err, NotFound) }
func IsConflict(err error) bool   { return is(err, Conflict) }
func IsTransient(err error) bool  { return is(err, Transient) }

func is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// FromStore classifies a document store error. Already classified errors
// pass through unchanged.
func FromStore(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return &Error{Kind: NotFound, Op: op, Err: err}
	case errors.Is(err, docstore.ErrAlreadyExists):
		return &Error{Kind: Conflict, Op: op, Err: err}
	case errors.Is(err, docstore.ErrInvalidPath):
		return &Error{Kind: Validation, Op: op, Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &Error{Kind: Transient, Op: op, Msg: "timed out", Err: err}
	}
	return &Error{Kind: Transient, Op: op, Err: err}
}
