package api

import (
	"errors"
	"testing"

	"github.com/matheus3301/chatsync/internal/client"
	"github.com/matheus3301/chatsync/internal/errs"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

func TestToStatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"validation", errs.Validationf("SendMessage", "empty message"), codes.InvalidArgument},
		{"not found", errs.NotFoundf("GetChat", "chat x"), codes.NotFound},
		{"conflict", errs.Conflictf("SendRequest", "duplicate"), codes.Aborted},
		{"transient", errs.TransientIO("Commit", errors.New("disk full")), codes.Unavailable},
		{"plain", errors.New("boom"), codes.Unavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, ok := grpcstatus.FromError(toStatus(tt.err))
			if !ok {
				t.Fatal("not a status error")
			}
			if st.Code() != tt.want {
				t.Errorf("code = %v, want %v", st.Code(), tt.want)
			}
		})
	}
}

func TestToStatusPassesStatusThrough(t *testing.T) {
	in := grpcstatus.Error(codes.PermissionDenied, "nope")
	if got := toStatus(in); got != in {
		t.Errorf("toStatus() = %v, want unchanged", got)
	}
	if toStatus(nil) != nil {
		t.Error("toStatus(nil) should be nil")
	}
}

func TestFailedSendCarriesRetryID(t *testing.T) {
	err := toStatus(&intsync.SendFailedError{
		ChatID:    "alice_bob",
		MessageID: "m42",
		Err:       errs.TransientIO("SendMessage", errors.New("store down")),
	})
	if grpcstatus.Code(err) != codes.Unavailable {
		t.Errorf("code = %v, want Unavailable", grpcstatus.Code(err))
	}
	id, ok := client.FailedSendID(err)
	if !ok || id != "m42" {
		t.Errorf("FailedSendID() = %q, %v; want m42, true", id, ok)
	}

	if _, ok := client.FailedSendID(toStatus(errs.Validationf("SendMessage", "empty"))); ok {
		t.Error("validation error should carry no retry id")
	}
}
