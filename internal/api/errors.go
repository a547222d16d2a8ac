package api

import (
	"errors"

	"github.com/matheus3301/chatsync/internal/client"
	"github.com/matheus3301/chatsync/internal/errs"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// toStatus maps an error onto a gRPC status by its kind. A failed send
// carries the allocated message id so the caller can retry with it.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := grpcstatus.FromError(err); ok {
		return err
	}

	kind := errs.KindOf(err)
	st := grpcstatus.New(codeOf(kind), err.Error())

	var sendErr *intsync.SendFailedError
	if errors.As(err, &sendErr) {
		withInfo, detailErr := st.WithDetails(&errdetails.ErrorInfo{
			Reason: client.ReasonSendFailed,
			Domain: client.ErrorDomain,
			Metadata: map[string]string{
				client.MetadataMessageID: sendErr.MessageID,
				client.MetadataChatID:    sendErr.ChatID,
				client.MetadataErrorKind: kind.String(),
			},
		})
		if detailErr == nil {
			st = withInfo
		}
	}
	return st.Err()
}

func codeOf(k errs.Kind) codes.Code {
	switch k {
	case errs.Validation:
		return codes.InvalidArgument
	case errs.NotFound:
		return codes.NotFound
	case errs.Conflict:
		return codes.Aborted
	default:
		return codes.Unavailable
	}
}
