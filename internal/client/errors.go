package client

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	grpcstatus "google.golang.org/grpc/status"
)

// ErrorInfo keys attached by the daemon to a failed SendMessage.
const (
	ErrorDomain       = "chatsync"
	ReasonSendFailed  = "SEND_FAILED"
	MetadataMessageID = "message_id"
	MetadataChatID    = "chat_id"
	MetadataErrorKind = "kind"
)

// FailedSendID extracts the retry message id from a SendMessage error.
func FailedSendID(err error) (string, bool) {
	st, ok := grpcstatus.FromError(err)
	if !ok {
		return "", false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetReason() == ReasonSendFailed {
			return info.GetMetadata()[MetadataMessageID], true
		}
	}
	return "", false
}
