package api

import (
	"testing"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/status"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"google.golang.org/protobuf/proto"
)

func TestTimelineSurvivesWire(t *testing.T) {
	entries := []intsync.Entry{
		intsync.Confirmed{Message: model.Message{
			ID:        "m1",
			ChatID:    "alice_bob",
			SenderID:  "bob",
			Timestamp: 1000,
			Text:      "look",
			Media:     &model.Media{URL: "file:///tmp/a.png", Type: model.MediaImage, FileName: "a.png"},
			Status:    model.StatusRead,
		}},
		intsync.Pending{TempID: "tmp-1", Uploading: true, Message: model.Message{
			ID:       "tmp-1",
			ChatID:   "alice_bob",
			SenderID: "alice",
			Text:     "reply",
			ReplyTo:  &model.ReplyTo{MessageID: "m1", Text: "look", SenderID: "bob", SenderName: "Bob"},
		}},
	}

	b, err := proto.Marshal(timelineToProto("alice_bob", entries, true))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	var got chatsyncv1.Timeline
	if err := proto.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if got.GetChatId() != "alice_bob" || !got.GetFailed() || len(got.GetMessages()) != 2 {
		t.Fatalf("timeline = %v", &got)
	}
	first, second := got.GetMessages()[0], got.GetMessages()[1]
	if first.GetMedia().GetUrl() != "file:///tmp/a.png" || first.GetMedia().GetType() != "image" || first.GetStatus() != "read" {
		t.Errorf("confirmed message = %v", first)
	}
	if first.GetPending() {
		t.Error("confirmed message marked pending")
	}
	if !second.GetPending() || !second.GetUploading() {
		t.Errorf("pending flags = %v/%v, want true/true", second.GetPending(), second.GetUploading())
	}
	if second.GetReplyTo().GetMessageId() != "m1" || second.GetReplyTo().GetSenderName() != "Bob" {
		t.Errorf("reply = %v", second.GetReplyTo())
	}
}

func TestReplyFromProtoDropsEmptyReference(t *testing.T) {
	if replyFromProto(nil) != nil {
		t.Error("nil reply should map to nil")
	}
	if replyFromProto(&chatsyncv1.ReplyTo{Text: "orphan"}) != nil {
		t.Error("reply without message id should map to nil")
	}
	r := replyFromProto(&chatsyncv1.ReplyTo{MessageId: "m1", SenderId: "bob"})
	if r == nil || r.MessageID != "m1" || r.SenderID != "bob" {
		t.Errorf("replyFromProto() = %+v", r)
	}
}

func TestStateToProto(t *testing.T) {
	tests := []struct {
		in   status.State
		want chatsyncv1.SessionStatus
	}{
		{status.Booting, chatsyncv1.SessionStatus_SESSION_STATUS_BOOTING},
		{status.Connecting, chatsyncv1.SessionStatus_SESSION_STATUS_CONNECTING},
		{status.Ready, chatsyncv1.SessionStatus_SESSION_STATUS_READY},
		{status.Degraded, chatsyncv1.SessionStatus_SESSION_STATUS_DEGRADED},
		{status.Error, chatsyncv1.SessionStatus_SESSION_STATUS_ERROR},
		{status.State("WEIRD"), chatsyncv1.SessionStatus_SESSION_STATUS_UNSPECIFIED},
	}
	for _, tt := range tests {
		if got := stateToProto(tt.in); got != tt.want {
			t.Errorf("stateToProto(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
