package api

import (
	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/store"
	intsync "github.com/matheus3301/chatsync/internal/sync"
)

func userToProto(u *model.User) *chatsyncv1.User {
	return &chatsyncv1.User{
		Id:          u.ID,
		DisplayName: u.DisplayName,
		AvatarUrl:   u.AvatarURL,
		Online:      u.IsOnline,
		FriendCount: int32(u.FriendCount),
	}
}

func chatEntryToProto(e *model.ChatListEntry) *chatsyncv1.ChatListEntry {
	return &chatsyncv1.ChatListEntry{
		ChatId:              e.ChatID,
		PartnerId:           e.PartnerID,
		PartnerName:         e.PartnerName,
		PartnerAvatar:       e.PartnerAvatar,
		PartnerOnline:       e.PartnerOnline,
		LastMessagePreview:  e.LastMessagePreview,
		LastMessageAtUnixMs: e.LastMessageAt,
		LastMessageSenderId: e.LastMessageSenderID,
		UnreadCount:         int32(e.UnreadCount),
		Pinned:              e.Pinned,
		Archived:            e.Archived,
		Muted:               e.Muted,
		Placeholder:         e.Placeholder,
	}
}

func chatListToProto(entries []model.ChatListEntry) []*chatsyncv1.ChatListEntry {
	out := make([]*chatsyncv1.ChatListEntry, len(entries))
	for i := range entries {
		out[i] = chatEntryToProto(&entries[i])
	}
	return out
}

func replyToProto(r *model.ReplyTo) *chatsyncv1.ReplyTo {
	if r == nil {
		return nil
	}
	return &chatsyncv1.ReplyTo{
		MessageId:  r.MessageID,
		Text:       r.Text,
		SenderId:   r.SenderID,
		SenderName: r.SenderName,
	}
}

func replyFromProto(r *chatsyncv1.ReplyTo) *model.ReplyTo {
	if r == nil || r.MessageId == "" {
		return nil
	}
	return &model.ReplyTo{
		MessageID:  r.MessageId,
		Text:       r.Text,
		SenderID:   r.SenderId,
		SenderName: r.SenderName,
	}
}

func messageToProto(m *model.Message) *chatsyncv1.Message {
	out := &chatsyncv1.Message{
		Id:              m.ID,
		ChatId:          m.ChatID,
		SenderId:        m.SenderID,
		TimestampUnixMs: m.Timestamp,
		Text:            m.Text,
		ReplyTo:         replyToProto(m.ReplyTo),
		Edited:          m.Edited,
		Status:          string(m.Status),
	}
	if m.Media != nil {
		out.Media = &chatsyncv1.Media{Url: m.Media.URL, Type: string(m.Media.Type), FileName: m.Media.FileName}
	}
	return out
}

func entryToProto(e intsync.Entry) *chatsyncv1.Message {
	m := e.Msg()
	out := messageToProto(&m)
	switch v := e.(type) {
	case intsync.Pending:
		out.Pending = true
		out.Uploading = v.Uploading
	case intsync.Confirmed:
		out.Pending = v.Pending
	}
	return out
}

func timelineToProto(chatID string, entries []intsync.Entry, failed bool) *chatsyncv1.Timeline {
	msgs := make([]*chatsyncv1.Message, len(entries))
	for i, e := range entries {
		msgs[i] = entryToProto(e)
	}
	return &chatsyncv1.Timeline{ChatId: chatID, Messages: msgs, Failed: failed}
}

func requestToProto(r *model.FriendRequest) *chatsyncv1.FriendRequest {
	return &chatsyncv1.FriendRequest{
		Id:              r.ID,
		SenderId:        r.SenderID,
		SenderName:      r.SenderName,
		ReceiverId:      r.ReceiverID,
		ReceiverName:    r.ReceiverName,
		Status:          string(r.Status),
		CreatedAtUnixMs: r.CreatedAt,
	}
}

func requestsToProto(rs []*model.FriendRequest) []*chatsyncv1.FriendRequest {
	out := make([]*chatsyncv1.FriendRequest, len(rs))
	for i, r := range rs {
		out[i] = requestToProto(r)
	}
	return out
}

func failedSendToProto(e store.OutboxEntry) *chatsyncv1.FailedSend {
	return &chatsyncv1.FailedSend{
		MessageId:      e.MessageID,
		ChatId:         e.ChatID,
		Text:           e.Body,
		Error:          e.ErrorMessage,
		FailedAtUnixMs: e.UpdatedAt,
	}
}
