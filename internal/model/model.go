// Package model holds the document shapes shared by every replica and the
// path scheme that locates them in the document store.
package model

import (
	"fmt"
	"sort"
	"strings"
)

// User is a profile document.
type User struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	IsOnline    bool     `json:"isOnline"`
	LastSeenAt  int64    `json:"lastSeenAt,omitempty"`
	FriendIDs   []string `json:"friendIds"`
	FriendCount int      `json:"friendCount"`
}

// HasFriend reports whether id is in the user's friend list.
func (u *User) HasFriend(id string) bool {
	for _, f := range u.FriendIDs {
		if f == id {
			return true
		}
	}
	return false
}

// Friend is one direction of a friendship edge, stored under the owner.
type Friend struct {
	FriendID string `json:"friendId"`
	Since    int64  `json:"since"`
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "pending"
	RequestAccepted  RequestStatus = "accepted"
	RequestRejected  RequestStatus = "rejected"
	RequestCancelled RequestStatus = "cancelled"
)

// Terminal reports whether no further transition is allowed.
func (s RequestStatus) Terminal() bool {
	return s == RequestAccepted || s == RequestRejected || s == RequestCancelled
}

// FriendRequest carries denormalized display fields for both ends so request
// lists render without profile lookups.
type FriendRequest struct {
	ID             string        `json:"id"`
	SenderID       string        `json:"senderId"`
	SenderName     string        `json:"senderName"`
	SenderAvatar   string        `json:"senderAvatar,omitempty"`
	ReceiverID     string        `json:"receiverId"`
	ReceiverName   string        `json:"receiverName"`
	ReceiverAvatar string        `json:"receiverAvatar,omitempty"`
	Status         RequestStatus `json:"status"`
	CreatedAt      int64         `json:"createdAt"`
	RespondedAt    int64         `json:"respondedAt,omitempty"`
}

// PendingMarker holds the dedup slot for an ordered (sender, receiver) pair
// while a request is pending.
type PendingMarker struct {
	RequestID string `json:"requestId"`
}

// Chat is the canonical summary document of a 1:1 conversation.
type Chat struct {
	ID                  string         `json:"id"`
	Participants        []string       `json:"participants"`
	LastMessage         string         `json:"lastMessage"`
	LastMessageAt       int64          `json:"lastMessageAt"`
	LastMessageSenderID string         `json:"lastMessageSenderId"`
	LastMessageID       string         `json:"lastMessageId"`
	UnreadCount         map[string]int `json:"unreadCount"`
	CreatedAt           int64          `json:"createdAt"`
}

// Partner returns the participant that is not userID.
func (c *Chat) Partner(userID string) string {
	for _, p := range c.Participants {
		if p != userID {
			return p
		}
	}
	return ""
}

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
)

// Valid reports whether k is a known kind.
func (k MediaKind) Valid() bool {
	return k == MediaImage || k == MediaVideo || k == MediaAudio
}

// Label is the preview text used for a media message without a caption.
func (k MediaKind) Label() string {
	switch k {
	case MediaImage:
		return "Image"
	case MediaVideo:
		return "Video"
	case MediaAudio:
		return "Voice note"
	}
	return ""
}

type Media struct {
	URL      string    `json:"url"`
	Type     MediaKind `json:"type"`
	FileName string    `json:"fileName,omitempty"`
}

type ReplyTo struct {
	MessageID  string `json:"messageId"`
	Text       string `json:"text"`
	SenderID   string `json:"senderId"`
	SenderName string `json:"senderName"`
}

type MessageStatus string

const (
	StatusSent      MessageStatus = "sent"
	StatusDelivered MessageStatus = "delivered"
	StatusRead      MessageStatus = "read"
)

// Rank orders statuses so they only move forward.
func (s MessageStatus) Rank() int {
	switch s {
	case StatusSent:
		return 1
	case StatusDelivered:
		return 2
	case StatusRead:
		return 3
	}
	return 0
}

// Message is one entry of a chat's message log.
type Message struct {
	ID        string        `json:"id"`
	ChatID    string        `json:"chatId"`
	SenderID  string        `json:"senderId"`
	Timestamp int64         `json:"timestamp"`
	Text      string        `json:"text"`
	Media     *Media        `json:"media,omitempty"`
	ReplyTo   *ReplyTo      `json:"replyTo,omitempty"`
	Edited    bool          `json:"edited"`
	Status    MessageStatus `json:"status"`

	// Seq is the store write sequence that created the message.
	Seq int64 `json:"-"`
}

// Preview returns the text shown in chat headlines.
func (m *Message) Preview() string {
	return Preview(m.Text, m.Media)
}

// Preview returns text, or the media label when text is empty.
func Preview(text string, media *Media) string {
	if text == "" && media != nil {
		return media.Type.Label()
	}
	return text
}

// ChatListEntry is the per-user projection of a chat, plus the placeholder
// rows the chat-list merge synthesizes for friends without one.
type ChatListEntry struct {
	ChatID              string `json:"chatId"`
	PartnerID           string `json:"partnerId"`
	PartnerName         string `json:"partnerName"`
	PartnerAvatar       string `json:"partnerAvatar,omitempty"`
	PartnerOnline       bool   `json:"partnerOnline"`
	LastMessagePreview  string `json:"lastMessagePreview"`
	LastMessageAt       int64  `json:"lastMessageAt"`
	LastMessageSenderID string `json:"lastMessageSenderId,omitempty"`
	UnreadCount         int    `json:"unreadCount"`
	Pinned              bool   `json:"pinned"`
	Archived            bool   `json:"archived"`
	Muted               bool   `json:"muted"`

	// Placeholder marks a synthesized row with no stored projection.
	Placeholder bool `json:"-"`
}

// ChatID derives the deterministic id of the chat between two users.
func ChatID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0] + "_" + ids[1]
}

// ParseChatID splits a chat id into its two participants.
func ParseChatID(chatID string) (string, string, error) {
	a, b, ok := strings.Cut(chatID, "_")
	if !ok || a == "" || b == "" || strings.Contains(b, "_") || a >= b {
		return "", "", fmt.Errorf("malformed chat id %q", chatID)
	}
	return a, b, nil
}

// ValidUserID reports whether id can be used in paths, chat ids and dotted
// field names.
func ValidUserID(id string) bool {
	return id != "" && !strings.ContainsAny(id, "_/.")
}

func UserPath(uid string) string        { return "users/" + uid }
func FriendsPath(uid string) string     { return UserPath(uid) + "/friends" }
func FriendPath(uid, fid string) string { return FriendsPath(uid) + "/" + fid }
func ChatListPath(uid string) string    { return UserPath(uid) + "/chatList" }
func ProjectionPath(uid, chatID string) string {
	return ChatListPath(uid) + "/" + chatID
}

const (
	UsersCollection    = "users"
	RequestsCollection = "friendRequests"
	PendingCollection  = "pendingRequests"
	ChatsCollection    = "chats"
)

func RequestPath(id string) string { return RequestsCollection + "/" + id }

func PendingPath(senderID, receiverID string) string {
	return PendingCollection + "/" + senderID + "_" + receiverID
}

func ChatPath(chatID string) string     { return ChatsCollection + "/" + chatID }
func MessagesPath(chatID string) string { return ChatPath(chatID) + "/messages" }
func MessagePath(chatID, msgID string) string {
	return MessagesPath(chatID) + "/" + msgID
}
