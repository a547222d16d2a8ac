package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, ChatID("bob", "alice"), ChatID("alice", "bob"))
	assert.Equal(t, "alice_bob", ChatID("bob", "alice"))

	a, b, err := ParseChatID("alice_bob")
	require.NoError(t, err)
	assert.Equal(t, "alice", a)
	assert.Equal(t, "bob", b)

	for _, bad := range []string{"alice", "bob_alice", "_bob", "a_b_c", "alice_"} {
		_, _, err := ParseChatID(bad)
		assert.Error(t, err, bad)
	}
}

func TestValidUserID(t *testing.T) {
	assert.True(t, ValidUserID("alice"))
	assert.False(t, ValidUserID(""))
	assert.False(t, ValidUserID("a_b"))
	assert.False(t, ValidUserID("a/b"))
	assert.False(t, ValidUserID("a.b"))
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "hi", Preview("hi", nil))
	assert.Equal(t, "caption", Preview("caption", &Media{Type: MediaImage}))
	assert.Equal(t, "Image", Preview("", &Media{Type: MediaImage}))
	assert.Equal(t, "Video", Preview("", &Media{Type: MediaVideo}))
	assert.Equal(t, "Voice note", Preview("", &Media{Type: MediaAudio}))
	assert.Equal(t, "", Preview("", nil))
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, StatusSent.Rank(), StatusDelivered.Rank())
	assert.Less(t, StatusDelivered.Rank(), StatusRead.Rank())
	assert.True(t, RequestRejected.Terminal())
	assert.False(t, RequestPending.Terminal())
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "users/a/chatList/a_b", ProjectionPath("a", "a_b"))
	assert.Equal(t, "chats/a_b/messages/m1", MessagePath("a_b", "m1"))
	assert.Equal(t, "pendingRequests/a_b", PendingPath("a", "b"))
	assert.Equal(t, "users/a/friends/b", FriendPath("a", "b"))

	c := &Chat{Participants: []string{"a", "b"}}
	assert.Equal(t, "b", c.Partner("a"))
	u := &User{FriendIDs: []string{"b"}}
	assert.True(t, u.HasFriend("b"))
	assert.False(t, u.HasFriend("c"))
}
