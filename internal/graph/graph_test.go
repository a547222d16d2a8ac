package graph

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/memdoc"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/fanout"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bootstrapFunc func(ctx context.Context, a, b string) error

func (f bootstrapFunc) Bootstrap(ctx context.Context, a, b string) error { return f(ctx, a, b) }

func setup(t *testing.T, bootstrap ChatBootstrapper) (*Service, *docstore.Engine) {
	t.Helper()
	docs := docstore.New(memdoc.New(), nil, nil)
	t.Cleanup(func() { _ = docs.Close() })
	ids := identity.New(docs, nil)
	for _, u := range []model.User{
		{ID: "alice", DisplayName: "Alice", AvatarURL: "file:///alice.png"},
		{ID: "bob", DisplayName: "Bob"},
		{ID: "carol", DisplayName: "Carol"},
	} {
		_, err := ids.Register(context.Background(), u)
		require.NoError(t, err)
	}
	if bootstrap == nil {
		bootstrap = fanout.NewWriter(docs, nil)
	}
	return New(docs, ids, bootstrap, nil), docs
}

func pendingFor(t *testing.T, docs *docstore.Engine, a, b string) int {
	t.Helper()
	n := 0
	for _, pair := range [][2]string{{a, b}, {b, a}} {
		snaps, err := docs.Query(context.Background(), docstore.Collection(model.RequestsCollection).
			Where("senderId", pair[0]).Where("receiverId", pair[1]).Where("status", model.RequestPending))
		require.NoError(t, err)
		n += len(snaps)
	}
	return n
}

func TestSendDenormalizesDisplayFields(t *testing.T) {
	s, _ := setup(t, nil)
	req, err := s.Send(context.Background(), "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, model.RequestPending, req.Status)
	assert.Equal(t, "Alice", req.SenderName)
	assert.Equal(t, "file:///alice.png", req.SenderAvatar)
	assert.Equal(t, "Bob", req.ReceiverName)
	assert.NotZero(t, req.CreatedAt)

	stored, err := s.Get(context.Background(), req.ID)
	require.NoError(t, err)
	assert.Equal(t, req, stored)
}

func TestSendDedup(t *testing.T) {
	s, docs := setup(t, nil)
	ctx := context.Background()

	_, err := s.Send(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = s.Send(ctx, "alice", "bob")
	assert.True(t, errs.IsConflict(err))
	assert.Equal(t, 1, pendingFor(t, docs, "alice", "bob"))
}

func TestConcurrentSendsLeaveOnePending(t *testing.T) {
	s, docs := setup(t, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Send(ctx, "alice", "bob")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	ok := 0
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		assert.True(t, errs.IsConflict(err), "unexpected error %v", err)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, pendingFor(t, docs, "alice", "bob"))
}

func TestSendValidation(t *testing.T) {
	s, _ := setup(t, nil)
	ctx := context.Background()

	_, err := s.Send(ctx, "alice", "alice")
	assert.True(t, errs.IsValidation(err))
	_, err = s.Send(ctx, "alice", "")
	assert.True(t, errs.IsValidation(err))
	_, err = s.Send(ctx, "alice", "ghost")
	assert.True(t, errs.IsValidation(err))
}

func TestAcceptIsSymmetric(t *testing.T) {
	s, docs := setup(t, nil)
	ctx := context.Background()

	req, err := s.Send(ctx, "alice", "bob")
	require.NoError(t, err)

	_, err = s.Accept(ctx, req.ID, "alice")
	assert.True(t, errs.IsValidation(err), "only the receiver may accept")

	accepted, err := s.Accept(ctx, req.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, accepted.Status)
	assert.NotZero(t, accepted.RespondedAt)

	ids := identity.New(docs, nil)
	alice, err := ids.Get(ctx, "alice")
	require.NoError(t, err)
	bob, err := ids.Get(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, alice.FriendIDs)
	assert.Equal(t, []string{"alice"}, bob.FriendIDs)
	assert.Equal(t, 1, alice.FriendCount)
	assert.Equal(t, 1, bob.FriendCount)

	for _, edge := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		_, err := docs.Get(ctx, model.FriendPath(edge[0], edge[1]))
		assert.NoError(t, err, "edge %v", edge)
	}
	assert.Equal(t, 0, pendingFor(t, docs, "alice", "bob"))

	c, err := summary.New(docs).Get(ctx, model.ChatID("alice", "bob"))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, c.UnreadCount)

	_, err = s.Accept(ctx, req.ID, "bob")
	assert.True(t, errs.IsConflict(err), "terminal states are immutable")

	_, err = s.Send(ctx, "bob", "alice")
	assert.True(t, errs.IsConflict(err), "already friends")
}

func TestAcceptSettlesCrossingRequest(t *testing.T) {
	s, docs := setup(t, nil)
	ctx := context.Background()

	ab, err := s.Send(ctx, "alice", "bob")
	require.NoError(t, err)
	ba, err := s.Send(ctx, "bob", "alice")
	require.NoError(t, err)

	_, err = s.Accept(ctx, ab.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, 0, pendingFor(t, docs, "alice", "bob"))

	got, err := s.Get(ctx, ba.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RequestAccepted, got.Status)

	alice, err := identity.New(docs, nil).Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, alice.FriendCount)
}

func TestAcceptSurvivesBootstrapFailure(t *testing.T) {
	s, docs := setup(t, bootstrapFunc(func(context.Context, string, string) error {
		return errors.New("store unavailable")
	}))
	ctx := context.Background()

	req, err := s.Send(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = s.Accept(ctx, req.ID, "bob")
	require.NoError(t, err)

	ok, err := identity.New(docs, nil).AreFriends(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, ok)
	_, err = summary.New(docs).Get(ctx, model.ChatID("alice", "bob"))
	assert.True(t, errs.IsNotFound(err))
}

func TestRejectAndCancel(t *testing.T) {
	s, docs := setup(t, nil)
	ctx := context.Background()

	req, err := s.Send(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = s.Reject(ctx, req.ID, "alice")
	assert.True(t, errs.IsValidation(err))
	rejected, err := s.Reject(ctx, req.ID, "bob")
	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, rejected.Status)
	assert.Equal(t, 0, pendingFor(t, docs, "alice", "bob"))

	// The pair can try again once nothing is pending.
	req, err = s.Send(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = s.Cancel(ctx, req.ID, "bob")
	assert.True(t, errs.IsValidation(err))
	cancelled, err := s.Cancel(ctx, req.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, model.RequestCancelled, cancelled.Status)

	_, err = s.Accept(ctx, req.ID, "bob")
	assert.True(t, errs.IsConflict(err))
	_, err = s.Reject(ctx, "missing", "bob")
	assert.True(t, errs.IsNotFound(err))

	alice, err := identity.New(docs, nil).Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, alice.FriendIDs)
	assert.Zero(t, alice.FriendCount)
}

func TestListings(t *testing.T) {
	s, _ := setup(t, nil)
	ctx := context.Background()

	_, err := s.Send(ctx, "alice", "carol")
	require.NoError(t, err)
	_, err = s.Send(ctx, "bob", "carol")
	require.NoError(t, err)
	_, err = s.Send(ctx, "alice", "bob")
	require.NoError(t, err)

	incoming, err := s.ListIncoming(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	assert.Equal(t, "bob", incoming[0].SenderID)
	assert.Equal(t, "alice", incoming[1].SenderID)

	outgoing, err := s.ListOutgoing(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, outgoing, 2)

	req := incoming[0]
	_, err = s.Accept(ctx, req.ID, "carol")
	require.NoError(t, err)
	friends, err := s.ListFriends(ctx, "carol")
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, "Bob", friends[0].DisplayName)
}

func TestWatchIncoming(t *testing.T) {
	s, _ := setup(t, nil)
	updates := make(chan []*model.FriendRequest, 8)
	sub := s.WatchIncoming("bob", func(reqs []*model.FriendRequest, err error) {
		assert.NoError(t, err)
		updates <- reqs
	})
	defer sub.Stop()

	wait := func() []*model.FriendRequest {
		select {
		case r := <-updates:
			return r
		case <-time.After(2 * time.Second):
			t.Fatal("timeout waiting for requests")
			return nil
		}
	}
	assert.Empty(t, wait())

	req, err := s.Send(context.Background(), "alice", "bob")
	require.NoError(t, err)
	got := wait()
	require.Len(t, got, 1)
	assert.Equal(t, req.ID, got[0].ID)

	_, err = s.Reject(context.Background(), req.ID, "bob")
	require.NoError(t, err)
	assert.Empty(t, wait())
}
