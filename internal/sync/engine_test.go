package sync

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	stdsync "sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/memdoc"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/fanout"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/matheus3301/chatsync/internal/store"
	"github.com/matheus3301/chatsync/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errInjected = errors.New("injected failure")

// flakyBackend fails chat-list writes while failWrites is set and every
// read of a message log while failReads is set.
type flakyBackend struct {
	*memdoc.Backend
	failWrites atomic.Bool
	failReads  atomic.Bool
}

type flakyTx struct {
	docstore.BackendTx
	b *flakyBackend
}

func (b *flakyBackend) List(ctx context.Context, collection string) ([]*docstore.Snapshot, error) {
	if b.failReads.Load() && strings.HasSuffix(collection, "/messages") {
		return nil, errInjected
	}
	return b.Backend.List(ctx, collection)
}

func (b *flakyBackend) RunInTx(ctx context.Context, fn func(context.Context, docstore.BackendTx) error) error {
	return b.Backend.RunInTx(ctx, func(ctx context.Context, tx docstore.BackendTx) error {
		return fn(ctx, flakyTx{BackendTx: tx, b: b})
	})
}

func (t flakyTx) Put(s *docstore.Snapshot, created bool) error {
	if t.b.failWrites.Load() && strings.Contains(s.Path, "/chatList/") {
		return errInjected
	}
	return t.BackendTx.Put(s, created)
}

type healthRecorder struct {
	mu       stdsync.Mutex
	degraded []error
	recovers int
}

func (h *healthRecorder) Degrade(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.degraded = append(h.degraded, err)
}

func (h *healthRecorder) Recover() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recovers++
}

func (h *healthRecorder) degradedCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.degraded)
}

type stubUploader struct {
	url string
	err error
}

func (u stubUploader) Upload(context.Context, string, model.MediaKind) (string, error) {
	return u.url, u.err
}

type harness struct {
	backend *flakyBackend
	docs    *docstore.Engine
	local   *store.DB
	events  *bus.Bus
	health  *healthRecorder
	engine  *Engine
	clock   atomic.Int64
}

func newHarness(t *testing.T, cfg Config, uploader *stubUploader) *harness {
	t.Helper()
	h := &harness{backend: &flakyBackend{Backend: memdoc.New()}, events: bus.New(), health: &healthRecorder{}}
	h.backend.SetClock(func() int64 { return h.clock.Add(1000) })
	h.docs = docstore.New(h.backend, nil, nil)
	t.Cleanup(func() { _ = h.docs.Close() })

	local, err := store.Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	_, err = local.Migrate()
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })
	h.local = local

	ids := identity.New(h.docs, nil)
	ctx := context.Background()
	for _, u := range []model.User{
		{ID: "alice", DisplayName: "Alice"},
		{ID: "bob", DisplayName: "Bob"},
		{ID: "carol", DisplayName: "Carol"},
	} {
		_, err := ids.Register(ctx, u)
		require.NoError(t, err)
	}
	require.NoError(t, h.docs.Commit(ctx,
		docstore.Update(model.UserPath("alice"), map[string]any{"friendIds": docstore.ArrayUnion("bob")}),
		docstore.Update(model.UserPath("bob"), map[string]any{"friendIds": docstore.ArrayUnion("alice")}),
	))

	p := Params{
		Docs:     h.docs,
		Identity: ids,
		Log:      messagelog.New(h.docs, nil),
		Writer:   fanout.NewWriter(h.docs, nil),
		Rows:     projection.New(h.docs),
		Local:    local,
		Bus:      h.events,
		Health:   h.health,
		Config:   cfg,
	}
	if uploader != nil {
		p.Uploader = *uploader
	}
	h.engine = NewEngine(p)
	t.Cleanup(h.engine.Close)
	return h
}

func (h *harness) chat(t *testing.T, chatID string) *model.Chat {
	t.Helper()
	c, err := summary.New(h.docs).Get(context.Background(), chatID)
	require.NoError(t, err)
	return c
}

func (h *harness) messages(t *testing.T, chatID string) []*model.Message {
	t.Helper()
	msgs, err := messagelog.New(h.docs, nil).List(context.Background(), chatID, 0)
	require.NoError(t, err)
	return msgs
}

const abChat = "alice_bob"

func TestSendMessageFansOut(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	id, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "hi"})
	require.NoError(t, err)
	assert.False(t, IsTempID(id))

	c := h.chat(t, abChat)
	assert.Equal(t, "hi", c.LastMessage)
	assert.Equal(t, id, c.LastMessageID)
	assert.Equal(t, 1, c.UnreadCount["bob"])
	assert.Equal(t, 0, c.UnreadCount["alice"])

	rows := projection.New(h.docs)
	bobRow, err := rows.Get(ctx, "bob", abChat)
	require.NoError(t, err)
	assert.Equal(t, "Alice", bobRow.PartnerName)
	assert.Equal(t, 1, bobRow.UnreadCount)
	aliceRow, err := rows.Get(ctx, "alice", abChat)
	require.NoError(t, err)
	assert.Equal(t, 0, aliceRow.UnreadCount)

	entries := h.engine.Timeline(abChat).Entries()
	require.Len(t, entries, 1)
	confirmed, ok := entries[0].(Confirmed)
	require.True(t, ok, "entry should be confirmed, got %T", entries[0])
	assert.Equal(t, id, confirmed.Message.ID)
	assert.Equal(t, "hi", confirmed.Message.Text)

	ob, err := h.local.GetOutbox(id)
	require.NoError(t, err)
	assert.Equal(t, store.OutboxSent, ob.Status)
}

func TestSendFailureRollsBack(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	first, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "first"})
	require.NoError(t, err)
	before := h.engine.Timeline(abChat).Messages()
	chatBefore := h.chat(t, abChat)

	failures, unsub := h.events.Subscribe(bus.KindMessageFailed, 4)
	defer unsub()

	h.backend.failWrites.Store(true)
	_, err = h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "second"})
	require.Error(t, err)

	var sendErr *SendFailedError
	require.ErrorAs(t, err, &sendErr)
	assert.ErrorIs(t, err, errInjected)
	assert.True(t, errs.IsTransient(err))
	assert.Equal(t, "second", sendErr.Draft.Text)
	assert.Equal(t, sendErr.MessageID, sendErr.Draft.RetryID)

	assert.Equal(t, before, h.engine.Timeline(abChat).Messages())
	assert.Equal(t, chatBefore, h.chat(t, abChat))
	require.Len(t, h.messages(t, abChat), 1)

	select {
	case evt := <-failures:
		p := evt.Payload.(map[string]string)
		assert.Equal(t, sendErr.MessageID, p["message_id"])
	case <-time.After(time.Second):
		t.Fatal("no send_failed event")
	}

	draft, err := h.engine.GetDraft("alice", abChat)
	require.NoError(t, err)
	assert.Equal(t, "second", draft.Text)

	failed, err := h.engine.ListFailedSends("alice", abChat)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, sendErr.MessageID, failed[0].MessageID)

	// The retry takes the id allocated by the failed attempt.
	h.backend.failWrites.Store(false)
	id, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "second"})
	require.NoError(t, err)
	assert.Equal(t, sendErr.MessageID, id)
	assert.NotEqual(t, first, id)
	assert.Len(t, h.messages(t, abChat), 2)

	draft, err = h.engine.GetDraft("alice", abChat)
	require.NoError(t, err)
	assert.True(t, draft.Empty())
}

func TestRetryWithSameIDWritesOnce(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	req := SendRequest{ChatID: abChat, SenderID: "alice", Text: "hi", MessageID: "m-fixed"}
	id1, err := h.engine.SendMessage(ctx, req)
	require.NoError(t, err)
	id2, err := h.engine.SendMessage(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Len(t, h.messages(t, abChat), 1)
	assert.Equal(t, 1, h.chat(t, abChat).UnreadCount["bob"])
	assert.Len(t, h.engine.Timeline(abChat).Entries(), 1)
}

func TestSendValidation(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	tests := []struct {
		name string
		req  SendRequest
	}{
		{"empty", SendRequest{ChatID: abChat, SenderID: "alice"}},
		{"outsider", SendRequest{ChatID: abChat, SenderID: "carol", Text: "hey"}},
		{"bad chat id", SendRequest{ChatID: "alice", SenderID: "alice", Text: "hey"}},
		{"not friends", SendRequest{ChatID: model.ChatID("alice", "carol"), SenderID: "alice", Text: "hey"}},
		{"no uploader", SendRequest{ChatID: abChat, SenderID: "alice", Media: &MediaInput{Path: "/tmp/x.png", Kind: model.MediaImage}}},
		{"bad kind", SendRequest{ChatID: abChat, SenderID: "alice", Media: &MediaInput{Path: "/tmp/x.png", Kind: "gif"}}},
		{"unknown sender", SendRequest{ChatID: model.ChatID("ghost", "bob"), SenderID: "ghost", Text: "boo"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.engine.SendMessage(ctx, tt.req)
			assert.True(t, errs.IsValidation(err), "got %v", err)
			var sendErr *SendFailedError
			assert.False(t, errors.As(err, &sendErr))
			assert.Empty(t, h.engine.Timeline(tt.req.ChatID).Entries())
		})
	}

	_, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "re", ReplyTo: &model.ReplyTo{MessageID: "missing"}})
	assert.True(t, errs.IsNotFound(err))
}

func TestReplySnapshotsTarget(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	target, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "bob", Text: "lunch?"})
	require.NoError(t, err)
	id, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "yes", ReplyTo: &model.ReplyTo{MessageID: target}})
	require.NoError(t, err)

	msgs := h.messages(t, abChat)
	require.Equal(t, id, msgs[0].ID)
	require.NotNil(t, msgs[0].ReplyTo)
	assert.Equal(t, "lunch?", msgs[0].ReplyTo.Text)
	assert.Equal(t, "bob", msgs[0].ReplyTo.SenderID)
	assert.Equal(t, "Bob", msgs[0].ReplyTo.SenderName)
}

func TestMediaSend(t *testing.T) {
	ctx := context.Background()

	t.Run("uploaded", func(t *testing.T) {
		h := newHarness(t, Config{}, &stubUploader{url: "file:///media/a.png"})
		id, err := h.engine.SendMessage(ctx, SendRequest{
			ChatID:   abChat,
			SenderID: "alice",
			Media:    &MediaInput{Path: "/tmp/a.png", Kind: model.MediaImage, FileName: "a.png"},
		})
		require.NoError(t, err)
		msgs := h.messages(t, abChat)
		require.Len(t, msgs, 1)
		assert.Equal(t, id, msgs[0].ID)
		require.NotNil(t, msgs[0].Media)
		assert.Equal(t, "file:///media/a.png", msgs[0].Media.URL)
		assert.Equal(t, "Image", h.chat(t, abChat).LastMessage)
	})

	t.Run("upload fails", func(t *testing.T) {
		h := newHarness(t, Config{}, &stubUploader{err: errInjected})
		_, err := h.engine.SendMessage(ctx, SendRequest{
			ChatID:   abChat,
			SenderID: "alice",
			Text:     "look",
			Media:    &MediaInput{Path: "/tmp/a.png", Kind: model.MediaImage},
		})
		var sendErr *SendFailedError
		require.ErrorAs(t, err, &sendErr)
		assert.Empty(t, h.engine.Timeline(abChat).Entries())
		assert.Empty(t, h.messages(t, abChat))
	})
}

func TestMarkAsRead(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	for _, text := range []string{"one", "two"} {
		_, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: text})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, h.chat(t, abChat).UnreadCount["bob"])

	require.NoError(t, h.engine.MarkAsRead(ctx, abChat, "bob"))
	assert.Equal(t, 0, h.chat(t, abChat).UnreadCount["bob"])
	row, err := projection.New(h.docs).Get(ctx, "bob", abChat)
	require.NoError(t, err)
	assert.Equal(t, 0, row.UnreadCount)
	for _, m := range h.messages(t, abChat) {
		assert.Equal(t, model.StatusRead, m.Status)
	}

	changed, err := h.engine.markRead(ctx, abChat, "bob", false)
	require.NoError(t, err)
	assert.False(t, changed, "second mark should write nothing")

	err = h.engine.MarkAsRead(ctx, abChat, "carol")
	assert.True(t, errs.IsValidation(err))
}

func TestEditMessage(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	id, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "helo"})
	require.NoError(t, err)

	require.NoError(t, h.engine.EditMessage(ctx, abChat, id, "alice", "hello"))
	assert.Equal(t, "hello", h.chat(t, abChat).LastMessage)
	msgs := h.engine.Timeline(abChat).Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "hello", msgs[0].Text)
	assert.True(t, msgs[0].Edited)

	err = h.engine.EditMessage(ctx, abChat, id, "bob", "hijack")
	assert.True(t, errs.IsValidation(err))
	err = h.engine.EditMessage(ctx, abChat, "missing", "alice", "x")
	assert.True(t, errs.IsNotFound(err))

	h.backend.failWrites.Store(true)
	err = h.engine.EditMessage(ctx, abChat, id, "alice", "hello!!")
	require.Error(t, err)
	assert.Equal(t, "hello", h.engine.Timeline(abChat).Messages()[0].Text)
	assert.Equal(t, "hello", h.chat(t, abChat).LastMessage)
}

func TestDeleteMessage(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	first, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "first"})
	require.NoError(t, err)
	second, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "second"})
	require.NoError(t, err)

	h.backend.failWrites.Store(true)
	err = h.engine.DeleteMessage(ctx, abChat, second, "alice")
	require.Error(t, err)
	assert.Len(t, h.engine.Timeline(abChat).Entries(), 2)
	h.backend.failWrites.Store(false)

	err = h.engine.DeleteMessage(ctx, abChat, second, "bob")
	assert.True(t, errs.IsValidation(err))

	require.NoError(t, h.engine.DeleteMessage(ctx, abChat, second, "alice"))
	msgs := h.engine.Timeline(abChat).Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, first, msgs[0].ID)
	assert.Equal(t, "first", h.chat(t, abChat).LastMessage)
}

func TestDeleteChat(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	_, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "bye"})
	require.NoError(t, err)
	require.NoError(t, h.engine.DeleteChat(ctx, abChat, "bob"))

	_, err = summary.New(h.docs).Get(ctx, abChat)
	assert.True(t, errs.IsNotFound(err))
	assert.Empty(t, h.messages(t, abChat))
	assert.Empty(t, h.engine.Timeline(abChat).Entries())
}

func TestSetDraftKeepsRetryIDWhileTextUnchanged(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	require.NoError(t, h.local.SaveDraft(store.Draft{UserID: "alice", ChatID: abChat, Text: "hey", RetryID: "m1"}))

	require.NoError(t, h.engine.SetDraft("alice", abChat, "hey", nil))
	d, err := h.engine.GetDraft("alice", abChat)
	require.NoError(t, err)
	assert.Equal(t, "m1", d.RetryID)

	require.NoError(t, h.engine.SetDraft("alice", abChat, "hey there", nil))
	d, err = h.engine.GetDraft("alice", abChat)
	require.NoError(t, err)
	assert.Empty(t, d.RetryID)
}

func TestFanoutTimeoutCountsAsFailure(t *testing.T) {
	h := newHarness(t, Config{FanoutTimeout: 50 * time.Millisecond}, nil)
	ctx := context.Background()

	release, err := h.engine.locks.acquire(ctx, abChat)
	require.NoError(t, err)
	defer release()

	_, err = h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "stuck"})
	var sendErr *SendFailedError
	require.ErrorAs(t, err, &sendErr)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, h.engine.Timeline(abChat).Entries())
}

func TestProfileAndFlags(t *testing.T) {
	h := newHarness(t, Config{}, nil)
	ctx := context.Background()

	_, err := h.engine.SendMessage(ctx, SendRequest{ChatID: abChat, SenderID: "alice", Text: "hi"})
	require.NoError(t, err)

	name := "Alicia"
	require.NoError(t, h.engine.UpdateProfile(ctx, "alice", &name, nil))
	require.NoError(t, h.engine.SetPresence(ctx, "alice", true))

	row, err := projection.New(h.docs).Get(ctx, "bob", abChat)
	require.NoError(t, err)
	assert.Equal(t, "Alicia", row.PartnerName)
	assert.True(t, row.PartnerOnline)

	pinned := true
	row, err = h.engine.SetChatFlags(ctx, abChat, "bob", projection.Flags{Pinned: &pinned})
	require.NoError(t, err)
	assert.True(t, row.Pinned)

	_, err = h.engine.SetChatFlags(ctx, abChat, "carol", projection.Flags{Pinned: &pinned})
	assert.True(t, errs.IsValidation(err))
}
