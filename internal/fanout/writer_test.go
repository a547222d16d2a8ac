package fanout

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/docstore/memdoc"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/matheus3301/chatsync/internal/summary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	docs  *docstore.Engine
	w     *Writer
	clock atomic.Int64
}

func newFixture(t *testing.T, backend docstore.Backend) *fixture {
	t.Helper()
	f := &fixture{}
	if backend == nil {
		mem := memdoc.New()
		mem.SetClock(func() int64 { return f.clock.Add(1000) })
		backend = mem
	}
	f.docs = docstore.New(backend, nil, nil)
	f.w = NewWriter(f.docs, nil)
	t.Cleanup(func() { _ = f.docs.Close() })

	ids := identity.New(f.docs, nil)
	ctx := context.Background()
	for _, u := range []model.User{{ID: "alice", DisplayName: "Alice"}, {ID: "bob", DisplayName: "Bob"}} {
		_, err := ids.Register(ctx, u)
		require.NoError(t, err)
	}
	require.NoError(t, f.docs.Commit(ctx,
		docstore.Update(model.UserPath("alice"), map[string]any{"friendIds": docstore.ArrayUnion("bob")}),
		docstore.Update(model.UserPath("bob"), map[string]any{"friendIds": docstore.ArrayUnion("alice")}),
	))
	return f
}

func (f *fixture) send(t *testing.T, from, to, text string) *model.Message {
	t.Helper()
	res, err := f.w.Apply(context.Background(), NewMessage{Message: model.Message{
		ID:       f.docs.NewID(),
		ChatID:   model.ChatID(from, to),
		SenderID: from,
		Text:     text,
	}})
	require.NoError(t, err)
	return res.Message
}

func (f *fixture) chat(t *testing.T, chatID string) *model.Chat {
	t.Helper()
	c, err := summary.New(f.docs).Get(context.Background(), chatID)
	require.NoError(t, err)
	return c
}

func (f *fixture) row(t *testing.T, uid, chatID string) *model.ChatListEntry {
	t.Helper()
	e, err := projection.New(f.docs).Get(context.Background(), uid, chatID)
	require.NoError(t, err)
	return e
}

func (f *fixture) messages(t *testing.T, chatID string) []*model.Message {
	t.Helper()
	msgs, err := messagelog.New(f.docs, nil).List(context.Background(), chatID, 0)
	require.NoError(t, err)
	return msgs
}

func TestFirstMessageCreatesChat(t *testing.T) {
	f := newFixture(t, nil)
	chatID := model.ChatID("alice", "bob")

	msg := f.send(t, "alice", "bob", "hi")
	assert.NotZero(t, msg.Timestamp)
	assert.Equal(t, model.StatusSent, msg.Status)

	c := f.chat(t, chatID)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 1}, c.UnreadCount)
	assert.Equal(t, "hi", c.LastMessage)
	assert.Equal(t, "alice", c.LastMessageSenderID)
	assert.Equal(t, msg.ID, c.LastMessageID)
	assert.Equal(t, msg.Timestamp, c.LastMessageAt)

	bobRow := f.row(t, "bob", chatID)
	assert.Equal(t, "hi", bobRow.LastMessagePreview)
	assert.Equal(t, 1, bobRow.UnreadCount)
	assert.Equal(t, "alice", bobRow.PartnerID)
	assert.Equal(t, "Alice", bobRow.PartnerName)

	aliceRow := f.row(t, "alice", chatID)
	assert.Equal(t, "hi", aliceRow.LastMessagePreview)
	assert.Equal(t, 0, aliceRow.UnreadCount)
	assert.Equal(t, "Bob", aliceRow.PartnerName)
	assert.Equal(t, c.LastMessageAt, aliceRow.LastMessageAt)
}

func TestSendIncrementsOnlyReceiver(t *testing.T) {
	f := newFixture(t, nil)
	chatID := model.ChatID("alice", "bob")

	f.send(t, "alice", "bob", "one")
	f.send(t, "alice", "bob", "two")
	f.send(t, "bob", "alice", "three")

	c := f.chat(t, chatID)
	assert.Equal(t, 2, c.UnreadCount["bob"])
	assert.Equal(t, 1, c.UnreadCount["alice"])
	assert.Equal(t, 2, f.row(t, "bob", chatID).UnreadCount)
	assert.Equal(t, 1, f.row(t, "alice", chatID).UnreadCount)
	assert.Len(t, f.messages(t, chatID), 3)
	assert.Equal(t, "three", f.row(t, "alice", chatID).LastMessagePreview)
}

func TestNewMessageIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	msg := model.Message{ID: "m1", ChatID: chatID, SenderID: "alice", Text: "hi"}

	first, err := f.w.Apply(ctx, NewMessage{Message: msg})
	require.NoError(t, err)
	assert.False(t, first.Duplicate)

	again, err := f.w.Apply(ctx, NewMessage{Message: msg})
	require.NoError(t, err)
	assert.True(t, again.Duplicate)
	assert.Equal(t, first.Message.Timestamp, again.Message.Timestamp)

	assert.Len(t, f.messages(t, chatID), 1)
	assert.Equal(t, 1, f.chat(t, chatID).UnreadCount["bob"])
}

func TestNewMessageValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.w.Apply(ctx, NewMessage{Message: model.Message{ID: "m1", ChatID: "alice_bob", SenderID: "alice"}})
	assert.True(t, errs.IsValidation(err))

	_, err = f.w.Apply(ctx, NewMessage{Message: model.Message{ID: "m1", ChatID: "alice_bob", SenderID: "carol", Text: "x"}})
	assert.True(t, errs.IsValidation(err))

	_, err = f.w.Apply(ctx, NewMessage{Message: model.Message{ChatID: "alice_bob", SenderID: "alice", Text: "x"}})
	assert.True(t, errs.IsValidation(err))
}

func TestMediaPreviewLabel(t *testing.T) {
	f := newFixture(t, nil)
	chatID := model.ChatID("alice", "bob")

	_, err := f.w.Apply(context.Background(), NewMessage{Message: model.Message{
		ID: "m1", ChatID: chatID, SenderID: "bob",
		Media: &model.Media{URL: "file:///x.ogg", Type: model.MediaAudio},
	}})
	require.NoError(t, err)

	assert.Equal(t, "Voice note", f.chat(t, chatID).LastMessage)
	assert.Equal(t, "Voice note", f.row(t, "alice", chatID).LastMessagePreview)
	assert.Equal(t, "Voice note", f.row(t, "bob", chatID).LastMessagePreview)
}

func TestEditLastMessagePropagates(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")

	first := f.send(t, "alice", "bob", "first")
	last := f.send(t, "alice", "bob", "last")

	res, err := f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: last.ID, EditorID: "alice", Text: "last!"})
	require.NoError(t, err)
	assert.True(t, res.Message.Edited)
	assert.Equal(t, "last!", f.chat(t, chatID).LastMessage)
	assert.Equal(t, "last!", f.row(t, "alice", chatID).LastMessagePreview)
	assert.Equal(t, "last!", f.row(t, "bob", chatID).LastMessagePreview)
	assert.Equal(t, 2, f.row(t, "bob", chatID).UnreadCount)

	_, err = f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: first.ID, EditorID: "alice", Text: "first!"})
	require.NoError(t, err)
	assert.Equal(t, "last!", f.chat(t, chatID).LastMessage)

	msgs := f.messages(t, chatID)
	require.Len(t, msgs, 2)
	assert.Equal(t, "first!", msgs[1].Text)
	assert.True(t, msgs[1].Edited)
}

func TestEditRejections(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	msg := f.send(t, "alice", "bob", "hello")

	_, err := f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: msg.ID, EditorID: "bob", Text: "hijack"})
	assert.True(t, errs.IsValidation(err))

	_, err = f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: "missing", EditorID: "alice", Text: "x"})
	assert.True(t, errs.IsNotFound(err))

	stale := "old"
	_, err = f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: msg.ID, EditorID: "alice", Text: "x", BaseText: &stale})
	assert.True(t, errs.IsConflict(err))

	_, err = f.w.Apply(ctx, EditMessage{ChatID: chatID, MessageID: msg.ID, EditorID: "alice", Text: ""})
	assert.True(t, errs.IsValidation(err))

	assert.Equal(t, "hello", f.chat(t, chatID).LastMessage)
}

func TestDeleteLastMessageRecomputes(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")

	first := f.send(t, "bob", "alice", "first")
	last := f.send(t, "alice", "bob", "second")
	before := f.chat(t, chatID)

	_, err := f.w.Apply(ctx, DeleteMessage{ChatID: chatID, MessageID: last.ID, DeleterID: "alice"})
	require.NoError(t, err)

	c := f.chat(t, chatID)
	assert.Equal(t, "first", c.LastMessage)
	assert.Equal(t, first.ID, c.LastMessageID)
	assert.Equal(t, first.Timestamp, c.LastMessageAt)
	assert.Equal(t, "bob", c.LastMessageSenderID)
	assert.Equal(t, before.UnreadCount, c.UnreadCount)
	assert.Equal(t, "first", f.row(t, "alice", chatID).LastMessagePreview)
	assert.Equal(t, "first", f.row(t, "bob", chatID).LastMessagePreview)
	assert.Len(t, f.messages(t, chatID), 1)

	_, err = f.w.Apply(ctx, DeleteMessage{ChatID: chatID, MessageID: first.ID, DeleterID: "bob"})
	require.NoError(t, err)
	c = f.chat(t, chatID)
	assert.Empty(t, c.LastMessage)
	assert.Zero(t, c.LastMessageAt)
	assert.Empty(t, c.LastMessageID)
	assert.Empty(t, f.row(t, "bob", chatID).LastMessagePreview)
	assert.Empty(t, f.messages(t, chatID))
}

func TestDeleteOlderMessageKeepsHeadline(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")

	old := f.send(t, "alice", "bob", "old")
	f.send(t, "alice", "bob", "new")

	_, err := f.w.Apply(ctx, DeleteMessage{ChatID: chatID, MessageID: old.ID, DeleterID: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "new", f.chat(t, chatID).LastMessage)

	_, err = f.w.Apply(ctx, DeleteMessage{ChatID: chatID, MessageID: old.ID, DeleterID: "alice"})
	assert.True(t, errs.IsNotFound(err))
}

func TestDeleteBySomeoneElse(t *testing.T) {
	f := newFixture(t, nil)
	chatID := model.ChatID("alice", "bob")
	msg := f.send(t, "alice", "bob", "mine")

	_, err := f.w.Apply(context.Background(), DeleteMessage{ChatID: chatID, MessageID: msg.ID, DeleterID: "bob"})
	assert.True(t, errs.IsValidation(err))
	assert.Len(t, f.messages(t, chatID), 1)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	f.send(t, "alice", "bob", "a")
	f.send(t, "alice", "bob", "b")

	res, err := f.w.Apply(ctx, MarkRead{ChatID: chatID, UserID: "bob"})
	require.NoError(t, err)
	assert.False(t, res.Noop)
	assert.Equal(t, 0, f.chat(t, chatID).UnreadCount["bob"])
	assert.Equal(t, 0, f.row(t, "bob", chatID).UnreadCount)

	snap, err := f.docs.Get(ctx, model.ChatPath(chatID))
	require.NoError(t, err)

	res, err = f.w.Apply(ctx, MarkRead{ChatID: chatID, UserID: "bob"})
	require.NoError(t, err)
	assert.True(t, res.Noop)
	again, err := f.docs.Get(ctx, model.ChatPath(chatID))
	require.NoError(t, err)
	assert.Equal(t, snap.UpdateSeq, again.UpdateSeq)

	res, err = f.w.Apply(ctx, MarkRead{ChatID: model.ChatID("alice", "carol"), UserID: "alice"})
	require.NoError(t, err)
	assert.True(t, res.Noop)

	_, err = f.w.Apply(ctx, MarkRead{ChatID: chatID, UserID: "carol"})
	assert.True(t, errs.IsValidation(err))
}

func TestFlagsSurviveFanout(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	f.send(t, "alice", "bob", "hi")

	pinned := true
	_, err := projection.New(f.docs).SetFlags(ctx, "bob", chatID, projection.Flags{Pinned: &pinned})
	require.NoError(t, err)

	f.send(t, "alice", "bob", "again")
	row := f.row(t, "bob", chatID)
	assert.True(t, row.Pinned)
	assert.Equal(t, "again", row.LastMessagePreview)
	assert.False(t, f.row(t, "alice", chatID).Pinned)
}

func TestBootstrapChat(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")

	res, err := f.w.Apply(ctx, BootstrapChat{A: "bob", B: "alice"})
	require.NoError(t, err)
	assert.False(t, res.Noop)
	c := f.chat(t, chatID)
	assert.Equal(t, []string{"alice", "bob"}, c.Participants)
	assert.Equal(t, map[string]int{"alice": 0, "bob": 0}, c.UnreadCount)

	_, err = projection.New(f.docs).Get(ctx, "alice", chatID)
	assert.True(t, errs.IsNotFound(err))

	res, err = f.w.Apply(ctx, BootstrapChat{A: "alice", B: "bob"})
	require.NoError(t, err)
	assert.True(t, res.Noop)

	f.send(t, "bob", "alice", "hey")
	assert.Equal(t, 1, f.chat(t, chatID).UnreadCount["alice"])
}

func TestDeleteChatCascades(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	f.send(t, "alice", "bob", "1")
	f.send(t, "bob", "alice", "2")

	_, err := f.w.Apply(ctx, DeleteChat{ChatID: chatID, UserID: "carol"})
	assert.True(t, errs.IsValidation(err))

	_, err = f.w.Apply(ctx, DeleteChat{ChatID: chatID, UserID: "alice"})
	require.NoError(t, err)

	_, err = summary.New(f.docs).Get(ctx, chatID)
	assert.True(t, errs.IsNotFound(err))
	assert.Empty(t, f.messages(t, chatID))
	for _, uid := range []string{"alice", "bob"} {
		_, err := projection.New(f.docs).Get(ctx, uid, chatID)
		assert.True(t, errs.IsNotFound(err))
	}

	_, err = f.w.Apply(ctx, DeleteChat{ChatID: chatID, UserID: "alice"})
	assert.True(t, errs.IsNotFound(err))
}

func TestProfileChangedUpdatesFriendRows(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	chatID := model.ChatID("alice", "bob")
	f.send(t, "alice", "bob", "hi")

	name, online := "Alice L.", true
	_, err := f.w.Apply(ctx, ProfileChanged{UserID: "alice", DisplayName: &name, Online: &online})
	require.NoError(t, err)

	row := f.row(t, "bob", chatID)
	assert.Equal(t, "Alice L.", row.PartnerName)
	assert.True(t, row.PartnerOnline)
	assert.Equal(t, "Bob", f.row(t, "alice", chatID).PartnerName)

	online = false
	_, err = f.w.Apply(ctx, ProfileChanged{UserID: "alice", Online: &online})
	require.NoError(t, err)
	u, err := identity.New(f.docs, nil).Get(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, u.IsOnline)
	assert.NotZero(t, u.LastSeenAt)
	assert.False(t, f.row(t, "bob", chatID).PartnerOnline)

	_, err = f.w.Apply(ctx, ProfileChanged{UserID: "ghost", Online: &online})
	assert.True(t, errs.IsNotFound(err))
}

// failingBackend refuses to store chat list rows, which fails every
// fan-out halfway through its writes.
type failingBackend struct {
	*memdoc.Backend
}

type failingTx struct {
	docstore.BackendTx
}

var errInjected = errors.New("injected write failure")

func (b failingBackend) RunInTx(ctx context.Context, fn func(context.Context, docstore.BackendTx) error) error {
	return b.Backend.RunInTx(ctx, func(ctx context.Context, tx docstore.BackendTx) error {
		return fn(ctx, failingTx{tx})
	})
}

func (t failingTx) Put(s *docstore.Snapshot, created bool) error {
	if strings.Contains(s.Path, "/chatList/") {
		return errInjected
	}
	return t.BackendTx.Put(s, created)
}

func TestFailedFanoutLeavesNothingBehind(t *testing.T) {
	mem := memdoc.New()
	f := &fixture{docs: docstore.New(mem, nil, nil)}
	f.w = NewWriter(f.docs, nil)
	ctx := context.Background()
	_, err := identity.New(f.docs, nil).Register(ctx, model.User{ID: "alice"})
	require.NoError(t, err)

	broken := NewWriter(docstore.New(failingBackend{mem}, nil, nil), nil)
	_, err = broken.Apply(ctx, NewMessage{Message: model.Message{ID: "m1", ChatID: "alice_bob", SenderID: "alice", Text: "hi"}})
	require.Error(t, err)
	assert.True(t, errs.IsTransient(err))
	assert.ErrorIs(t, err, errInjected)

	_, err = summary.New(f.docs).Get(ctx, "alice_bob")
	assert.True(t, errs.IsNotFound(err))
	assert.Empty(t, f.messages(t, "alice_bob"))
}
