// Package sync is the client-side consistency engine. It applies user
// actions to a local timeline first, fans them out to the document store in
// one transaction, and reconciles or rolls back once the store answers.
package sync

import (
	"context"
	"errors"
	"fmt"
	stdsync "sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/fanout"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/media"
	"github.com/matheus3301/chatsync/internal/messagelog"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"github.com/matheus3301/chatsync/internal/store"
	"go.uber.org/zap"
)

const (
	DefaultFanoutTimeout    = 10 * time.Second
	DefaultReadMarkInterval = 3 * time.Second

	tempIDPrefix = "local-"
)

// Config tunes the engine. Zero values take the defaults.
type Config struct {
	FanoutTimeout    time.Duration
	ReadMarkInterval time.Duration
	MessageWindow    int
}

func (c Config) withDefaults() Config {
	if c.FanoutTimeout <= 0 {
		c.FanoutTimeout = DefaultFanoutTimeout
	}
	if c.ReadMarkInterval <= 0 {
		c.ReadMarkInterval = DefaultReadMarkInterval
	}
	if c.MessageWindow <= 0 {
		c.MessageWindow = messagelog.DefaultWindow
	}
	return c
}

// Health receives subscription outcomes. *status.Machine implements it.
type Health interface {
	Degrade(err error)
	Recover()
}

// Params are the engine's collaborators. Uploader and Health may be nil.
type Params struct {
	Docs     docstore.Store
	Identity *identity.Store
	Log      *messagelog.Log
	Writer   *fanout.Writer
	Rows     *projection.Store
	Local    *store.DB
	Uploader media.Uploader
	Bus      *bus.Bus
	Health   Health
	Logger   *zap.Logger
	Config   Config
}

type Engine struct {
	docs     docstore.Store
	ids      *identity.Store
	log      *messagelog.Log
	writer   *fanout.Writer
	rows     *projection.Store
	local    *store.DB
	uploader media.Uploader
	bus      *bus.Bus
	health   Health
	logger   *zap.Logger
	cfg      Config
	locks    *chatLocks

	mu        stdsync.Mutex
	timelines map[string]*Timeline
	sessions  map[string]*ChatSession
}

// NewEngine creates a new sync engine.
func NewEngine(p Params) *Engine {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		docs:      p.Docs,
		ids:       p.Identity,
		log:       p.Log,
		writer:    p.Writer,
		rows:      p.Rows,
		local:     p.Local,
		uploader:  p.Uploader,
		bus:       p.Bus,
		health:    p.Health,
		logger:    logger,
		cfg:       p.Config.withDefaults(),
		locks:     newChatLocks(),
		timelines: map[string]*Timeline{},
		sessions:  map[string]*ChatSession{},
	}
}

// Timeline returns the local timeline of a chat, creating it on first use.
func (e *Engine) Timeline(chatID string) *Timeline {
	e.mu.Lock()
	defer e.mu.Unlock()
	tl, ok := e.timelines[chatID]
	if !ok {
		tl = newTimeline(chatID)
		e.timelines[chatID] = tl
	}
	return tl
}

func (e *Engine) changed(tl *Timeline) {
	e.bus.Emit(bus.KindTimelineChanged, map[string]string{"chat_id": tl.ChatID()})
}

// MediaInput is an attachment still on local disk.
type MediaInput struct {
	Path     string
	Kind     model.MediaKind
	FileName string
}

type SendRequest struct {
	ChatID   string
	SenderID string
	Text     string
	ReplyTo  *model.ReplyTo
	Media    *MediaInput
	// MessageID re-uses the id allocated by an earlier failed attempt.
	MessageID string
}

// SendMessage shows the message locally at once, then commits it to the
// message log, the chat summary and both chat-list rows in one transaction.
// On success the temporary entry takes the stored id. On failure the entry
// is removed, the draft is restored and a *SendFailedError is returned. The
// chat is created by the fan-out if it does not exist yet.
func (e *Engine) SendMessage(ctx context.Context, req SendRequest) (string, error) {
	const op = "SendMessage"
	partner, err := e.validateSend(ctx, &req)
	if err != nil {
		return "", err
	}

	prior, err := e.local.GetDraft(req.SenderID, req.ChatID)
	if err != nil {
		e.logger.Warn("failed to read draft", zap.String("chat", req.ChatID), zap.Error(err))
	}
	msgID := req.MessageID
	if msgID == "" && prior != nil && prior.RetryID != "" && prior.Text == req.Text {
		msgID = prior.RetryID
	}
	if msgID == "" {
		msgID = e.docs.NewID()
	}
	tempID := tempIDPrefix + uuid.NewString()

	local := model.Message{
		ID:        tempID,
		ChatID:    req.ChatID,
		SenderID:  req.SenderID,
		Timestamp: time.Now().UnixMilli(),
		Text:      req.Text,
		ReplyTo:   req.ReplyTo,
	}
	if req.Media != nil {
		local.Media = &model.Media{Type: req.Media.Kind, FileName: req.Media.FileName}
	}

	tl := e.Timeline(req.ChatID)
	tl.AddPending(Pending{TempID: tempID, MessageID: msgID, Message: local, Uploading: req.Media != nil})
	e.changed(tl)

	if err := e.local.ClearDraft(req.SenderID, req.ChatID); err != nil {
		e.logger.Warn("failed to consume draft", zap.String("chat", req.ChatID), zap.Error(err))
	}
	if err := e.local.BeginSend(store.OutboxEntry{
		MessageID: msgID,
		TempID:    tempID,
		ChatID:    req.ChatID,
		SenderID:  req.SenderID,
		Body:      req.Text,
	}); err != nil {
		e.logger.Warn("failed to record outbox entry", zap.String("message", msgID), zap.Error(err))
	}

	fail := func(cause error) (string, error) {
		tl.Discard(tempID)
		e.changed(tl)
		draft := store.Draft{
			UserID:  req.SenderID,
			ChatID:  req.ChatID,
			Text:    req.Text,
			ReplyTo: req.ReplyTo,
			RetryID: msgID,
		}
		if err := e.local.SaveDraft(draft); err != nil {
			e.logger.Warn("failed to restore draft", zap.String("chat", req.ChatID), zap.Error(err))
		}
		if err := e.local.MarkOutboxFailed(msgID, cause.Error()); err != nil {
			e.logger.Warn("failed to mark outbox failed", zap.String("message", msgID), zap.Error(err))
		}
		e.logger.Warn("send failed, rolled back",
			zap.String("chat", req.ChatID),
			zap.String("message", msgID),
			zap.Error(cause),
		)
		e.bus.Emit(bus.KindMessageFailed, map[string]string{
			"chat_id":    req.ChatID,
			"temp_id":    tempID,
			"message_id": msgID,
			"error":      cause.Error(),
		})
		return "", &SendFailedError{ChatID: req.ChatID, TempID: tempID, MessageID: msgID, Draft: draft, Err: cause}
	}

	msg := model.Message{
		ID:       msgID,
		ChatID:   req.ChatID,
		SenderID: req.SenderID,
		Text:     req.Text,
		ReplyTo:  req.ReplyTo,
	}
	if req.Media != nil {
		url, err := e.uploader.Upload(ctx, req.Media.Path, req.Media.Kind)
		if err != nil {
			return fail(err)
		}
		msg.Media = &model.Media{URL: url, Type: req.Media.Kind, FileName: req.Media.FileName}
		tl.MarkUploaded(tempID, msg.Media)
		e.changed(tl)
	}

	res, err := e.fanout(ctx, req.ChatID, fanout.NewMessage{Message: msg})
	if err != nil {
		return fail(errs.FromStore(op, err))
	}

	tl.Confirm(tempID, *res.Message)
	e.changed(tl)
	if err := e.local.MarkOutboxSent(msgID); err != nil {
		e.logger.Warn("failed to mark outbox sent", zap.String("message", msgID), zap.Error(err))
	}
	e.logger.Info("message sent",
		zap.String("chat", req.ChatID),
		zap.String("message", msgID),
		zap.String("partner", partner),
		zap.Bool("duplicate", res.Duplicate),
	)
	e.bus.Emit(bus.KindMessageSendAck, map[string]string{
		"chat_id":    req.ChatID,
		"temp_id":    tempID,
		"message_id": msgID,
	})
	return msgID, nil
}

// validateSend rejects bad input before anything is shown locally and
// fills in the reply target from the message log.
func (e *Engine) validateSend(ctx context.Context, req *SendRequest) (string, error) {
	const op = "SendMessage"
	partner, err := e.participant(op, req.ChatID, req.SenderID)
	if err != nil {
		return "", err
	}
	if req.Text == "" && req.Media == nil {
		return "", errs.Validationf(op, "empty message")
	}
	if req.Media != nil {
		if !req.Media.Kind.Valid() {
			return "", errs.Validationf(op, "unknown media kind %q", req.Media.Kind)
		}
		if req.Media.Path == "" {
			return "", errs.Validationf(op, "missing media file")
		}
		if e.uploader == nil {
			return "", errs.Validationf(op, "media uploads are not configured")
		}
	}

	ok, err := e.ids.AreFriends(ctx, req.SenderID, partner)
	if errs.IsNotFound(err) {
		return "", errs.Validationf(op, "unknown sender %s", req.SenderID)
	}
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.Validationf(op, "%s is not a friend of %s", partner, req.SenderID)
	}

	if req.ReplyTo != nil {
		target, err := e.log.Get(ctx, req.ChatID, req.ReplyTo.MessageID)
		if err != nil {
			return "", err
		}
		reply := &model.ReplyTo{
			MessageID:  target.ID,
			Text:       target.Preview(),
			SenderID:   target.SenderID,
			SenderName: target.SenderID,
		}
		if u, err := e.ids.Get(ctx, target.SenderID); err == nil {
			reply.SenderName = u.DisplayName
		}
		req.ReplyTo = reply
	}
	return partner, nil
}

// EditMessage replaces the text of one of the caller's messages. The new
// text shows at once and is reverted if the fan-out fails.
func (e *Engine) EditMessage(ctx context.Context, chatID, messageID, editorID, text string) error {
	const op = "EditMessage"
	if _, err := e.participant(op, chatID, editorID); err != nil {
		return err
	}
	current, err := e.log.Get(ctx, chatID, messageID)
	if err != nil {
		return err
	}
	if current.SenderID != editorID {
		return errs.Validationf(op, "only the sender can edit message %s", messageID)
	}
	if text == "" && current.Media == nil {
		return errs.Validationf(op, "empty message")
	}

	tl := e.Timeline(chatID)
	tl.BeginEdit(messageID, text)
	e.changed(tl)

	base := current.Text
	_, err = e.fanout(ctx, chatID, fanout.EditMessage{
		ChatID:    chatID,
		MessageID: messageID,
		EditorID:  editorID,
		Text:      text,
		BaseText:  &base,
	})
	tl.EndEdit(messageID, err == nil)
	e.changed(tl)
	if err != nil {
		e.logger.Warn("edit failed, reverted", zap.String("chat", chatID), zap.String("message", messageID), zap.Error(err))
		return errs.FromStore(op, err)
	}
	return nil
}

// DeleteMessage removes one of the caller's messages. It disappears at once
// and comes back if the fan-out fails.
func (e *Engine) DeleteMessage(ctx context.Context, chatID, messageID, deleterID string) error {
	const op = "DeleteMessage"
	if _, err := e.participant(op, chatID, deleterID); err != nil {
		return err
	}
	current, err := e.log.Get(ctx, chatID, messageID)
	if err != nil {
		return err
	}
	if current.SenderID != deleterID {
		return errs.Validationf(op, "only the sender can delete message %s", messageID)
	}

	tl := e.Timeline(chatID)
	tl.BeginDelete(messageID)
	e.changed(tl)

	_, err = e.fanout(ctx, chatID, fanout.DeleteMessage{ChatID: chatID, MessageID: messageID, DeleterID: deleterID})
	tl.EndDelete(messageID, err == nil)
	e.changed(tl)
	if err != nil {
		e.logger.Warn("delete failed, reverted", zap.String("chat", chatID), zap.String("message", messageID), zap.Error(err))
		return errs.FromStore(op, err)
	}
	return nil
}

// MarkAsRead zeroes userID's unread counter on the chat summary and on the
// user's chat-list row, then moves the partner's messages to read. Calling
// it again when nothing is unread writes nothing.
func (e *Engine) MarkAsRead(ctx context.Context, chatID, userID string) error {
	_, err := e.markRead(ctx, chatID, userID, true)
	return err
}

func (e *Engine) markRead(ctx context.Context, chatID, userID string, always bool) (bool, error) {
	const op = "MarkAsRead"
	if _, err := e.participant(op, chatID, userID); err != nil {
		return false, err
	}
	res, err := e.fanout(ctx, chatID, fanout.MarkRead{ChatID: chatID, UserID: userID})
	if err != nil {
		return false, errs.FromStore(op, err)
	}
	if always || !res.Noop {
		if n, err := e.log.Advance(ctx, chatID, userID, model.StatusRead); err != nil {
			e.logger.Debug("read receipts not written", zap.String("chat", chatID), zap.Error(err))
		} else if n > 0 {
			e.logger.Debug("read receipts written", zap.String("chat", chatID), zap.Int("count", n))
		}
	}
	return !res.Noop, nil
}

// ListMessages returns the newest messages of a chat from the store.
func (e *Engine) ListMessages(ctx context.Context, chatID, userID string, limit int) ([]*model.Message, error) {
	if _, err := e.participant("ListMessages", chatID, userID); err != nil {
		return nil, err
	}
	return e.log.List(ctx, chatID, limit)
}

// DeleteChat removes a chat with its whole log and both chat-list rows.
func (e *Engine) DeleteChat(ctx context.Context, chatID, userID string) error {
	const op = "DeleteChat"
	if _, err := e.participant(op, chatID, userID); err != nil {
		return err
	}
	if _, err := e.fanout(ctx, chatID, fanout.DeleteChat{ChatID: chatID, UserID: userID}); err != nil {
		return errs.FromStore(op, err)
	}
	tl := e.Timeline(chatID)
	tl.ApplySnapshot(nil)
	e.changed(tl)
	if err := e.local.ClearDraft(userID, chatID); err != nil {
		e.logger.Warn("failed to clear draft", zap.String("chat", chatID), zap.Error(err))
	}
	e.logger.Info("chat deleted", zap.String("chat", chatID))
	return nil
}

// SetChatFlags updates the caller's own chat-list row.
func (e *Engine) SetChatFlags(ctx context.Context, chatID, userID string, f projection.Flags) (*model.ChatListEntry, error) {
	if _, err := e.participant("SetChatFlags", chatID, userID); err != nil {
		return nil, err
	}
	return e.rows.SetFlags(ctx, userID, chatID, f)
}

// UpdateProfile changes display fields and copies them to friends' rows.
func (e *Engine) UpdateProfile(ctx context.Context, userID string, displayName, avatarURL *string) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FanoutTimeout)
	defer cancel()
	_, err := e.writer.Apply(ctx, fanout.ProfileChanged{UserID: userID, DisplayName: displayName, AvatarURL: avatarURL})
	return err
}

// SetPresence flips the online flag and copies it to friends' rows.
func (e *Engine) SetPresence(ctx context.Context, userID string, online bool) error {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FanoutTimeout)
	defer cancel()
	_, err := e.writer.Apply(ctx, fanout.ProfileChanged{UserID: userID, Online: &online})
	return err
}

// GetDraft returns the saved draft of a chat or an empty one.
func (e *Engine) GetDraft(userID, chatID string) (*store.Draft, error) {
	d, err := e.local.GetDraft(userID, chatID)
	if err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}
	if d == nil {
		d = &store.Draft{UserID: userID, ChatID: chatID}
	}
	return d, nil
}

// SetDraft saves the input of a chat. A retry id survives only while the
// text is unchanged.
func (e *Engine) SetDraft(userID, chatID, text string, replyTo *model.ReplyTo) error {
	d := store.Draft{UserID: userID, ChatID: chatID, Text: text, ReplyTo: replyTo}
	prior, err := e.local.GetDraft(userID, chatID)
	if err != nil {
		return fmt.Errorf("get draft: %w", err)
	}
	if prior != nil && prior.Text == text {
		d.RetryID = prior.RetryID
	}
	if err := e.local.SaveDraft(d); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// ListFailedSends returns sends that were rolled back and not retried.
func (e *Engine) ListFailedSends(userID, chatID string) ([]store.OutboxEntry, error) {
	return e.local.FailedSends(userID, chatID)
}

// fanout applies m under the chat's semaphore. The timeout covers both the
// wait for the semaphore and the commit; hitting it counts as a failure.
func (e *Engine) fanout(ctx context.Context, chatID string, m fanout.Mutation) (*fanout.Result, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.FanoutTimeout)
	defer cancel()

	release, err := e.locks.acquire(ctx, chatID)
	if err != nil {
		return nil, errs.TransientIO("fanout", fmt.Errorf("waiting for chat %s: %w", chatID, err))
	}
	defer release()

	res, err := e.writer.Apply(ctx, m)
	if err == nil && ctx.Err() != nil {
		// Committed, but past the deadline the caller was promised.
		e.logger.Warn("fan-out finished after its deadline", zap.String("chat", chatID))
	}
	return res, err
}

// participant checks that userID is one side of chatID and returns the other.
func (e *Engine) participant(op, chatID, userID string) (string, error) {
	if !model.ValidUserID(userID) {
		return "", errs.Validationf(op, "missing or invalid user id")
	}
	a, b, err := model.ParseChatID(chatID)
	if err != nil {
		return "", errs.Validationf(op, "%v", err)
	}
	switch userID {
	case a:
		return b, nil
	case b:
		return a, nil
	}
	return "", errs.Validationf(op, "%s is not a participant of %s", userID, chatID)
}

// Close ends every open chat session.
func (e *Engine) Close() {
	e.mu.Lock()
	sessions := make([]*ChatSession, 0, len(e.sessions))
	for _, s := range e.sessions {
		sessions = append(sessions, s)
	}
	e.mu.Unlock()
	for _, s := range sessions {
		s.Close()
	}
}

// IsTempID reports whether id is a temporary local id.
func IsTempID(id string) bool {
	return len(id) > len(tempIDPrefix) && id[:len(tempIDPrefix)] == tempIDPrefix
}

var errSessionClosed = errors.New("chat session closed")
