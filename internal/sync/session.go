package sync

import (
	"context"
	stdsync "sync"
	"time"

	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/model"
	"go.uber.org/zap"
)

// ChatSession is an open chat screen: a live subscription to the message
// log plus a read-mark ticker. A user has at most one open session.
type ChatSession struct {
	engine *Engine
	userID string
	chatID string
	tl     *Timeline
	fn     func([]Entry)

	sub    *docstore.Subscription
	unsub  func()
	cancel context.CancelFunc
	done   chan struct{}
	once   stdsync.Once
}

// OpenChat subscribes to chatID for userID and calls fn with the timeline
// every time it changes. Opening a chat closes the user's previous session.
// The chat is marked read right away and then every ReadMarkInterval while
// the session is open. fn runs on one goroutine and never after Close.
func (e *Engine) OpenChat(ctx context.Context, userID, chatID string, fn func([]Entry)) (*ChatSession, error) {
	if _, err := e.participant("OpenChat", chatID, userID); err != nil {
		return nil, err
	}

	e.mu.Lock()
	prev := e.sessions[userID]
	e.mu.Unlock()
	if prev != nil {
		prev.Close()
	}

	tl := e.Timeline(chatID)
	loopCtx, cancel := context.WithCancel(context.Background())
	s := &ChatSession{
		engine: e,
		userID: userID,
		chatID: chatID,
		tl:     tl,
		fn:     fn,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	events, unsub := e.bus.Subscribe(bus.KindTimelineChanged, 32)
	s.unsub = unsub
	s.sub = e.log.Watch(chatID, e.cfg.MessageWindow, func(msgs []*model.Message, err error) {
		if err != nil {
			e.logger.Warn("chat subscription failed", zap.String("chat", chatID), zap.Error(err))
			tl.Reset()
			if e.health != nil {
				e.health.Degrade(err)
			}
		} else {
			tl.ApplySnapshot(msgs)
			if e.health != nil {
				e.health.Recover()
			}
		}
		e.changed(tl)
	})

	e.mu.Lock()
	e.sessions[userID] = s
	e.mu.Unlock()

	if n, err := e.log.Advance(ctx, chatID, userID, model.StatusDelivered); err != nil {
		e.logger.Debug("delivery receipts not written", zap.String("chat", chatID), zap.Error(err))
	} else if n > 0 {
		e.logger.Debug("delivery receipts written", zap.String("chat", chatID), zap.Int("count", n))
	}
	if err := e.MarkAsRead(ctx, chatID, userID); err != nil {
		e.logger.Warn("initial read mark failed", zap.String("chat", chatID), zap.Error(err))
	}

	go s.loop(loopCtx, events)
	e.logger.Debug("chat opened", zap.String("chat", chatID), zap.String("user", userID))
	return s, nil
}

func (s *ChatSession) loop(ctx context.Context, events <-chan bus.Event) {
	defer close(s.done)
	ticker := time.NewTicker(s.engine.cfg.ReadMarkInterval)
	defer ticker.Stop()

	s.deliver()
	for {
		select {
		case <-ctx.Done():
			return
		case evt := <-events:
			if !s.concerns(evt) {
				continue
			}
			// Coalesce a burst into one callback.
			for drained := false; !drained; {
				select {
				case <-events:
				default:
					drained = true
				}
			}
			s.deliver()
		case <-ticker.C:
			if _, err := s.engine.markRead(ctx, s.chatID, s.userID, false); err != nil && ctx.Err() == nil {
				s.engine.logger.Debug("periodic read mark failed", zap.String("chat", s.chatID), zap.Error(err))
			}
		}
	}
}

func (s *ChatSession) concerns(evt bus.Event) bool {
	p, ok := evt.Payload.(map[string]string)
	return ok && p["chat_id"] == s.chatID
}

func (s *ChatSession) deliver() {
	if s.fn != nil {
		s.fn(s.tl.Entries())
	}
}

func (s *ChatSession) ChatID() string { return s.chatID }
func (s *ChatSession) UserID() string { return s.userID }

// Timeline returns the session's timeline.
func (s *ChatSession) Timeline() *Timeline { return s.tl }

// Close stops the subscription and the ticker. It is safe to call more
// than once.
func (s *ChatSession) Close() {
	s.once.Do(func() {
		s.sub.Stop()
		s.cancel()
		<-s.done
		s.unsub()

		e := s.engine
		e.mu.Lock()
		if e.sessions[s.userID] == s {
			delete(e.sessions, s.userID)
		}
		e.mu.Unlock()
		e.logger.Debug("chat closed", zap.String("chat", s.chatID), zap.String("user", s.userID))
	})
}

// Session returns the user's open chat session, if any.
func (e *Engine) Session(userID string) (*ChatSession, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	s, ok := e.sessions[userID]
	if !ok {
		return nil, errSessionClosed
	}
	return s, nil
}
