package chatlist

import (
	"context"
	"sync"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	"go.uber.org/zap"
)

// Watcher opens live chat-list sessions.
type Watcher struct {
	ids    *identity.Store
	rows   *projection.Store
	logger *zap.Logger
}

func NewWatcher(ids *identity.Store, rows *projection.Store, logger *zap.Logger) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{ids: ids, rows: rows, logger: logger}
}

// List computes the merged list once.
func (w *Watcher) List(ctx context.Context, uid string) ([]model.ChatListEntry, error) {
	rows, err := w.rows.List(ctx, uid)
	if err != nil {
		return nil, err
	}
	friends, err := w.ids.Friends(ctx, uid)
	if err != nil && !errs.IsNotFound(err) {
		return nil, err
	}
	return Merge(uid, rows, friends), nil
}

// Func receives the full merged list on every change. On a subscription
// error it receives an empty list and the error; nothing further arrives
// until the failed subscription delivers a good snapshot again.
type Func func(entries []model.ChatListEntry, err error)

// Session owns the subscriptions behind one chat list: the owner's
// profile, the owner's projection rows and one profile per friend.
type Session struct {
	uid    string
	w      *Watcher
	fn     Func
	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	friendIDs  []string
	friendsOK  bool
	profiles   map[string]*model.User
	rows       []*model.ChatListEntry
	rowsOK     bool
	userSub    *docstore.Subscription
	rowsSub    *docstore.Subscription
	friendSubs map[string]*docstore.Subscription
	closeOnce  sync.Once
}

// Open subscribes to uid's profile (for the friend list) and projection
// rows and calls fn with the merged list whenever either changes.
func (w *Watcher) Open(uid string, fn Func) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{
		uid:        uid,
		w:          w,
		fn:         fn,
		ctx:        ctx,
		cancel:     cancel,
		profiles:   map[string]*model.User{},
		friendSubs: map[string]*docstore.Subscription{},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.userSub = w.ids.Watch(uid, s.onUser)
	s.rowsSub = w.rows.Watch(uid, s.onRows)
	return s
}

// Close tears down every subscription. No callback runs after it returns.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		s.mu.Lock()
		subs := []*docstore.Subscription{s.userSub, s.rowsSub}
		for fid, sub := range s.friendSubs {
			subs = append(subs, sub)
			delete(s.friendSubs, fid)
		}
		s.mu.Unlock()
		for _, sub := range subs {
			sub.Stop()
		}
	})
}

func (s *Session) onUser(u *model.User, err error) {
	s.mu.Lock()
	if s.ctx.Err() != nil {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.friendIDs, s.friendsOK = nil, false
		s.failLocked(err)
		s.mu.Unlock()
		return
	}
	s.friendIDs, s.friendsOK = nil, true
	if u != nil {
		s.friendIDs = append([]string(nil), u.FriendIDs...)
	}
	stale := s.followFriendsLocked()
	s.emitLocked()
	s.mu.Unlock()

	// Stop waits for the listener, which may be blocked on s.mu.
	for _, sub := range stale {
		sub.Stop()
	}
}

// followFriendsLocked starts a profile watch for every new friend and
// returns the watches of removed friends for the caller to stop.
func (s *Session) followFriendsLocked() []*docstore.Subscription {
	current := make(map[string]bool, len(s.friendIDs))
	for _, fid := range s.friendIDs {
		current[fid] = true
		if _, ok := s.friendSubs[fid]; ok || fid == s.uid {
			continue
		}
		fid := fid
		s.friendSubs[fid] = s.w.ids.Watch(fid, func(u *model.User, err error) {
			s.onFriend(fid, u, err)
		})
	}
	var stale []*docstore.Subscription
	for fid, sub := range s.friendSubs {
		if current[fid] {
			continue
		}
		stale = append(stale, sub)
		delete(s.friendSubs, fid)
		delete(s.profiles, fid)
	}
	return stale
}

func (s *Session) onFriend(fid string, u *model.User, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil || s.friendSubs[fid] == nil {
		return
	}
	if err != nil || u == nil {
		if err != nil {
			s.w.logger.Debug("friend profile watch failed", zap.String("friend", fid), zap.Error(err))
		}
		delete(s.profiles, fid)
		return
	}
	prev := s.profiles[fid]
	s.profiles[fid] = u
	if prev != nil && prev.DisplayName == u.DisplayName && prev.AvatarURL == u.AvatarURL && prev.IsOnline == u.IsOnline {
		return
	}
	// Rows carry their own partner data; only placeholders show the profile.
	for _, r := range s.rows {
		if r.PartnerID == fid {
			return
		}
	}
	s.emitLocked()
}

func (s *Session) onRows(rows []*model.ChatListEntry, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return
	}
	if err != nil {
		s.rows, s.rowsOK = nil, false
		s.failLocked(err)
		return
	}
	s.rows, s.rowsOK = rows, true
	s.emitLocked()
}

func (s *Session) failLocked(err error) {
	s.w.logger.Warn("chat list subscription failed", zap.String("user", s.uid), zap.Error(err))
	s.fn([]model.ChatListEntry{}, err)
}
func (s *Session) emitLocked() {
	if !s.friendsOK || !s.rowsOK || s.ctx.Err() != nil {
		return
	}
	have := make(map[string]bool, len(s.rows))
	for _, r := range s.rows {
		have[r.PartnerID] = true
	}
	friends := make([]*model.User, 0, len(s.friendIDs))
	for _, fid := range s.friendIDs {
		if p, ok := s.profiles[fid]; ok {
			friends = append(friends, p)
			continue
		}
		if have[fid] {
			friends = append(friends, &model.User{ID: fid, DisplayName: fid})
			continue
		}
		p, err := s.w.ids.Get(s.ctx, fid)
		if err != nil {
			s.w.logger.Debug("friend profile unavailable", zap.String("friend", fid), zap.Error(err))
			p = &model.User{ID: fid, DisplayName: fid}
		} else {
			s.profiles[fid] = p
		}
		friends = append(friends, p)
	}
	s.fn(Merge(s.uid, s.rows, friends), nil)
}
