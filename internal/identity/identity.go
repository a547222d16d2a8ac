// Package identity reads and registers user profile documents.
package identity

import (
	"context"
	"errors"
	"sort"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
	"go.uber.org/zap"
)

// Store is the identity store over the document store.
type Store struct {
	docs   docstore.Store
	logger *zap.Logger
}

func New(docs docstore.Store, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{docs: docs, logger: logger}
}

// Register creates the profile document for u if it does not exist yet. An
// existing profile keeps its friend list; empty display fields are filled.
func (s *Store) Register(ctx context.Context, u model.User) (*model.User, error) {
	if !model.ValidUserID(u.ID) {
		return nil, errs.Validationf("Register", "invalid user id %q", u.ID)
	}
	if u.DisplayName == "" {
		u.DisplayName = u.ID
	}

	var out *model.User
	err := s.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		snap, err := tx.Get(model.UserPath(u.ID))
		if errors.Is(err, docstore.ErrNotFound) {
			fresh := u
			fresh.FriendIDs = []string{}
			fresh.FriendCount = 0
			tx.Write(docstore.Create(model.UserPath(u.ID), fresh))
			out = &fresh
			return nil
		}
		if err != nil {
			return err
		}
		existing, err := Decode(snap)
		if err != nil {
			return err
		}
		fields := map[string]any{}
		if existing.DisplayName == "" {
			fields["displayName"] = u.DisplayName
			existing.DisplayName = u.DisplayName
		}
		if existing.AvatarURL == "" && u.AvatarURL != "" {
			fields["avatarUrl"] = u.AvatarURL
			existing.AvatarURL = u.AvatarURL
		}
		if len(fields) > 0 {
			tx.Write(docstore.Update(model.UserPath(u.ID), fields))
		}
		out = existing
		return nil
	})
	if err != nil {
		return nil, errs.FromStore("Register", err)
	}
	return out, nil
}

// Get loads a profile.
func (s *Store) Get(ctx context.Context, uid string) (*model.User, error) {
	if !model.ValidUserID(uid) {
		return nil, errs.Validationf("GetUser", "invalid user id %q", uid)
	}
	snap, err := s.docs.Get(ctx, model.UserPath(uid))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, errs.NotFoundf("GetUser", "user %s", uid)
		}
		return nil, errs.FromStore("GetUser", err)
	}
	return Decode(snap)
}

// AreFriends reports whether b is in a's friend list.
func (s *Store) AreFriends(ctx context.Context, a, b string) (bool, error) {
	u, err := s.Get(ctx, a)
	if err != nil {
		return false, err
	}
	return u.HasFriend(b), nil
}

// Friends returns the profiles of uid's friends sorted by display name.
// Friends whose profile is gone are skipped.
func (s *Store) Friends(ctx context.Context, uid string) ([]*model.User, error) {
	u, err := s.Get(ctx, uid)
	if err != nil {
		return nil, err
	}
	out := make([]*model.User, 0, len(u.FriendIDs))
	for _, fid := range u.FriendIDs {
		f, err := s.Get(ctx, fid)
		if errs.IsNotFound(err) {
			s.logger.Warn("friend profile missing", zap.String("user", uid), zap.String("friend", fid))
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayName < out[j].DisplayName })
	return out, nil
}

// Watch follows a profile document. fn receives nil when it does not exist.
func (s *Store) Watch(uid string, fn func(*model.User, error)) *docstore.Subscription {
	return s.docs.WatchDoc(model.UserPath(uid), func(snap *docstore.Snapshot, err error) {
		if err != nil {
			fn(nil, errs.FromStore("WatchUser", err))
			return
		}
		if snap == nil {
			fn(nil, nil)
			return
		}
		u, err := Decode(snap)
		fn(u, err)
	})
}

// Decode converts a snapshot into a User.
func Decode(snap *docstore.Snapshot) (*model.User, error) {
	var u model.User
	if err := snap.DataTo(&u); err != nil {
		return nil, err
	}
	if u.ID == "" {
		u.ID = snap.ID()
	}
	if u.FriendIDs == nil {
		u.FriendIDs = []string{}
	}
	return &u, nil
}
