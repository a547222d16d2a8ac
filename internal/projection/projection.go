// Package projection maintains the per-user chat list rows. Rows are a read
// cache: every field is copied from the profile and chat documents when the
// fan-out writer commits, except the owner's flags.
package projection

import (
	"context"
	"errors"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/model"
)

type Store struct {
	docs docstore.Store
}

func New(docs docstore.Store) *Store {
	return &Store{docs: docs}
}

// Query returns every projection row of uid, most recent first.
func Query(uid string) docstore.Query {
	return docstore.Collection(model.ChatListPath(uid)).OrderByField("lastMessageAt", true)
}

func (s *Store) Get(ctx context.Context, uid, chatID string) (*model.ChatListEntry, error) {
	snap, err := s.docs.Get(ctx, model.ProjectionPath(uid, chatID))
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, errs.NotFoundf("GetProjection", "chat %s for %s", chatID, uid)
		}
		return nil, errs.FromStore("GetProjection", err)
	}
	return Decode(snap)
}

func (s *Store) List(ctx context.Context, uid string) ([]*model.ChatListEntry, error) {
	snaps, err := s.docs.Query(ctx, Query(uid))
	if err != nil {
		return nil, errs.FromStore("ListProjections", err)
	}
	return DecodeAll(snaps)
}

func (s *Store) Watch(uid string, fn func([]*model.ChatListEntry, error)) *docstore.Subscription {
	return s.docs.WatchQuery(Query(uid), func(snaps []*docstore.Snapshot, err error) {
		if err != nil {
			fn(nil, errs.FromStore("WatchChatList", err))
			return
		}
		entries, err := DecodeAll(snaps)
		fn(entries, err)
	})
}

// Flags is a partial update of the owner-controlled fields.
type Flags struct {
	Pinned   *bool
	Archived *bool
	Muted    *bool
}

// SetFlags updates only uid's own row.
func (s *Store) SetFlags(ctx context.Context, uid, chatID string, f Flags) (*model.ChatListEntry, error) {
	fields := map[string]any{}
	if f.Pinned != nil {
		fields["pinned"] = *f.Pinned
	}
	if f.Archived != nil {
		fields["archived"] = *f.Archived
	}
	if f.Muted != nil {
		fields["muted"] = *f.Muted
	}
	if len(fields) == 0 {
		return nil, errs.Validationf("SetChatFlags", "no flags given")
	}
	if err := s.docs.Commit(ctx, docstore.Update(model.ProjectionPath(uid, chatID), fields)); err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, errs.NotFoundf("SetChatFlags", "chat %s for %s", chatID, uid)
		}
		return nil, errs.FromStore("SetChatFlags", err)
	}
	return s.Get(ctx, uid, chatID)
}

// Build derives owner's row from the chat headline and the partner profile.
// Flags carry over from prev.
func Build(c *model.Chat, owner string, partner *model.User, prev *model.ChatListEntry) *model.ChatListEntry {
	e := &model.ChatListEntry{
		ChatID:              c.ID,
		PartnerID:           c.Partner(owner),
		LastMessagePreview:  c.LastMessage,
		LastMessageAt:       c.LastMessageAt,
		LastMessageSenderID: c.LastMessageSenderID,
		UnreadCount:         c.UnreadCount[owner],
	}
	if partner != nil {
		e.PartnerName = partner.DisplayName
		e.PartnerAvatar = partner.AvatarURL
		e.PartnerOnline = partner.IsOnline
	} else {
		e.PartnerName = e.PartnerID
	}
	if prev != nil {
		e.Pinned, e.Archived, e.Muted = prev.Pinned, prev.Archived, prev.Muted
	}
	return e
}

// Decode converts a snapshot into a row.
func Decode(snap *docstore.Snapshot) (*model.ChatListEntry, error) {
	var e model.ChatListEntry
	if err := snap.DataTo(&e); err != nil {
		return nil, err
	}
	if e.ChatID == "" {
		e.ChatID = snap.ID()
	}
	return &e, nil
}

func DecodeAll(snaps []*docstore.Snapshot) ([]*model.ChatListEntry, error) {
	out := make([]*model.ChatListEntry, 0, len(snaps))
	for _, s := range snaps {
		e, err := Decode(s)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
