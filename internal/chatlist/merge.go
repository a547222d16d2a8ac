// Package chatlist produces the chat list a user sees: stored projection
// rows merged with placeholder rows for friends who have no chat yet.
package chatlist

import (
	"sort"

	"github.com/matheus3301/chatsync/internal/model"
)

// PlaceholderPreview is shown for friends without a conversation.
const PlaceholderPreview = "Start a conversation"

// Merge combines owner's projection rows with a placeholder for every
// friend that has none. A stored row always wins over a placeholder for the
// same partner, and the output never holds two rows for one partner. Rows
// are ordered by last message time, newest first, with placeholders last.
func Merge(owner string, rows []*model.ChatListEntry, friends []*model.User) []model.ChatListEntry {
	byPartner := make(map[string]model.ChatListEntry, len(rows)+len(friends))
	for _, r := range rows {
		if r == nil {
			continue
		}
		partner := r.PartnerID
		if partner == "" {
			if a, b, err := model.ParseChatID(r.ChatID); err == nil {
				partner = a
				if a == owner {
					partner = b
				}
			}
		}
		if cur, ok := byPartner[partner]; ok && cur.LastMessageAt >= r.LastMessageAt {
			continue
		}
		e := *r
		e.PartnerID = partner
		e.Placeholder = false
		byPartner[partner] = e
	}

	for _, f := range friends {
		if f == nil || f.ID == owner {
			continue
		}
		if _, ok := byPartner[f.ID]; ok {
			continue
		}
		byPartner[f.ID] = model.ChatListEntry{
			ChatID:             model.ChatID(owner, f.ID),
			PartnerID:          f.ID,
			PartnerName:        f.DisplayName,
			PartnerAvatar:      f.AvatarURL,
			PartnerOnline:      f.IsOnline,
			LastMessagePreview: PlaceholderPreview,
			Placeholder:        true,
		}
	}

	out := make([]model.ChatListEntry, 0, len(byPartner))
	for _, e := range byPartner {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Placeholder != b.Placeholder {
			return !a.Placeholder
		}
		if a.LastMessageAt != b.LastMessageAt {
			return a.LastMessageAt > b.LastMessageAt
		}
		if a.Placeholder && a.PartnerName != b.PartnerName {
			return a.PartnerName < b.PartnerName
		}
		return a.ChatID < b.ChatID
	})
	return out
}
