package fanout

import (
	"errors"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/model"
)

// ProfileChanged updates a user's display fields or presence and copies
// them into every projection row that friends hold for the user.
type ProfileChanged struct {
	UserID      string
	DisplayName *string
	AvatarURL   *string
	Online      *bool
}

func (ProfileChanged) name() string { return "ProfileChanged" }

func (m ProfileChanged) apply(tx docstore.Tx, res *Result) error {
	const op = "ProfileChanged"
	snap, err := tx.Get(model.UserPath(m.UserID))
	if errors.Is(err, docstore.ErrNotFound) {
		return errs.NotFoundf(op, "user %s", m.UserID)
	}
	if err != nil {
		return err
	}
	u, err := identity.Decode(snap)
	if err != nil {
		return err
	}

	userFields := map[string]any{}
	rowFields := map[string]any{}
	if m.DisplayName != nil {
		if *m.DisplayName == "" {
			return errs.Validationf(op, "empty display name")
		}
		userFields["displayName"] = *m.DisplayName
		rowFields["partnerName"] = *m.DisplayName
	}
	if m.AvatarURL != nil {
		userFields["avatarUrl"] = *m.AvatarURL
		rowFields["partnerAvatar"] = *m.AvatarURL
	}
	if m.Online != nil {
		userFields["isOnline"] = *m.Online
		rowFields["partnerOnline"] = *m.Online
		if !*m.Online {
			now, err := tx.ServerTime()
			if err != nil {
				return err
			}
			userFields["lastSeenAt"] = now
		}
	}
	if len(userFields) == 0 {
		res.Noop = true
		return nil
	}
	tx.Write(docstore.Update(model.UserPath(m.UserID), userFields))

	for _, fid := range u.FriendIDs {
		path := model.ProjectionPath(fid, model.ChatID(m.UserID, fid))
		_, err := tx.Get(path)
		if errors.Is(err, docstore.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		tx.Write(docstore.Update(path, rowFields))
	}
	return nil
}
