// Package graph implements the friend request lifecycle and the symmetric
// friendship edges it creates.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/matheus3301/chatsync/internal/docstore"
	"github.com/matheus3301/chatsync/internal/errs"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/model"
	"go.uber.org/zap"
)

// ChatBootstrapper creates the empty chat for a new friendship.
type ChatBootstrapper interface {
	Bootstrap(ctx context.Context, a, b string) error
}

type Service struct {
	docs      docstore.Store
	ids       *identity.Store
	bootstrap ChatBootstrapper
	logger    *zap.Logger
}

// New creates the service. bootstrap may be nil.
func New(docs docstore.Store, ids *identity.Store, bootstrap ChatBootstrapper, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{docs: docs, ids: ids, bootstrap: bootstrap, logger: logger}
}

// Send creates a pending request from senderID to receiverID. A second send
// while one is pending for the same ordered pair is a Conflict; the pending
// marker document is created with a must-not-exist precondition so two
// racing sends cannot both commit.
func (s *Service) Send(ctx context.Context, senderID, receiverID string) (*model.FriendRequest, error) {
	const op = "SendFriendRequest"
	if !model.ValidUserID(senderID) || !model.ValidUserID(receiverID) {
		return nil, errs.Validationf(op, "missing or invalid participant")
	}
	if senderID == receiverID {
		return nil, errs.Validationf(op, "cannot befriend yourself")
	}

	var req *model.FriendRequest
	err := s.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		sender, err := getUser(tx, op, senderID)
		if err != nil {
			return err
		}
		receiver, err := getUser(tx, op, receiverID)
		if err != nil {
			return err
		}
		if sender.HasFriend(receiverID) {
			return errs.Conflictf(op, "%s and %s are already friends", senderID, receiverID)
		}

		_, err = tx.Get(model.PendingPath(senderID, receiverID))
		switch {
		case err == nil:
			return errs.Conflictf(op, "a request from %s to %s is already pending", senderID, receiverID)
		case !errors.Is(err, docstore.ErrNotFound):
			return err
		}

		now, err := tx.ServerTime()
		if err != nil {
			return err
		}
		req = &model.FriendRequest{
			ID:             s.docs.NewID(),
			SenderID:       senderID,
			SenderName:     sender.DisplayName,
			SenderAvatar:   sender.AvatarURL,
			ReceiverID:     receiverID,
			ReceiverName:   receiver.DisplayName,
			ReceiverAvatar: receiver.AvatarURL,
			Status:         model.RequestPending,
			CreatedAt:      now,
		}
		tx.Write(
			docstore.Create(model.PendingPath(senderID, receiverID), model.PendingMarker{RequestID: req.ID}),
			docstore.Create(model.RequestPath(req.ID), req),
		)
		return nil
	})
	if err != nil {
		if errors.Is(err, docstore.ErrAlreadyExists) {
			return nil, errs.Conflictf(op, "a request from %s to %s is already pending", senderID, receiverID)
		}
		return nil, errs.FromStore(op, err)
	}
	s.logger.Info("friend request sent",
		zap.String("request", req.ID),
		zap.String("sender", senderID),
		zap.String("receiver", receiverID),
	)
	return req, nil
}

// Accept moves a pending request to accepted and, in the same commit,
// creates both friendship edges and bumps both friend counters. The chat is
// bootstrapped afterwards; a failure there does not undo the acceptance.
func (s *Service) Accept(ctx context.Context, requestID, accepterID string) (*model.FriendRequest, error) {
	const op = "AcceptFriendRequest"
	var req *model.FriendRequest
	err := s.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		var err error
		req, err = getPending(tx, op, requestID)
		if err != nil {
			return err
		}
		if req.ReceiverID != accepterID {
			return errs.Validationf(op, "only %s can accept request %s", req.ReceiverID, requestID)
		}
		now, err := tx.ServerTime()
		if err != nil {
			return err
		}
		req.Status = model.RequestAccepted
		req.RespondedAt = now

		a, b := req.SenderID, req.ReceiverID
		tx.Write(
			docstore.Update(model.RequestPath(requestID), map[string]any{
				"status":      req.Status,
				"respondedAt": now,
			}),
			docstore.Delete(model.PendingPath(a, b)),
			docstore.Set(model.FriendPath(a, b), model.Friend{FriendID: b, Since: now}),
			docstore.Set(model.FriendPath(b, a), model.Friend{FriendID: a, Since: now}),
			docstore.Update(model.UserPath(a), map[string]any{
				"friendIds":   docstore.ArrayUnion(b),
				"friendCount": docstore.Increment(1),
			}),
			docstore.Update(model.UserPath(b), map[string]any{
				"friendIds":   docstore.ArrayUnion(a),
				"friendCount": docstore.Increment(1),
			}),
		)
		// A crossing request in the other direction is settled too, so no
		// pending record is left for the pair.
		crossing, err := tx.Get(model.PendingPath(b, a))
		switch {
		case err == nil:
			var marker model.PendingMarker
			if err := crossing.DataTo(&marker); err != nil {
				return err
			}
			tx.Write(
				docstore.Delete(model.PendingPath(b, a)),
				docstore.Update(model.RequestPath(marker.RequestID), map[string]any{
					"status":      model.RequestAccepted,
					"respondedAt": now,
				}),
			)
		case !errors.Is(err, docstore.ErrNotFound):
			return err
		}
		return nil
	})
	if err != nil {
		return nil, errs.FromStore(op, err)
	}
	s.logger.Info("friend request accepted", zap.String("request", requestID))

	if s.bootstrap != nil {
		if err := s.bootstrap.Bootstrap(ctx, req.SenderID, req.ReceiverID); err != nil {
			s.logger.Warn("chat bootstrap failed",
				zap.String("request", requestID),
				zap.Error(err),
			)
		}
	}
	return req, nil
}

// Reject is the receiver declining a pending request.
func (s *Service) Reject(ctx context.Context, requestID, userID string) (*model.FriendRequest, error) {
	return s.close(ctx, "RejectFriendRequest", requestID, userID, model.RequestRejected)
}

// Cancel is the sender withdrawing a pending request.
func (s *Service) Cancel(ctx context.Context, requestID, userID string) (*model.FriendRequest, error) {
	return s.close(ctx, "CancelFriendRequest", requestID, userID, model.RequestCancelled)
}

func (s *Service) close(ctx context.Context, op, requestID, userID string, to model.RequestStatus) (*model.FriendRequest, error) {
	var req *model.FriendRequest
	err := s.docs.RunTransaction(ctx, func(_ context.Context, tx docstore.Tx) error {
		var err error
		req, err = getPending(tx, op, requestID)
		if err != nil {
			return err
		}
		allowed := req.ReceiverID
		if to == model.RequestCancelled {
			allowed = req.SenderID
		}
		if userID != allowed {
			return errs.Validationf(op, "only %s can %s request %s", allowed, to, requestID)
		}
		now, err := tx.ServerTime()
		if err != nil {
			return err
		}
		req.Status, req.RespondedAt = to, now
		tx.Write(
			docstore.Update(model.RequestPath(requestID), map[string]any{
				"status":      to,
				"respondedAt": now,
			}),
			docstore.Delete(model.PendingPath(req.SenderID, req.ReceiverID)),
		)
		return nil
	})
	if err != nil {
		return nil, errs.FromStore(op, err)
	}
	s.logger.Info("friend request closed", zap.String("request", requestID), zap.String("status", string(to)))
	return req, nil
}

// Get loads a request in any state.
func (s *Service) Get(ctx context.Context, requestID string) (*model.FriendRequest, error) {
	snap, err := s.docs.Get(ctx, model.RequestPath(requestID))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, errs.NotFoundf("GetFriendRequest", "request %s", requestID)
	}
	if err != nil {
		return nil, errs.FromStore("GetFriendRequest", err)
	}
	return decode(snap)
}

func incomingQuery(uid string) docstore.Query {
	return docstore.Collection(model.RequestsCollection).
		Where("receiverId", uid).
		Where("status", model.RequestPending).
		OrderByField("createdAt", true)
}

func outgoingQuery(uid string) docstore.Query {
	return docstore.Collection(model.RequestsCollection).
		Where("senderId", uid).
		Where("status", model.RequestPending).
		OrderByField("createdAt", true)
}

// ListIncoming returns the pending requests addressed to uid, newest first.
func (s *Service) ListIncoming(ctx context.Context, uid string) ([]*model.FriendRequest, error) {
	return s.list(ctx, "ListIncomingRequests", incomingQuery(uid))
}

// ListOutgoing returns the pending requests uid has sent, newest first.
func (s *Service) ListOutgoing(ctx context.Context, uid string) ([]*model.FriendRequest, error) {
	return s.list(ctx, "ListOutgoingRequests", outgoingQuery(uid))
}

// WatchIncoming streams uid's pending incoming requests.
func (s *Service) WatchIncoming(uid string, fn func([]*model.FriendRequest, error)) *docstore.Subscription {
	return s.docs.WatchQuery(incomingQuery(uid), func(snaps []*docstore.Snapshot, err error) {
		if err != nil {
			fn(nil, errs.FromStore("WatchIncomingRequests", err))
			return
		}
		fn(decodeAll(snaps))
	})
}

// ListFriends returns the profiles of uid's friends.
func (s *Service) ListFriends(ctx context.Context, uid string) ([]*model.User, error) {
	return s.ids.Friends(ctx, uid)
}

func (s *Service) list(ctx context.Context, op string, q docstore.Query) ([]*model.FriendRequest, error) {
	snaps, err := s.docs.Query(ctx, q)
	if err != nil {
		return nil, errs.FromStore(op, err)
	}
	return decodeAll(snaps)
}

func getUser(tx docstore.Tx, op, uid string) (*model.User, error) {
	snap, err := tx.Get(model.UserPath(uid))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, errs.Validationf(op, "unknown user %s", uid)
	}
	if err != nil {
		return nil, err
	}
	return identity.Decode(snap)
}

func getPending(tx docstore.Tx, op, requestID string) (*model.FriendRequest, error) {
	snap, err := tx.Get(model.RequestPath(requestID))
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, errs.NotFoundf(op, "request %s", requestID)
	}
	if err != nil {
		return nil, err
	}
	req, err := decode(snap)
	if err != nil {
		return nil, err
	}
	if req.Status != model.RequestPending {
		return nil, errs.Conflictf(op, "request %s is already %s", requestID, req.Status)
	}
	return req, nil
}

func decode(snap *docstore.Snapshot) (*model.FriendRequest, error) {
	var req model.FriendRequest
	if err := snap.DataTo(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if req.ID == "" {
		req.ID = snap.ID()
	}
	return &req, nil
}

func decodeAll(snaps []*docstore.Snapshot) ([]*model.FriendRequest, error) {
	out := make([]*model.FriendRequest, 0, len(snaps))
	for _, snap := range snaps {
		req, err := decode(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, nil
}
