package api

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/bus"
	"github.com/matheus3301/chatsync/internal/identity"
	"github.com/matheus3301/chatsync/internal/status"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	chatsyncv1.UnimplementedSessionServiceServer

	profile   string
	userID    string
	startedAt time.Time
	machine   *status.Machine
	engine    *intsync.Engine
	ids       *identity.Store
	bus       *bus.Bus
}

// NewSessionService creates a new session service.
func NewSessionService(profile, userID string, machine *status.Machine, engine *intsync.Engine, ids *identity.Store, b *bus.Bus) *SessionService {
	return &SessionService{
		profile:   profile,
		userID:    userID,
		startedAt: time.Now(),
		machine:   machine,
		engine:    engine,
		ids:       ids,
		bus:       b,
	}
}

func (s *SessionService) GetStatus(_ context.Context, _ *emptypb.Empty) (*chatsyncv1.GetStatusResponse, error) {
	return &chatsyncv1.GetStatusResponse{
		Profile:  s.profile,
		UserId:   s.userID,
		Status:   stateToProto(s.machine.Current()),
		Reason:   s.machine.Reason(),
		UptimeMs: time.Since(s.startedAt).Milliseconds(),
	}, nil
}

func (s *SessionService) UpdateProfile(ctx context.Context, req *chatsyncv1.UpdateProfileRequest) (*chatsyncv1.User, error) {
	if err := s.engine.UpdateProfile(ctx, s.userID, req.DisplayName, req.AvatarUrl); err != nil {
		return nil, toStatus(err)
	}
	u, err := s.ids.Get(ctx, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return userToProto(u), nil
}

func (s *SessionService) SetPresence(ctx context.Context, req *chatsyncv1.SetPresenceRequest) (*emptypb.Empty, error) {
	if err := s.engine.SetPresence(ctx, s.userID, req.Online); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

// watchedKinds are the bus namespaces forwarded by WatchEvents.
var watchedKinds = []string{"message.", "session.", "friend."}

func (s *SessionService) WatchEvents(_ *emptypb.Empty, stream grpc.ServerStreamingServer[chatsyncv1.EventEnvelope]) error {
	ch, unsub := s.bus.Subscribe("", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if !forwarded(evt.Kind) {
				continue
			}
			if err := stream.Send(&chatsyncv1.EventEnvelope{
				EventId:          uuid.New().String(),
				Profile:          s.profile,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
				Payload:          payloadOf(evt),
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func stateToProto(s status.State) chatsyncv1.SessionStatus {
	switch s {
	case status.Booting:
		return chatsyncv1.SessionStatus_SESSION_STATUS_BOOTING
	case status.Connecting:
		return chatsyncv1.SessionStatus_SESSION_STATUS_CONNECTING
	case status.Ready:
		return chatsyncv1.SessionStatus_SESSION_STATUS_READY
	case status.Degraded:
		return chatsyncv1.SessionStatus_SESSION_STATUS_DEGRADED
	case status.Error:
		return chatsyncv1.SessionStatus_SESSION_STATUS_ERROR
	default:
		return chatsyncv1.SessionStatus_SESSION_STATUS_UNSPECIFIED
	}
}

func forwarded(kind string) bool {
	for _, ns := range watchedKinds {
		if strings.HasPrefix(kind, ns) {
			return true
		}
	}
	return false
}

func payloadOf(evt bus.Event) map[string]string {
	switch p := evt.Payload.(type) {
	case map[string]string:
		return p
	case status.StatusChange:
		return map[string]string{"from": string(p.From), "to": string(p.To), "reason": p.Reason}
	}
	return nil
}
