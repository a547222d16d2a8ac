package api

import (
	"context"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/graph"
	"google.golang.org/protobuf/types/known/emptypb"
)

// FriendService implements the FriendService gRPC service.
type FriendService struct {
	chatsyncv1.UnimplementedFriendServiceServer

	userID string
	graph  *graph.Service
}

// NewFriendService creates a new friend service acting as userID.
func NewFriendService(userID string, g *graph.Service) *FriendService {
	return &FriendService{userID: userID, graph: g}
}

func (s *FriendService) SendRequest(ctx context.Context, req *chatsyncv1.SendFriendRequestRequest) (*chatsyncv1.FriendRequest, error) {
	r, err := s.graph.Send(ctx, s.userID, req.ReceiverId)
	if err != nil {
		return nil, toStatus(err)
	}
	return requestToProto(r), nil
}

func (s *FriendService) AcceptRequest(ctx context.Context, req *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
	r, err := s.graph.Accept(ctx, req.RequestId, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return requestToProto(r), nil
}

func (s *FriendService) RejectRequest(ctx context.Context, req *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
	r, err := s.graph.Reject(ctx, req.RequestId, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return requestToProto(r), nil
}

func (s *FriendService) CancelRequest(ctx context.Context, req *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
	r, err := s.graph.Cancel(ctx, req.RequestId, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return requestToProto(r), nil
}

func (s *FriendService) ListIncoming(ctx context.Context, _ *emptypb.Empty) (*chatsyncv1.ListFriendRequestsResponse, error) {
	rs, err := s.graph.ListIncoming(ctx, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatsyncv1.ListFriendRequestsResponse{Requests: requestsToProto(rs)}, nil
}

func (s *FriendService) ListOutgoing(ctx context.Context, _ *emptypb.Empty) (*chatsyncv1.ListFriendRequestsResponse, error) {
	rs, err := s.graph.ListOutgoing(ctx, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatsyncv1.ListFriendRequestsResponse{Requests: requestsToProto(rs)}, nil
}

func (s *FriendService) ListFriends(ctx context.Context, _ *emptypb.Empty) (*chatsyncv1.ListFriendsResponse, error) {
	us, err := s.graph.ListFriends(ctx, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*chatsyncv1.User, len(us))
	for i, u := range us {
		out[i] = userToProto(u)
	}
	return &chatsyncv1.ListFriendsResponse{Friends: out}, nil
}
