package api

import (
	"context"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/chatlist"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/projection"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ChatService implements the ChatService gRPC service.
type ChatService struct {
	chatsyncv1.UnimplementedChatServiceServer

	userID  string
	engine  *intsync.Engine
	watcher *chatlist.Watcher
	logger  *zap.Logger
}

// NewChatService creates a new chat service acting as userID.
func NewChatService(userID string, engine *intsync.Engine, watcher *chatlist.Watcher, logger *zap.Logger) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatService{userID: userID, engine: engine, watcher: watcher, logger: logger}
}

func (s *ChatService) ListChats(ctx context.Context, _ *emptypb.Empty) (*chatsyncv1.ListChatsResponse, error) {
	entries, err := s.watcher.List(ctx, s.userID)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatsyncv1.ListChatsResponse{Chats: chatListToProto(entries)}, nil
}

// WatchChatList streams the merged chat list. The underlying session lives
// exactly as long as the stream.
func (s *ChatService) WatchChatList(_ *emptypb.Empty, stream grpc.ServerStreamingServer[chatsyncv1.ListChatsResponse]) error {
	updates := make(chan *chatsyncv1.ListChatsResponse, 1)
	sess := s.watcher.Open(s.userID, func(entries []model.ChatListEntry, err error) {
		resp := &chatsyncv1.ListChatsResponse{Chats: chatListToProto(entries)}
		if err != nil {
			resp.Error = err.Error()
		}
		// Keep only the newest list when the client lags.
		select {
		case <-updates:
		default:
		}
		updates <- resp
	})
	defer sess.Close()

	for {
		select {
		case resp := <-updates:
			if err := stream.Send(resp); err != nil {
				return err
			}
		case <-stream.Context().Done():
			s.logger.Debug("chat list stream closed", zap.String("user", s.userID))
			return nil
		}
	}
}

func (s *ChatService) SetChatFlags(ctx context.Context, req *chatsyncv1.SetChatFlagsRequest) (*chatsyncv1.ChatListEntry, error) {
	e, err := s.engine.SetChatFlags(ctx, req.ChatId, s.userID, projection.Flags{
		Pinned:   req.Pinned,
		Archived: req.Archived,
		Muted:    req.Muted,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return chatEntryToProto(e), nil
}

func (s *ChatService) MarkAsRead(ctx context.Context, req *chatsyncv1.ChatRequest) (*emptypb.Empty, error) {
	if err := s.engine.MarkAsRead(ctx, req.ChatId, s.userID); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *ChatService) DeleteChat(ctx context.Context, req *chatsyncv1.ChatRequest) (*emptypb.Empty, error) {
	if err := s.engine.DeleteChat(ctx, req.ChatId, s.userID); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}
