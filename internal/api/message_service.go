package api

import (
	"context"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/model"
	intsync "github.com/matheus3301/chatsync/internal/sync"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	chatsyncv1.UnimplementedMessageServiceServer

	userID string
	engine *intsync.Engine
	logger *zap.Logger
}

// NewMessageService creates a new message service acting as userID.
func NewMessageService(userID string, engine *intsync.Engine, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{userID: userID, engine: engine, logger: logger}
}

// WatchChat opens a chat session for the stream's lifetime: the message
// subscription and the read-mark timer stop when the client goes away.
func (s *MessageService) WatchChat(req *chatsyncv1.ChatRequest, stream grpc.ServerStreamingServer[chatsyncv1.Timeline]) error {
	updates := make(chan *chatsyncv1.Timeline, 1)
	sess, err := s.engine.OpenChat(stream.Context(), s.userID, req.ChatId, func(entries []intsync.Entry) {
		failed := s.engine.Timeline(req.ChatId).Failed()
		select {
		case <-updates:
		default:
		}
		updates <- timelineToProto(req.ChatId, entries, failed)
	})
	if err != nil {
		return toStatus(err)
	}
	defer sess.Close()

	for {
		select {
		case t := <-updates:
			if err := stream.Send(t); err != nil {
				return err
			}
		case <-stream.Context().Done():
			s.logger.Debug("chat stream closed", zap.String("chat", req.ChatId))
			return nil
		}
	}
}

func (s *MessageService) ListMessages(ctx context.Context, req *chatsyncv1.ListMessagesRequest) (*chatsyncv1.ListMessagesResponse, error) {
	msgs, err := s.engine.ListMessages(ctx, req.ChatId, s.userID, int(req.Limit))
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*chatsyncv1.Message, len(msgs))
	for i, m := range msgs {
		out[i] = messageToProto(m)
	}
	return &chatsyncv1.ListMessagesResponse{Messages: out}, nil
}

func (s *MessageService) SendMessage(ctx context.Context, req *chatsyncv1.SendMessageRequest) (*chatsyncv1.SendMessageResponse, error) {
	send := intsync.SendRequest{
		ChatID:    req.ChatId,
		SenderID:  s.userID,
		Text:      req.Text,
		MessageID: req.MessageId,
	}
	if req.ReplyToId != "" {
		send.ReplyTo = &model.ReplyTo{MessageID: req.ReplyToId}
	}
	if req.MediaPath != "" {
		send.Media = &intsync.MediaInput{
			Path:     req.MediaPath,
			Kind:     model.MediaKind(req.MediaKind),
			FileName: req.FileName,
		}
	}
	id, err := s.engine.SendMessage(ctx, send)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatsyncv1.SendMessageResponse{MessageId: id}, nil
}

func (s *MessageService) EditMessage(ctx context.Context, req *chatsyncv1.EditMessageRequest) (*emptypb.Empty, error) {
	if err := s.engine.EditMessage(ctx, req.ChatId, req.MessageId, s.userID, req.Text); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *MessageService) DeleteMessage(ctx context.Context, req *chatsyncv1.MessageRequest) (*emptypb.Empty, error) {
	if err := s.engine.DeleteMessage(ctx, req.ChatId, req.MessageId, s.userID); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *MessageService) GetDraft(_ context.Context, req *chatsyncv1.ChatRequest) (*chatsyncv1.Draft, error) {
	d, err := s.engine.GetDraft(s.userID, req.ChatId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &chatsyncv1.Draft{
		ChatId:  req.ChatId,
		Text:    d.Text,
		ReplyTo: replyToProto(d.ReplyTo),
		RetryId: d.RetryID,
	}, nil
}

func (s *MessageService) SetDraft(_ context.Context, req *chatsyncv1.Draft) (*emptypb.Empty, error) {
	if err := s.engine.SetDraft(s.userID, req.ChatId, req.Text, replyFromProto(req.ReplyTo)); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (s *MessageService) ListFailedSends(_ context.Context, req *chatsyncv1.ChatRequest) (*chatsyncv1.ListFailedSendsResponse, error) {
	entries, err := s.engine.ListFailedSends(s.userID, req.ChatId)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*chatsyncv1.FailedSend, len(entries))
	for i, e := range entries {
		out[i] = failedSendToProto(e)
	}
	return &chatsyncv1.ListFailedSendsResponse{Sends: out}, nil
}
