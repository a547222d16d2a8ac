package client

import (
	"fmt"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps gRPC connections to the daemon.
type Client struct {
	conn    *grpc.ClientConn
	Session chatsyncv1.SessionServiceClient
	Chat    chatsyncv1.ChatServiceClient
	Message chatsyncv1.MessageServiceClient
	Friend  chatsyncv1.FriendServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:    conn,
		Session: chatsyncv1.NewSessionServiceClient(conn),
		Chat:    chatsyncv1.NewChatServiceClient(conn),
		Message: chatsyncv1.NewMessageServiceClient(conn),
		Friend:  chatsyncv1.NewFriendServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
