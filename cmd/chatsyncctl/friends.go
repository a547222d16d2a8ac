package main

import (
	"context"
	"fmt"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/client"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

var friendsCmd = &cobra.Command{
	Use:   "friends",
	Short: "List friends and manage friend requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Friend.ListFriends(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			if len(resp.Friends) == 0 {
				fmt.Println("No friends yet.")
				return nil
			}
			for _, u := range resp.Friends {
				online := ""
				if u.Online {
					online = "online"
				}
				fmt.Printf("%-20s %-20s %s\n", u.Id, u.DisplayName, online)
			}
			return nil
		})
	},
}

var friendsAddCmd = &cobra.Command{
	Use:   "add <user-id>",
	Short: "Send a friend request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			r, err := c.Friend.SendRequest(ctx, &chatsyncv1.SendFriendRequestRequest{ReceiverId: args[0]})
			if err != nil {
				return err
			}
			return printRequest(r)
		})
	},
}

// requestAction builds accept/reject/cancel, which differ only in the call.
func requestAction(use, short string, call func(context.Context, *client.Client, *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <request-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(func(ctx context.Context, c *client.Client) error {
				r, err := call(ctx, c, &chatsyncv1.FriendRequestRef{RequestId: args[0]})
				if err != nil {
					return err
				}
				return printRequest(r)
			})
		},
	}
}

var friendsRequestsCmd = &cobra.Command{
	Use:   "requests",
	Short: "List pending incoming and outgoing requests",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			in, err := c.Friend.ListIncoming(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			out, err := c.Friend.ListOutgoing(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(map[string]any{"incoming": in.Requests, "outgoing": out.Requests})
				return nil
			}
			fmt.Println("Incoming:")
			for _, r := range in.Requests {
				fmt.Printf("  %s  from %s (%s)  %s\n", r.Id, r.SenderName, r.SenderId, formatTime(r.CreatedAtUnixMs))
			}
			fmt.Println("Outgoing:")
			for _, r := range out.Requests {
				fmt.Printf("  %s  to %s (%s)  %s\n", r.Id, r.ReceiverName, r.ReceiverId, formatTime(r.CreatedAtUnixMs))
			}
			return nil
		})
	},
}

func printRequest(r *chatsyncv1.FriendRequest) error {
	if jsonOutput {
		outputJSON(r)
		return nil
	}
	fmt.Printf("%s  %s -> %s  %s\n", r.Id, r.SenderId, r.ReceiverId, r.Status)
	return nil
}

func init() {
	friendsCmd.AddCommand(
		friendsAddCmd,
		friendsRequestsCmd,
		requestAction("accept", "Accept an incoming request", func(ctx context.Context, c *client.Client, ref *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
			return c.Friend.AcceptRequest(ctx, ref)
		}),
		requestAction("reject", "Reject an incoming request", func(ctx context.Context, c *client.Client, ref *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
			return c.Friend.RejectRequest(ctx, ref)
		}),
		requestAction("cancel", "Cancel an outgoing request", func(ctx context.Context, c *client.Client, ref *chatsyncv1.FriendRequestRef) (*chatsyncv1.FriendRequest, error) {
			return c.Friend.CancelRequest(ctx, ref)
		}),
	)
	rootCmd.AddCommand(friendsCmd)
}
