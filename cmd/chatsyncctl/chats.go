package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/client"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

var (
	chatsWatch    bool
	flagPinned    bool
	flagArchived  bool
	flagMuted     bool
	chatsArchived bool
)

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "List chats, most recent first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if chatsWatch {
			return watchChats()
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Chat.ListChats(ctx, &emptypb.Empty{})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			printChats(resp.Chats)
			return nil
		})
	},
}

func watchChats() error {
	c, _, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	stream, err := c.Chat.WatchChatList(ctx, &emptypb.Empty{})
	if err != nil {
		return err
	}
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			outputJSON(resp)
			continue
		}
		fmt.Println(strings.Repeat("-", 60))
		if resp.Error != "" {
			fmt.Printf("(list unavailable: %s)\n", resp.Error)
			continue
		}
		printChats(resp.Chats)
	}
}

func printChats(chats []*chatsyncv1.ChatListEntry) {
	if len(chats) == 0 {
		fmt.Println("No chats.")
		return
	}
	for _, e := range chats {
		if e.Archived && !chatsArchived {
			continue
		}
		marks := ""
		if e.Pinned {
			marks += "*"
		}
		if e.Muted {
			marks += "~"
		}
		if e.PartnerOnline {
			marks += "+"
		}
		unread := ""
		if e.UnreadCount > 0 {
			unread = fmt.Sprintf("(%d)", e.UnreadCount)
		}
		preview := e.LastMessagePreview
		if e.Placeholder {
			preview = "no messages yet"
		}
		fmt.Printf("%-3s %-20s %-5s %-16s %s\n", marks, e.PartnerName, unread, formatTime(e.LastMessageAtUnixMs), preview)
		fmt.Printf("    %s\n", e.ChatId)
	}
}

var readCmd = &cobra.Command{
	Use:   "read <chat-id>",
	Short: "Mark a chat as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			_, err := c.Chat.MarkAsRead(ctx, &chatsyncv1.ChatRequest{ChatId: args[0]})
			return err
		})
	},
}

var flagsCmd = &cobra.Command{
	Use:   "flags <chat-id>",
	Short: "Pin, archive or mute a chat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &chatsyncv1.SetChatFlagsRequest{ChatId: args[0]}
		if cmd.Flags().Changed("pinned") {
			req.Pinned = &flagPinned
		}
		if cmd.Flags().Changed("archived") {
			req.Archived = &flagArchived
		}
		if cmd.Flags().Changed("muted") {
			req.Muted = &flagMuted
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			e, err := c.Chat.SetChatFlags(ctx, req)
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(e)
				return nil
			}
			fmt.Printf("pinned=%v archived=%v muted=%v\n", e.Pinned, e.Archived, e.Muted)
			return nil
		})
	},
}

var deleteChatCmd = &cobra.Command{
	Use:   "delete-chat <chat-id>",
	Short: "Delete a chat and its whole history for both participants",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			_, err := c.Chat.DeleteChat(ctx, &chatsyncv1.ChatRequest{ChatId: args[0]})
			return err
		})
	},
}

func init() {
	chatsCmd.Flags().BoolVarP(&chatsWatch, "watch", "w", false, "keep streaming the list as it changes")
	chatsCmd.Flags().BoolVar(&chatsArchived, "archived", false, "include archived chats")

	flagsCmd.Flags().BoolVar(&flagPinned, "pinned", false, "pin the chat")
	flagsCmd.Flags().BoolVar(&flagArchived, "archived", false, "archive the chat")
	flagsCmd.Flags().BoolVar(&flagMuted, "muted", false, "mute the chat")

	rootCmd.AddCommand(chatsCmd, readCmd, flagsCmd, deleteChatCmd)
}
