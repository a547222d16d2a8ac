package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/client"
	"github.com/spf13/cobra"
)

var (
	messagesLimit int32
	messagesWatch bool

	sendReplyTo string
	sendMedia   string
	sendRetry   string

	draftReplyTo string
)

var messagesCmd = &cobra.Command{
	Use:   "messages <chat-id>",
	Short: "Show recent messages of a chat",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if messagesWatch {
			return watchChat(args[0])
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Message.ListMessages(ctx, &chatsyncv1.ListMessagesRequest{ChatId: args[0], Limit: messagesLimit})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			printMessages(resp.Messages)
			return nil
		})
	},
}

// watchChat keeps the chat open: the daemon marks it read while the stream
// lives.
func watchChat(chatID string) error {
	c, _, err := connect()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	stream, err := c.Message.WatchChat(ctx, &chatsyncv1.ChatRequest{ChatId: chatID})
	if err != nil {
		return err
	}
	for {
		tl, err := stream.Recv()
		if errors.Is(err, io.EOF) || ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return err
		}
		if jsonOutput {
			outputJSON(tl)
			continue
		}
		fmt.Println(strings.Repeat("-", 60))
		if tl.Failed {
			fmt.Println("(messages unavailable, retrying)")
			continue
		}
		printMessages(tl.Messages)
	}
}

func printMessages(msgs []*chatsyncv1.Message) {
	if len(msgs) == 0 {
		fmt.Println("No messages.")
		return
	}
	for _, m := range msgs {
		state := m.Status
		switch {
		case m.Uploading:
			state = "uploading"
		case m.Pending:
			state = "sending"
		}
		text := m.Text
		if m.Media != nil {
			text = fmt.Sprintf("[%s %s] %s", m.Media.Type, m.Media.Url, text)
		}
		if m.Edited {
			text += " (edited)"
		}
		fmt.Printf("%s  %-12s %-9s %s\n", formatTime(m.TimestampUnixMs), m.SenderId, state, text)
		if m.ReplyTo != nil {
			fmt.Printf("    > %s: %s\n", m.ReplyTo.SenderName, m.ReplyTo.Text)
		}
		fmt.Printf("    id=%s\n", m.Id)
	}
}

var sendCmd = &cobra.Command{
	Use:   "send <chat-id> [text]",
	Short: "Send a message",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &chatsyncv1.SendMessageRequest{
			ChatId:    args[0],
			ReplyToId: sendReplyTo,
			MessageId: sendRetry,
		}
		if len(args) == 2 {
			req.Text = args[1]
		}
		if sendMedia != "" {
			path, err := filepath.Abs(sendMedia)
			if err != nil {
				return err
			}
			kind, err := mediaKind(path)
			if err != nil {
				return err
			}
			req.MediaPath = path
			req.MediaKind = kind
			req.FileName = filepath.Base(path)
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Message.SendMessage(ctx, req)
			if err != nil {
				if id, ok := client.FailedSendID(err); ok {
					return fmt.Errorf("%w\nretry with: chatsyncctl send --retry %s %s", err, id, args[0])
				}
				return err
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			fmt.Println(resp.MessageId)
			return nil
		})
	},
}

// mediaKind guesses the media kind from the file's content; the daemon
// verifies it again before uploading.
func mediaKind(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	for m := mt; m != nil; m = m.Parent() {
		for _, kind := range []string{"image", "video", "audio"} {
			if strings.HasPrefix(m.String(), kind+"/") {
				return kind, nil
			}
		}
	}
	return "", fmt.Errorf("%s: unsupported media type %s", path, mt.String())
}

var editCmd = &cobra.Command{
	Use:   "edit <chat-id> <message-id> <text>",
	Short: "Edit one of your messages",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			_, err := c.Message.EditMessage(ctx, &chatsyncv1.EditMessageRequest{ChatId: args[0], MessageId: args[1], Text: args[2]})
			return err
		})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <chat-id> <message-id>",
	Short: "Delete one of your messages",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			_, err := c.Message.DeleteMessage(ctx, &chatsyncv1.MessageRequest{ChatId: args[0], MessageId: args[1]})
			return err
		})
	},
}

var draftCmd = &cobra.Command{
	Use:   "draft <chat-id> [text]",
	Short: "Show or replace the draft of a chat",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			if len(args) == 2 {
				d := &chatsyncv1.Draft{ChatId: args[0], Text: args[1]}
				if draftReplyTo != "" {
					d.ReplyTo = &chatsyncv1.ReplyTo{MessageId: draftReplyTo}
				}
				_, err := c.Message.SetDraft(ctx, d)
				return err
			}
			d, err := c.Message.GetDraft(ctx, &chatsyncv1.ChatRequest{ChatId: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(d)
				return nil
			}
			if d.Text == "" && d.ReplyTo == nil {
				fmt.Println("No draft.")
				return nil
			}
			fmt.Println(d.Text)
			if d.ReplyTo != nil {
				fmt.Printf("  replying to %s\n", d.ReplyTo.MessageId)
			}
			if d.RetryId != "" {
				fmt.Printf("  failed send %s; sending again re-uses it\n", d.RetryId)
			}
			return nil
		})
	},
}

var failedCmd = &cobra.Command{
	Use:   "failed <chat-id>",
	Short: "List sends that did not reach the store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Message.ListFailedSends(ctx, &chatsyncv1.ChatRequest{ChatId: args[0]})
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			if len(resp.Sends) == 0 {
				fmt.Println("No failed sends.")
				return nil
			}
			for _, s := range resp.Sends {
				fmt.Printf("%s  %s  %q: %s\n", formatTime(s.FailedAtUnixMs), s.MessageId, s.Text, s.Error)
			}
			return nil
		})
	},
}

func init() {
	messagesCmd.Flags().Int32VarP(&messagesLimit, "limit", "n", 0, "number of messages (0 = daemon default)")
	messagesCmd.Flags().BoolVarP(&messagesWatch, "watch", "w", false, "open the chat and stream updates")

	sendCmd.Flags().StringVar(&sendReplyTo, "reply-to", "", "id of the message to reply to")
	sendCmd.Flags().StringVar(&sendMedia, "media", "", "path of an image, video or audio file to attach")
	sendCmd.Flags().StringVar(&sendRetry, "retry", "", "message id of a failed send to retry")

	draftCmd.Flags().StringVar(&draftReplyTo, "reply-to", "", "id of the message the draft replies to")

	rootCmd.AddCommand(messagesCmd, sendCmd, editCmd, deleteCmd, draftCmd, failedCmd)
}
