package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	chatsyncv1 "github.com/matheus3301/chatsync/gen/chatsync/v1"
	"github.com/matheus3301/chatsync/internal/client"
	"github.com/matheus3301/chatsync/internal/config"
	"github.com/matheus3301/chatsync/internal/lock"
	"github.com/matheus3301/chatsync/internal/model"
	"github.com/matheus3301/chatsync/internal/profile"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
)

var (
	initUserID      string
	initDisplayName string
	initBackend     string
	initDefault     bool

	profileSetName   string
	profileSetAvatar string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show daemon status",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(ctx context.Context, c *client.Client) error {
			resp, err := c.Session.GetStatus(ctx, &emptypb.Empty{})
			if err != nil {
				return explainUnreachable(err)
			}
			if jsonOutput {
				outputJSON(resp)
				return nil
			}
			fmt.Printf("Profile: %s\n", resp.Profile)
			fmt.Printf("User:    %s\n", resp.UserId)
			fmt.Printf("Status:  %s\n", strings.TrimPrefix(resp.Status.String(), "SESSION_STATUS_"))
			if resp.Reason != "" {
				fmt.Printf("Reason:  %s\n", resp.Reason)
			}
			fmt.Printf("Uptime:  %s\n", time.Duration(resp.UptimeMs)*time.Millisecond)
			return nil
		})
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the profile.toml for a profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, err := profileName()
		if err != nil {
			return err
		}
		if !model.ValidUserID(initUserID) {
			return fmt.Errorf("invalid --user-id %q", initUserID)
		}
		if err := profile.EnsureDir(name); err != nil {
			return err
		}
		path := filepath.Join(profile.Dir(name), "profile.toml")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		p := config.DefaultProfile()
		p.UserID = initUserID
		p.DisplayName = initDisplayName
		p.Store.Backend = initBackend
		if err := config.Save(path, p); err != nil {
			return err
		}
		if initDefault {
			if err := config.Save(profile.ConfigPath(), config.Config{DefaultProfile: name}); err != nil {
				return err
			}
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Update display name or avatar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &chatsyncv1.UpdateProfileRequest{}
		if cmd.Flags().Changed("name") {
			req.DisplayName = &profileSetName
		}
		if cmd.Flags().Changed("avatar") {
			req.AvatarUrl = &profileSetAvatar
		}
		if req.DisplayName == nil && req.AvatarUrl == nil {
			return errors.New("nothing to update: pass --name and/or --avatar")
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			u, err := c.Session.UpdateProfile(ctx, req)
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(u)
				return nil
			}
			fmt.Printf("%s (%s)\n", u.DisplayName, u.Id)
			return nil
		})
	},
}

var presenceCmd = &cobra.Command{
	Use:       "presence <online|offline>",
	Short:     "Set online presence",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"online", "offline"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var online bool
		switch args[0] {
		case "online":
			online = true
		case "offline":
		default:
			return fmt.Errorf("unknown presence %q", args[0])
		}
		return withClient(func(ctx context.Context, c *client.Client) error {
			_, err := c.Session.SetPresence(ctx, &chatsyncv1.SetPresenceRequest{Online: online})
			return err
		})
	},
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Stream daemon events until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := connect()
		if err != nil {
			return err
		}
		defer func() { _ = c.Close() }()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		stream, err := c.Session.WatchEvents(ctx, &emptypb.Empty{})
		if err != nil {
			return err
		}
		for {
			evt, err := stream.Recv()
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return err
			}
			if jsonOutput {
				outputJSON(evt)
				continue
			}
			fmt.Printf("%s  %-24s %s\n", formatTime(evt.OccurredAtUnixMs), evt.Kind, formatPayload(evt.Payload))
		}
	},
}

// explainUnreachable tells a stopped daemon apart from a stuck one using
// the profile lock file, which only exists while a daemon holds it.
func explainUnreachable(err error) error {
	name, nameErr := profileName()
	if nameErr != nil {
		return err
	}
	owner, ownerErr := lock.ReadOwner(profile.Dir(name))
	if errors.Is(ownerErr, fs.ErrNotExist) {
		return fmt.Errorf("daemon for profile %q is not running (start it with: chatsyncd --profile %s)", name, name)
	}
	if ownerErr != nil || owner.PID == 0 {
		return err
	}
	return fmt.Errorf("daemon PID %d holds profile %q since %s but did not answer: %w",
		owner.PID, name, owner.Since.Local().Format(time.RFC3339), err)
}

func formatPayload(p map[string]string) string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + p[k]
	}
	return strings.Join(parts, " ")
}

func init() {
	initCmd.Flags().StringVar(&initUserID, "user-id", "", "user id this profile acts as")
	initCmd.Flags().StringVar(&initDisplayName, "display-name", "", "display name")
	initCmd.Flags().StringVar(&initBackend, "backend", config.BackendSQLite, "document store backend (sqlite, postgres, mongo)")
	initCmd.Flags().BoolVar(&initDefault, "default", false, "make this the default profile")
	_ = initCmd.MarkFlagRequired("user-id")

	profileCmd.Flags().StringVar(&profileSetName, "name", "", "new display name")
	profileCmd.Flags().StringVar(&profileSetAvatar, "avatar", "", "new avatar URL")

	rootCmd.AddCommand(statusCmd, initCmd, profileCmd, presenceCmd, eventsCmd)
}
