package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) friendsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "friends",
		Short: "Manage friends",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List your friends",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runFriendsList(cmd)
			},
		},
		&cobra.Command{
			Use:   "add <user-id>",
			Short: "Send a friend request",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runFriendsAdd(cmd, args[0])
			},
		},
	)

	return cmd
}

func (c *Cli) runFriendsList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteFriends); err != nil {
		return err
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	resp, err := c.apiClient.GetFriends(ctx, userID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	if resp.TotalCount == 0 {
		c.io.Println("You have no friends yet. Add one with 'huddle friends add <user-id>'.")
		return nil
	}

	c.io.Printf("=== Friends (%d) ===\n", resp.TotalCount)
	for _, friend := range resp.Friends {
		c.io.Printf("[%d] %s %s (%s) %s\n", friend.ID, friend.Name, friend.Surname, friend.Login, friend.Email)
	}

	return nil
}

func (c *Cli) runFriendsAdd(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteFriends); err != nil {
		return err
	}

	friendID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q", rawID)
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	err = c.apiClient.SendFriendRequest(ctx, pkgapi.FriendRequest{
		UserID:   userID,
		FriendID: friendID,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Friend request sent!")
	return nil
}
