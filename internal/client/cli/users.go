package cli

import (
	"github.com/spf13/cobra"

	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) usersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Find other users",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "search <query>",
			Short: "Search users by name or login",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runUsersSearch(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List all users",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runUsersList(cmd)
			},
		},
	)

	return cmd
}

func (c *Cli) runUsersSearch(cmd *cobra.Command, query string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteFriends); err != nil {
		return err
	}

	users, err := c.apiClient.SearchUsers(ctx, query)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	if len(users) == 0 {
		c.io.Printf("No users found for %q.\n", query)
		return nil
	}

	c.printUsers(users)
	return nil
}

func (c *Cli) runUsersList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteFriends); err != nil {
		return err
	}

	users, err := c.apiClient.ListUsers(ctx)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	if len(users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	c.printUsers(users)
	return nil
}

func (c *Cli) printUsers(users []pkgapi.User) {
	c.io.Printf("=== Users (%d) ===\n", len(users))
	for _, user := range users {
		c.io.Printf("[%d] %s %s (%s)\n", user.ID, user.Name, user.Surname, user.Login)
	}
}
