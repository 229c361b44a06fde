package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) whoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show current user profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWhoami(cmd)
		},
	}
}

func (c *Cli) runWhoami(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteProfile); err != nil {
		return err
	}

	// Если в сессии только токен, профиль будет дозапрошен у сервера
	user, err := c.authService.CurrentUser(ctx)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Printf("ID:      %d\n", user.ID)
	c.io.Printf("Login:   %s\n", user.Login)
	c.io.Printf("Name:    %s %s\n", user.Name, user.Surname)
	c.io.Printf("Email:   %s\n", user.Email)
	if user.Description != "" {
		c.io.Printf("About:   %s\n", user.Description)
	}
	if user.CreatedAt != "" {
		c.io.Printf("Created: %s\n", user.CreatedAt)
	}

	return nil
}
