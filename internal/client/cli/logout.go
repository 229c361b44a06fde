package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Logout and delete local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogout(cmd)
		},
	}
}

func (c *Cli) runLogout(cmd *cobra.Command) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(cmd.Context()); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session has been deleted.")

	return nil
}
