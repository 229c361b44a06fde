package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func (c *Cli) statusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStatus(cmd)
		},
	}
}

func (c *Cli) runStatus(cmd *cobra.Command) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	status, err := c.authService.Status(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !status.Authenticated {
		if status.Expired {
			c.io.Println("Status: Token expired")
			c.io.Println()
			c.io.Println("⚠️  Please run 'huddle login' again.")
			return nil
		}
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'huddle login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if status.Login != "" {
		c.io.Printf("Login: %s\n", status.Login)
	}
	if status.Subject != "" {
		c.io.Printf("Subject: %s\n", status.Subject)
	}

	if status.ExpiresAt.IsZero() {
		c.io.Println("Token expires: never")
		return nil
	}

	c.io.Printf("Token expires: %s\n", status.ExpiresAt.Format(time.RFC3339))
	if remaining := time.Until(status.ExpiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	}

	return nil
}
