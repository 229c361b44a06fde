package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Login to server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd)
		},
	}
}

func (c *Cli) runLogin(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c.io.Println("=== Login ===")
	c.io.Println()

	login, err := c.io.ReadInput("Login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.authService.Login(ctx, login, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Logged in as: %s %s (%s)\n", user.Name, user.Surname, user.Login)
	c.io.Println("Your session has been saved.")

	return nil
}
