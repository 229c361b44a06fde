package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) registerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRegister(cmd)
		},
	}
}

func (c *Cli) runRegister(cmd *cobra.Command) error {
	ctx := cmd.Context()

	c.io.Println("=== Registration ===")
	c.io.Println()

	login, err := c.io.ReadInput("Login: ")
	if err != nil {
		return fmt.Errorf("failed to read login: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	surname, err := c.io.ReadInput("Surname: ")
	if err != nil {
		return fmt.Errorf("failed to read surname: %w", err)
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	password, err := c.io.ReadPassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	confirmPassword, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if password != confirmPassword {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Registering user...")

	user, err := c.authService.Register(ctx, pkgapi.RegisterRequest{
		Login:       login,
		Email:       email,
		Password:    password,
		Name:        name,
		Surname:     surname,
		Description: description,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %d\n", user.ID)
	c.io.Printf("Login: %s\n", user.Login)
	c.io.Println("You are now logged in.")

	return nil
}
