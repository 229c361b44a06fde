package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avdeenkov/huddle/internal/validation"
	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) profileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "edit",
			Short: "Edit your profile",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runProfileEdit(cmd)
			},
		},
	)

	return cmd
}

func (c *Cli) runProfileEdit(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteProfile); err != nil {
		return err
	}

	current, err := c.authService.CurrentUser(ctx)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	// Пустой ввод оставляет текущее значение
	name, err := c.io.ReadInput(fmt.Sprintf("Name [%s]: ", current.Name))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		name = current.Name
	}

	surname, err := c.io.ReadInput(fmt.Sprintf("Surname [%s]: ", current.Surname))
	if err != nil {
		return fmt.Errorf("failed to read surname: %w", err)
	}
	if surname == "" {
		surname = current.Surname
	}

	email, err := c.io.ReadInput(fmt.Sprintf("Email [%s]: ", current.Email))
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if email == "" {
		email = current.Email
	} else if err := validation.ValidateEmail(email); err != nil {
		return fmt.Errorf("invalid email: %w", err)
	}

	description, err := c.io.ReadInput(fmt.Sprintf("About [%s]: ", current.Description))
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if description == "" {
		description = current.Description
	}

	updated, err := c.apiClient.UpdateUser(ctx, current.ID, pkgapi.UpdateUserRequest{
		Name:        name,
		Surname:     surname,
		Email:       email,
		Description: description,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	// Кешированный снимок профиля обновляется вместе с сервером
	if err := c.sessions.SetSession(ctx, c.sessions.Token(), updated); err != nil {
		return err
	}

	c.io.Println("✓ Profile updated!")
	c.io.Printf("%s %s (%s) %s\n", updated.Name, updated.Surname, updated.Login, updated.Email)

	return nil
}
