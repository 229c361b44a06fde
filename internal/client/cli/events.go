package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) eventsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage events",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List events you own",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runEventsList(cmd)
			},
		},
		&cobra.Command{
			Use:   "create",
			Short: "Create a new event",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runEventsCreate(cmd)
			},
		},
		&cobra.Command{
			Use:   "update <event-id>",
			Short: "Update an event you own",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runEventsUpdate(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "join <event-id>",
			Short: "Join an event",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runEventsJoin(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "delete <event-id>",
			Short: "Delete an event you own",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runEventsDelete(cmd, args[0])
			},
		},
	)

	return cmd
}

func (c *Cli) runEventsList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteEvents); err != nil {
		return err
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	events, err := c.apiClient.EventsByOwner(ctx, pkgapi.OwnerTypeUser, userID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	if len(events) == 0 {
		c.io.Println("You own no events. Create one with 'huddle events create'.")
		return nil
	}

	c.io.Printf("=== Your events (%d) ===\n", len(events))
	for _, event := range events {
		c.io.Printf("[%d] %s — %s %s (%s)\n", event.ID, event.Title, event.Date, event.Time, event.Visibility)
	}

	return nil
}

func (c *Cli) runEventsCreate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteEvents); err != nil {
		return err
	}

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}

	timeOfDay, err := c.io.ReadInput("Time (HH:MM): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}

	visibility, err := c.io.ReadInput("Visibility (EVERYONE/FRIENDS/GROUP): ")
	if err != nil {
		return fmt.Errorf("failed to read visibility: %w", err)
	}
	if visibility == "" {
		visibility = pkgapi.VisibilityEveryone
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	event, err := c.apiClient.CreateEvent(ctx, pkgapi.EventRequest{
		Title:       title,
		Description: description,
		Visibility:  visibility,
		Time:        timeOfDay,
		Date:        date,
		OwnerID:     userID,
		OwnerType:   pkgapi.OwnerTypeUser,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Event created!")
	c.io.Printf("[%d] %s — %s %s\n", event.ID, event.Title, event.Date, event.Time)

	return nil
}

func (c *Cli) runEventsUpdate(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteEvents); err != nil {
		return err
	}

	eventID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", rawID)
	}

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if title == "" {
		return fmt.Errorf("title cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	date, err := c.io.ReadInput("Date (YYYY-MM-DD): ")
	if err != nil {
		return fmt.Errorf("failed to read date: %w", err)
	}

	timeOfDay, err := c.io.ReadInput("Time (HH:MM): ")
	if err != nil {
		return fmt.Errorf("failed to read time: %w", err)
	}

	visibility, err := c.io.ReadInput("Visibility (EVERYONE/FRIENDS/GROUP): ")
	if err != nil {
		return fmt.Errorf("failed to read visibility: %w", err)
	}
	if visibility == "" {
		visibility = pkgapi.VisibilityEveryone
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	event, err := c.apiClient.UpdateEvent(ctx, eventID, pkgapi.EventRequest{
		Title:       title,
		Description: description,
		Visibility:  visibility,
		Time:        timeOfDay,
		Date:        date,
		OwnerID:     userID,
		OwnerType:   pkgapi.OwnerTypeUser,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Event updated!")
	c.io.Printf("[%d] %s — %s %s\n", event.ID, event.Title, event.Date, event.Time)

	return nil
}

func (c *Cli) runEventsJoin(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteEvents); err != nil {
		return err
	}

	eventID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", rawID)
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	err = c.apiClient.JoinEvent(ctx, pkgapi.JoinEventRequest{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Joined the event!")
	return nil
}

func (c *Cli) runEventsDelete(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteEvents); err != nil {
		return err
	}

	eventID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid event id %q", rawID)
	}

	if err := c.apiClient.DeleteEvent(ctx, eventID); err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Event deleted.")
	return nil
}
