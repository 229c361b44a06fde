package cli

import (
	"github.com/spf13/cobra"
)

func (c *Cli) feedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "feed",
		Short: "Show events you participate in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFeed(cmd)
		},
	}
}

func (c *Cli) runFeed(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteFeed); err != nil {
		return err
	}

	// id пользователя резолвится заново при каждом запросе
	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	events, err := c.apiClient.JoinedEvents(ctx, userID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	if len(events) == 0 {
		c.io.Println("Your feed is empty. Join an event with 'huddle events join <id>'.")
		return nil
	}

	c.io.Printf("=== Feed (%d events) ===\n", len(events))
	for _, event := range events {
		c.io.Printf("[%d] %s — %s %s (%s)\n", event.ID, event.Title, event.Date, event.Time, event.Visibility)
		if event.Description != "" {
			c.io.Printf("    %s\n", event.Description)
		}
	}

	return nil
}
