package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	pkgapi "github.com/avdeenkov/huddle/pkg/api"
)

func (c *Cli) groupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage groups",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List all groups",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsList(cmd)
			},
		},
		&cobra.Command{
			Use:   "mine",
			Short: "List groups you are a member of",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsMine(cmd)
			},
		},
		&cobra.Command{
			Use:   "show <group-id>",
			Short: "Show group details and members",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsShow(cmd, args[0])
			},
		},
		&cobra.Command{
			Use:   "create",
			Short: "Create a new group",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsCreate(cmd)
			},
		},
		&cobra.Command{
			Use:   "owned",
			Short: "List groups you created",
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsOwned(cmd)
			},
		},
		&cobra.Command{
			Use:   "edit <group-id>",
			Short: "Edit a group you created",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.runGroupsEdit(cmd, args[0])
			},
		},
	)

	return cmd
}

func (c *Cli) runGroupsList(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	groups, err := c.apiClient.ListGroups(ctx)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.printGroups(groups)
	return nil
}

func (c *Cli) runGroupsMine(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	groups, err := c.apiClient.GroupsByMember(ctx, userID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.printGroups(groups)
	return nil
}

func (c *Cli) runGroupsShow(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid group id %q", rawID)
	}

	group, err := c.apiClient.GetGroup(ctx, groupID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Printf("[%d] %s\n", group.ID, group.Name)
	if group.Description != "" {
		c.io.Printf("%s\n", group.Description)
	}
	c.io.Printf("Creator: user %d\n", group.CreatorUserID)

	members, err := c.apiClient.GroupMembers(ctx, groupID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Printf("Members (%d):\n", len(members))
	for _, m := range members {
		c.io.Printf("  user %d — %s\n", m.UserID, m.Role)
	}

	return nil
}

func (c *Cli) runGroupsCreate(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	name, err := c.io.ReadInput("Group name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		return fmt.Errorf("group name cannot be empty")
	}

	description, err := c.io.ReadInput("Description (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	group, err := c.apiClient.CreateGroup(ctx, pkgapi.CreateGroupRequest{
		Name:          name,
		Description:   description,
		CreatorUserID: userID,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Group created!")
	c.io.Printf("[%d] %s\n", group.ID, group.Name)

	return nil
}

func (c *Cli) runGroupsOwned(cmd *cobra.Command) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	userID, err := c.resolver.CurrentUserID(ctx)
	if err != nil {
		return err
	}

	groups, err := c.apiClient.GroupsByOwner(ctx, userID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.printGroups(groups)
	return nil
}

func (c *Cli) runGroupsEdit(cmd *cobra.Command, rawID string) error {
	ctx := cmd.Context()

	if err := c.requireRoute(RouteGroups); err != nil {
		return err
	}

	groupID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid group id %q", rawID)
	}

	group, err := c.apiClient.GetGroup(ctx, groupID)
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	// Пустой ввод оставляет текущее значение
	name, err := c.io.ReadInput(fmt.Sprintf("Group name [%s]: ", group.Name))
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	if name == "" {
		name = group.Name
	}

	description, err := c.io.ReadInput(fmt.Sprintf("Description [%s]: ", group.Description))
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}
	if description == "" {
		description = group.Description
	}

	updated, err := c.apiClient.UpdateGroup(ctx, groupID, pkgapi.CreateGroupRequest{
		Name:          name,
		Description:   description,
		CreatorUserID: group.CreatorUserID,
	})
	if err != nil {
		return c.handleAPIError(ctx, err)
	}

	c.io.Println("✓ Group updated!")
	c.io.Printf("[%d] %s\n", updated.ID, updated.Name)

	return nil
}

func (c *Cli) printGroups(groups []pkgapi.Group) {
	if len(groups) == 0 {
		c.io.Println("No groups found.")
		return
	}

	c.io.Printf("=== Groups (%d) ===\n", len(groups))
	for _, group := range groups {
		c.io.Printf("[%d] %s\n", group.ID, group.Name)
		if group.Description != "" {
			c.io.Printf("    %s\n", group.Description)
		}
	}
}
