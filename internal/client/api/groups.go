package api

import (
	"context"
	"fmt"

	"github.com/avdeenkov/huddle/pkg/api"
)

// ListGroups возвращает все группы
func (c *Client) ListGroups(ctx context.Context) ([]api.Group, error) {
	var resp []api.Group
	if err := c.doAuthRequest(ctx, "GET", "/groups", nil, &resp); err != nil {
		return nil, fmt.Errorf("list groups request failed: %w", err)
	}
	return resp, nil
}

// GetGroup возвращает группу по id
func (c *Client) GetGroup(ctx context.Context, id int64) (*api.Group, error) {
	var resp api.Group
	path := fmt.Sprintf("/groups/%d", id)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get group request failed: %w", err)
	}
	return &resp, nil
}

// GroupsByMember возвращает группы, в которых пользователь состоит
func (c *Client) GroupsByMember(ctx context.Context, userID int64) ([]api.Group, error) {
	var resp []api.Group
	path := fmt.Sprintf("/groups/%d/group", userID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("groups by member request failed: %w", err)
	}
	return resp, nil
}

// GroupsByOwner возвращает группы, созданные пользователем
func (c *Client) GroupsByOwner(ctx context.Context, userID int64) ([]api.Group, error) {
	var resp []api.Group
	path := fmt.Sprintf("/groups/%d/owner", userID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("groups by owner request failed: %w", err)
	}
	return resp, nil
}

// GroupMembers возвращает участников группы
func (c *Client) GroupMembers(ctx context.Context, groupID int64) ([]api.GroupMembership, error) {
	var resp []api.GroupMembership
	path := fmt.Sprintf("/groups/%d/member", groupID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("group members request failed: %w", err)
	}
	return resp, nil
}

// CreateGroup создает новую группу
func (c *Client) CreateGroup(ctx context.Context, req api.CreateGroupRequest) (*api.Group, error) {
	var resp api.Group
	if err := c.doAuthRequest(ctx, "POST", "/groups", req, &resp); err != nil {
		return nil, fmt.Errorf("create group request failed: %w", err)
	}
	return &resp, nil
}

// UpdateGroup обновляет группу
func (c *Client) UpdateGroup(ctx context.Context, id int64, req api.CreateGroupRequest) (*api.Group, error) {
	var resp api.Group
	path := fmt.Sprintf("/groups/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update group request failed: %w", err)
	}
	return &resp, nil
}
