package api

import (
	"context"
	"fmt"

	"github.com/avdeenkov/huddle/pkg/api"
)

// GetFriends возвращает список друзей пользователя
func (c *Client) GetFriends(ctx context.Context, userID int64) (*api.FriendsResponse, error) {
	var resp api.FriendsResponse
	path := fmt.Sprintf("/users/%d/friends", userID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get friends request failed: %w", err)
	}
	return &resp, nil
}

// SendFriendRequest отправляет заявку в друзья
func (c *Client) SendFriendRequest(ctx context.Context, req api.FriendRequest) error {
	if req.Status == "" {
		req.Status = "PENDING"
	}
	if err := c.doAuthRequest(ctx, "POST", "/users/friends/requests", req, nil); err != nil {
		return fmt.Errorf("friend request failed: %w", err)
	}
	return nil
}
