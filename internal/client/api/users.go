package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/avdeenkov/huddle/pkg/api"
)

// GetUser возвращает профиль пользователя по id
func (c *Client) GetUser(ctx context.Context, id int64) (*api.User, error) {
	var resp api.User
	path := fmt.Sprintf("/users/%d", id)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("get user request failed: %w", err)
	}
	return &resp, nil
}

// UpdateUser обновляет профиль пользователя
func (c *Client) UpdateUser(ctx context.Context, id int64, req api.UpdateUserRequest) (*api.User, error) {
	var resp api.User
	path := fmt.Sprintf("/users/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update user request failed: %w", err)
	}
	return &resp, nil
}

// ListUsers возвращает всех пользователей
func (c *Client) ListUsers(ctx context.Context) ([]api.User, error) {
	var resp []api.User
	if err := c.doAuthRequest(ctx, "GET", "/users", nil, &resp); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}
	return resp, nil
}

// SearchUsers ищет пользователей по строке запроса
func (c *Client) SearchUsers(ctx context.Context, query string) ([]api.User, error) {
	var resp []api.User
	path := "/users/search?query=" + url.QueryEscape(query)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("search users request failed: %w", err)
	}
	return resp, nil
}
