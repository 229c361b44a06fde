package api

import (
	"context"
	"fmt"

	"github.com/avdeenkov/huddle/pkg/api"
)

// EventsByOwner возвращает мероприятия владельца (пользователя или группы)
func (c *Client) EventsByOwner(ctx context.Context, ownerType string, ownerID int64) ([]api.Event, error) {
	var resp []api.Event
	path := fmt.Sprintf("/events/%s/%d", ownerType, ownerID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("events by owner request failed: %w", err)
	}
	return resp, nil
}

// CreateEvent создает мероприятие
func (c *Client) CreateEvent(ctx context.Context, req api.EventRequest) (*api.Event, error) {
	var resp api.Event
	if err := c.doAuthRequest(ctx, "POST", "/events", req, &resp); err != nil {
		return nil, fmt.Errorf("create event request failed: %w", err)
	}
	return &resp, nil
}

// UpdateEvent обновляет мероприятие
func (c *Client) UpdateEvent(ctx context.Context, id int64, req api.EventRequest) (*api.Event, error) {
	var resp api.Event
	path := fmt.Sprintf("/events/%d", id)
	if err := c.doAuthRequest(ctx, "PUT", path, req, &resp); err != nil {
		return nil, fmt.Errorf("update event request failed: %w", err)
	}
	return &resp, nil
}

// DeleteEvent удаляет мероприятие
func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/events/%d", id)
	if err := c.doAuthRequest(ctx, "DELETE", path, nil, nil); err != nil {
		return fmt.Errorf("delete event request failed: %w", err)
	}
	return nil
}

// JoinEvent записывает пользователя участником мероприятия
func (c *Client) JoinEvent(ctx context.Context, req api.JoinEventRequest) error {
	if err := c.doAuthRequest(ctx, "POST", "/event-members", req, nil); err != nil {
		return fmt.Errorf("join event request failed: %w", err)
	}
	return nil
}

// JoinedEvents возвращает мероприятия, в которых пользователь участвует.
// Это и есть лента пользователя.
func (c *Client) JoinedEvents(ctx context.Context, userID int64) ([]api.Event, error) {
	var resp []api.Event
	path := fmt.Sprintf("/event-members/user/%d", userID)
	if err := c.doAuthRequest(ctx, "GET", path, nil, &resp); err != nil {
		return nil, fmt.Errorf("joined events request failed: %w", err)
	}
	return resp, nil
}
