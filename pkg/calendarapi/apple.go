package calendarapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"unified-calendar/internal/model"
)

// ConnectApple links an Apple Calendar account via
// POST /api/apple/calendar/connect.
func (c *Client) ConnectApple(ctx context.Context, creds AppleCredentials) error {
	if err := c.do(ctx, http.MethodPost, "/api/apple/calendar/connect", nil, creds, nil); err != nil {
		return fmt.Errorf("failed to connect apple calendar: %w", err)
	}
	return nil
}

// SyncApple triggers a server-side Apple sync via
// POST /api/apple/calendar/sync.
func (c *Client) SyncApple(ctx context.Context, req AppleSyncRequest) error {
	if err := c.do(ctx, http.MethodPost, "/api/apple/calendar/sync", nil, req, nil); err != nil {
		return fmt.Errorf("failed to sync apple calendar: %w", err)
	}
	return nil
}

// CreateAppleEvent creates an event via POST /api/apple/calendar/events.
func (c *Client) CreateAppleEvent(ctx context.Context, ev model.CalendarEvent) error {
	if err := c.do(ctx, http.MethodPost, "/api/apple/calendar/events", nil, ev, nil); err != nil {
		return fmt.Errorf("failed to create apple event: %w", err)
	}
	return nil
}

// UpdateAppleEvent updates an event via PUT /api/apple/calendar/events/{id}.
func (c *Client) UpdateAppleEvent(ctx context.Context, id string, ev model.CalendarEvent) error {
	path := "/api/apple/calendar/events/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, ev, nil); err != nil {
		return fmt.Errorf("failed to update apple event: %w", err)
	}
	return nil
}

// DeleteAppleEvent deletes an event via DELETE /api/apple/calendar/events/{id}.
func (c *Client) DeleteAppleEvent(ctx context.Context, id string) error {
	path := "/api/apple/calendar/events/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete apple event: %w", err)
	}
	return nil
}
