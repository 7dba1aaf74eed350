package calendarapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/api/calendar/v3"
)

// AddGoogleEvent creates an event through the backend's Google route.
// The payload is provider-shaped (summary/start/end objects); the
// server-assigned event id is returned when the backend supplies one.
func (c *Client) AddGoogleEvent(ctx context.Context, payload *calendar.Event) (string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/google/add_event", nil, payload, &raw); err != nil {
		return "", fmt.Errorf("failed to add google event: %w", err)
	}
	return decodeCreatedID(raw), nil
}

// UpdateGoogleEvent updates an event through PUT /api/google/update_event/{id}.
func (c *Client) UpdateGoogleEvent(ctx context.Context, id string, payload *calendar.Event) error {
	path := "/api/google/update_event/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, payload, nil); err != nil {
		return fmt.Errorf("failed to update google event: %w", err)
	}
	return nil
}

// DeleteGoogleEvent deletes an event through DELETE /api/google/delete_event/{id}.
func (c *Client) DeleteGoogleEvent(ctx context.Context, id string) error {
	path := "/api/google/delete_event/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete google event: %w", err)
	}
	return nil
}

// RegisterWatch registers a push-notification channel via
// POST /api/google/watch. Both known response shapes are handled.
func (c *Client) RegisterWatch(ctx context.Context, webhookURL string) (*WatchInfo, error) {
	body := map[string]string{"webhook_url": webhookURL}

	var resp struct {
		ChannelID  string `json:"channel_id"`
		ResourceID string `json:"resource_id"`
		Expiration string `json:"expiration"`
		Watch      *struct {
			ID         string `json:"id"`
			ResourceID string `json:"resourceId"`
			Expiration string `json:"expiration"`
		} `json:"watch"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/google/watch", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("failed to register google watch: %w", err)
	}

	info := &WatchInfo{
		ChannelID:  resp.ChannelID,
		ResourceID: resp.ResourceID,
		Expiration: resp.Expiration,
	}
	if resp.Watch != nil {
		if info.ChannelID == "" {
			info.ChannelID = resp.Watch.ID
		}
		if info.ResourceID == "" {
			info.ResourceID = resp.Watch.ResourceID
		}
		if info.Expiration == "" {
			info.Expiration = resp.Watch.Expiration
		}
	}
	return info, nil
}

// decodeCreatedID extracts the new event id from either {"id": ...}
// or {"event": {"id": ...}}. Empty when the backend omits it.
func decodeCreatedID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var resp struct {
		ID    string `json:"id"`
		Event *struct {
			ID string `json:"id"`
		} `json:"event"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return ""
	}
	if resp.ID != "" {
		return resp.ID
	}
	if resp.Event != nil {
		return resp.Event.ID
	}
	return ""
}
