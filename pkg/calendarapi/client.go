package calendarapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"unified-calendar/internal/model"
)

// Client is the HTTP wrapper for the unified calendar backend API.
// All requests carry a bearer token when one is resolvable; requests
// without a token are sent anyway and rejected server-side.
type Client struct {
	baseURL    string
	tokens     oauth2.TokenSource
	httpClient *http.Client
}

// New creates a backend API client. tokens may be nil, in which case
// every request goes out unauthenticated.
func New(baseURL string, tokens oauth2.TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     tokens,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// ListEvents fetches events for the enabled sources via GET /api/events.
func (c *Client) ListEvents(ctx context.Context, sources []string) (*EventsResponse, error) {
	query := url.Values{}
	query.Set("calendar_sources", strings.Join(sources, ","))

	var resp EventsResponse
	if err := c.do(ctx, http.MethodGet, "/api/events", query, nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return &resp, nil
}

// ListSources fetches calendar source metadata via GET /api/calendar-sources.
func (c *Client) ListSources(ctx context.Context) ([]model.CalendarSource, error) {
	var sources []model.CalendarSource
	if err := c.do(ctx, http.MethodGet, "/api/calendar-sources", nil, nil, &sources); err != nil {
		return nil, fmt.Errorf("failed to list calendar sources: %w", err)
	}
	return sources, nil
}

// CreateLocalEvent creates a local event via POST /api/events. The
// backend may wrap the created event in an "event" field or return it
// bare; both shapes are handled.
func (c *Client) CreateLocalEvent(ctx context.Context, ev model.CalendarEvent) (*model.CalendarEvent, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, ev, &raw); err != nil {
		return nil, fmt.Errorf("failed to create local event: %w", err)
	}
	return decodeCreatedEvent(raw)
}

// UpdateLocalEvent updates a local event via PUT /api/events/{id}.
func (c *Client) UpdateLocalEvent(ctx context.Context, id string, ev model.CalendarEvent) error {
	path := "/api/events/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodPut, path, nil, ev, nil); err != nil {
		return fmt.Errorf("failed to update local event: %w", err)
	}
	return nil
}

// DeleteLocalEvent deletes a local event via DELETE /api/events/{id}.
func (c *Client) DeleteLocalEvent(ctx context.Context, id string) error {
	path := "/api/events/" + url.PathEscape(id)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil, nil); err != nil {
		return fmt.Errorf("failed to delete local event: %w", err)
	}
	return nil
}

// RespondToInvite records an invitation response via
// PATCH /api/events/{id}/respond.
func (c *Client) RespondToInvite(ctx context.Context, id string, status model.InviteStatus) error {
	path := "/api/events/" + url.PathEscape(id) + "/respond"
	body := map[string]string{"status": string(status)}
	if err := c.do(ctx, http.MethodPatch, path, nil, body, nil); err != nil {
		return fmt.Errorf("failed to respond to invite: %w", err)
	}
	return nil
}

// do builds, authorizes and executes one request against the backend,
// decoding the JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call calendar API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("calendar API error %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode calendar API response: %w", err)
	}
	return nil
}

// authorize attaches the bearer token when one is available. A missing
// or unresolvable token is a lenient no-op, not an error.
func (c *Client) authorize(req *http.Request) {
	if c.tokens == nil {
		return
	}
	tok, err := c.tokens.Token()
	if err != nil || tok == nil || tok.AccessToken == "" {
		return
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
}

// decodeCreatedEvent handles both the wrapped ({"event": {...}}) and
// bare created-event response shapes.
func decodeCreatedEvent(raw json.RawMessage) (*model.CalendarEvent, error) {
	if len(raw) == 0 {
		return &model.CalendarEvent{}, nil
	}
	var wrapper struct {
		Event *model.CalendarEvent `json:"event"`
	}
	if err := json.Unmarshal(raw, &wrapper); err == nil && wrapper.Event != nil {
		return wrapper.Event, nil
	}
	var ev model.CalendarEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return nil, fmt.Errorf("failed to decode created event: %w", err)
	}
	return &ev, nil
}
