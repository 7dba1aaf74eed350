package calendarapi

import (
	"encoding/json"

	"unified-calendar/internal/model"
)

// EventsResponse is the tagged union returned by GET /api/events. The
// backend answers with exactly one of two shapes:
//
//  1. a combined list under "events" (items may be raw provider
//     payloads or already canonical), or
//  2. separate per-provider lists.
//
// Google lists stay raw here; narrowing into the canonical model
// happens once, in the normalize package.
type EventsResponse struct {
	Events []json.RawMessage `json:"events"`

	LocalEvents     []model.CalendarEvent `json:"local_events"`
	GoogleEvents    []json.RawMessage     `json:"google_events"`
	AppleEvents     []model.CalendarEvent `json:"apple_events"`
	MicrosoftEvents []model.CalendarEvent `json:"microsoft_events"`

	AppleConnected bool `json:"apple_connected"`
}

// Combined reports whether the response used the single-list shape.
func (r *EventsResponse) Combined() bool {
	return r.Events != nil
}

// AppleCredentials is the body for POST /api/apple/calendar/connect.
type AppleCredentials struct {
	AppleID             string `json:"appleId"`
	AppSpecificPassword string `json:"appSpecificPassword"`
}

// AppleSyncRequest is the body for POST /api/apple/calendar/sync.
type AppleSyncRequest struct {
	SyncDirection string `json:"sync_direction"`
	DateRangeDays int    `json:"date_range_days"`
}

// WatchInfo describes a registered Google push channel.
type WatchInfo struct {
	ChannelID  string
	ResourceID string
	Expiration string
}
