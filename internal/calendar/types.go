package calendar

import "unified-calendar/internal/model"

// EventInput is the caller-supplied event payload for creates and
// updates. Times are ISO-8601 instants or bare dates for all-day events.
type EventInput struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Location    string       `json:"location"`
	StartTime   string       `json:"start_time"`
	EndTime     string       `json:"end_time"`
	Source      model.Source `json:"calendar_source"`
}

// AppleConnectInput carries the Apple account link credentials.
type AppleConnectInput struct {
	AppleID             string `json:"appleId"`
	AppSpecificPassword string `json:"appSpecificPassword"`
}

// AppleSyncInput configures a server-side Apple sync run.
type AppleSyncInput struct {
	SyncDirection string `json:"sync_direction"`
	DateRangeDays int    `json:"date_range_days"`
}
