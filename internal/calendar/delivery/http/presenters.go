package http

import (
	"time"

	"unified-calendar/internal/calendar"
	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

// --- Request DTOs ---

type eventReq struct {
	Title       string `json:"title"           binding:"required,min=1,max=255"`
	Description string `json:"description"     binding:"max=2000"`
	Location    string `json:"location"        binding:"max=512"`
	StartTime   string `json:"start_time"      binding:"required"`
	EndTime     string `json:"end_time"        binding:"required"`
	Source      string `json:"calendar_source" binding:"omitempty,oneof=google apple microsoft outlook local"`
}

func (r eventReq) toInput() calendar.EventInput {
	return calendar.EventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Source:      model.Source(r.Source),
	}
}

type respondReq struct {
	Status string `json:"status" binding:"required"`
}

func (r respondReq) status() model.InviteStatus {
	return model.InviteStatus(r.Status)
}

type appleConnectReq struct {
	AppleID             string `json:"appleId"             binding:"required"`
	AppSpecificPassword string `json:"appSpecificPassword" binding:"required"`
}

func (r appleConnectReq) toInput() calendar.AppleConnectInput {
	return calendar.AppleConnectInput{
		AppleID:             r.AppleID,
		AppSpecificPassword: r.AppSpecificPassword,
	}
}

type appleSyncReq struct {
	SyncDirection string `json:"sync_direction"  binding:"omitempty,oneof=both to_apple from_apple"`
	DateRangeDays int    `json:"date_range_days" binding:"omitempty,min=1,max=365"`
}

func (r appleSyncReq) toInput() calendar.AppleSyncInput {
	return calendar.AppleSyncInput{
		SyncDirection: r.SyncDirection,
		DateRangeDays: r.DateRangeDays,
	}
}

type watchReq struct {
	WebhookURL string `json:"webhook_url" binding:"required,url"`
}

type pollingReq struct {
	IntervalSeconds int `json:"interval_seconds" binding:"omitempty,min=5"`
}

// --- Response DTOs ---

type snapshotResp struct {
	Events         []model.CalendarEvent `json:"events"`
	Selected       []model.Source        `json:"selected_sources"`
	Loading        bool                  `json:"loading"`
	Polling        bool                  `json:"polling"`
	AppleConnected bool                  `json:"apple_connected"`
	LastSynced     string                `json:"last_synced,omitempty"`
	DroppedEvents  int                   `json:"dropped_events,omitempty"`
}

func newSnapshotResp(snap state.Snapshot) snapshotResp {
	resp := snapshotResp{
		Events:         snap.Events,
		Selected:       snap.Selected,
		Loading:        snap.Loading,
		Polling:        snap.Polling,
		AppleConnected: snap.AppleConnected,
		DroppedEvents:  snap.Dropped,
	}
	if resp.Events == nil {
		resp.Events = []model.CalendarEvent{}
	}
	if !snap.LastSynced.IsZero() {
		resp.LastSynced = snap.LastSynced.UTC().Format(time.RFC3339)
	}
	return resp
}

type eventResp struct {
	Event model.CalendarEvent `json:"event"`
}

type sourcesResp struct {
	Sources  []model.CalendarSource `json:"sources"`
	Selected []model.Source         `json:"selected_sources"`
}

func newSourcesResp(sources []model.CalendarSource, selected []model.Source) sourcesResp {
	if sources == nil {
		sources = []model.CalendarSource{}
	}
	return sourcesResp{Sources: sources, Selected: selected}
}

type watchResp struct {
	ChannelID  string `json:"channel_id"`
	ResourceID string `json:"resource_id"`
	Expiration string `json:"expiration,omitempty"`
}

func newWatchResp(info *calendarapi.WatchInfo) watchResp {
	return watchResp{
		ChannelID:  info.ChannelID,
		ResourceID: info.ResourceID,
		Expiration: info.Expiration,
	}
}
