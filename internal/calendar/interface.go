package calendar

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

// UseCase defines the business logic interface for the calendar domain.
type UseCase interface {
	// Refresh fetches events for the selected sources, normalizes them
	// and replaces the shared state.
	Refresh(ctx context.Context) error

	// FetchSources loads calendar source metadata into the state.
	FetchSources(ctx context.Context) ([]model.CalendarSource, error)

	// Snapshot returns the current merged calendar state.
	Snapshot() state.Snapshot

	// ToggleSource flips one source in the filter and refreshes.
	ToggleSource(ctx context.Context, s model.Source) error

	// CreateEvent routes a create to the owning provider, inserts the
	// event optimistically and refreshes in the background.
	CreateEvent(ctx context.Context, input EventInput) (model.CalendarEvent, error)

	// UpdateEvent routes an update by the event's calendar source.
	UpdateEvent(ctx context.Context, id string, input EventInput) error

	// DeleteEvent routes a delete by the event's calendar source.
	DeleteEvent(ctx context.Context, id string) error

	// RespondToInvite records an invitation response.
	RespondToInvite(ctx context.Context, id string, status model.InviteStatus) error

	// ConnectApple links an Apple account and triggers an initial sync.
	ConnectApple(ctx context.Context, input AppleConnectInput) error

	// SyncApple triggers a server-side Apple sync.
	SyncApple(ctx context.Context, input AppleSyncInput) error

	// SetupGoogleWatch registers a push channel for near-realtime updates.
	SetupGoogleWatch(ctx context.Context, webhookURL string) (*calendarapi.WatchInfo, error)

	// StartPolling begins background refreshes. Idempotent.
	StartPolling(ctx context.Context, intervalSeconds int) error

	// StopPolling halts background refreshes. Idempotent.
	StopPolling()
}

// Backend is the slice of the calendar API client the use case needs.
// Declared here so tests can substitute a fake.
type Backend interface {
	ListEvents(ctx context.Context, sources []string) (*calendarapi.EventsResponse, error)
	ListSources(ctx context.Context) ([]model.CalendarSource, error)

	CreateLocalEvent(ctx context.Context, ev model.CalendarEvent) (*model.CalendarEvent, error)
	UpdateLocalEvent(ctx context.Context, id string, ev model.CalendarEvent) error
	DeleteLocalEvent(ctx context.Context, id string) error
	RespondToInvite(ctx context.Context, id string, status model.InviteStatus) error

	AddGoogleEvent(ctx context.Context, payload *gcal.Event) (string, error)
	UpdateGoogleEvent(ctx context.Context, id string, payload *gcal.Event) error
	DeleteGoogleEvent(ctx context.Context, id string) error
	RegisterWatch(ctx context.Context, webhookURL string) (*calendarapi.WatchInfo, error)

	ConnectApple(ctx context.Context, creds calendarapi.AppleCredentials) error
	SyncApple(ctx context.Context, req calendarapi.AppleSyncRequest) error
	CreateAppleEvent(ctx context.Context, ev model.CalendarEvent) error
	UpdateAppleEvent(ctx context.Context, id string, ev model.CalendarEvent) error
	DeleteAppleEvent(ctx context.Context, id string) error
}
