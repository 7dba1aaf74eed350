package usecase

import (
	"context"

	gcal "google.golang.org/api/calendar/v3"

	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}

// Mock backend for testing. Each method records its route so tests can
// assert mutation routing, and returns the configured response or error.
type mockBackend struct {
	calls []string

	listResp *calendarapi.EventsResponse
	listErr  error

	sources    []model.CalendarSource
	sourcesErr error

	createdLocal *model.CalendarEvent
	googleID     string
	watch        *calendarapi.WatchInfo

	err error // shared error for mutation routes
}

func (m *mockBackend) record(route string) { m.calls = append(m.calls, route) }

func (m *mockBackend) ListEvents(ctx context.Context, sources []string) (*calendarapi.EventsResponse, error) {
	m.record("list_events")
	if m.listErr != nil {
		return nil, m.listErr
	}
	if m.listResp != nil {
		return m.listResp, nil
	}
	return &calendarapi.EventsResponse{}, nil
}

func (m *mockBackend) ListSources(ctx context.Context) ([]model.CalendarSource, error) {
	m.record("list_sources")
	return m.sources, m.sourcesErr
}

func (m *mockBackend) CreateLocalEvent(ctx context.Context, ev model.CalendarEvent) (*model.CalendarEvent, error) {
	m.record("create_local")
	return m.createdLocal, m.err
}

func (m *mockBackend) UpdateLocalEvent(ctx context.Context, id string, ev model.CalendarEvent) error {
	m.record("update_local")
	return m.err
}

func (m *mockBackend) DeleteLocalEvent(ctx context.Context, id string) error {
	m.record("delete_local")
	return m.err
}

func (m *mockBackend) RespondToInvite(ctx context.Context, id string, status model.InviteStatus) error {
	m.record("respond")
	return m.err
}

func (m *mockBackend) AddGoogleEvent(ctx context.Context, payload *gcal.Event) (string, error) {
	m.record("add_google")
	return m.googleID, m.err
}

func (m *mockBackend) UpdateGoogleEvent(ctx context.Context, id string, payload *gcal.Event) error {
	m.record("update_google")
	return m.err
}

func (m *mockBackend) DeleteGoogleEvent(ctx context.Context, id string) error {
	m.record("delete_google")
	return m.err
}

func (m *mockBackend) RegisterWatch(ctx context.Context, webhookURL string) (*calendarapi.WatchInfo, error) {
	m.record("register_watch")
	return m.watch, m.err
}

func (m *mockBackend) ConnectApple(ctx context.Context, creds calendarapi.AppleCredentials) error {
	m.record("connect_apple")
	return m.err
}

func (m *mockBackend) SyncApple(ctx context.Context, req calendarapi.AppleSyncRequest) error {
	m.record("sync_apple")
	return m.err
}

func (m *mockBackend) CreateAppleEvent(ctx context.Context, ev model.CalendarEvent) error {
	m.record("create_apple")
	return m.err
}

func (m *mockBackend) UpdateAppleEvent(ctx context.Context, id string, ev model.CalendarEvent) error {
	m.record("update_apple")
	return m.err
}

func (m *mockBackend) DeleteAppleEvent(ctx context.Context, id string) error {
	m.record("delete_apple")
	return m.err
}

func (m *mockBackend) called(route string) bool {
	for _, c := range m.calls {
		if c == route {
			return true
		}
	}
	return false
}
