package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

func canonicalEvent(id string, source model.Source) model.CalendarEvent {
	return model.CalendarEvent{
		ID:             id,
		Title:          "Event " + id,
		StartTime:      "2024-01-01T10:00:00Z",
		EndTime:        "2024-01-01T11:00:00Z",
		CalendarSource: source,
	}
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()

	t.Run("split shape aggregates in fixed order", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				LocalEvents: []model.CalendarEvent{canonicalEvent("l1", model.SourceLocal)},
				GoogleEvents: []json.RawMessage{
					json.RawMessage(`{"id": "g1", "summary": "Standup", "start": {"dateTime": "2024-01-01T09:00:00Z"}, "end": {"dateTime": "2024-01-01T09:15:00Z"}}`),
				},
				AppleEvents:     []model.CalendarEvent{canonicalEvent("a1", model.SourceApple)},
				MicrosoftEvents: []model.CalendarEvent{canonicalEvent("m1", model.SourceMicrosoft)},
				AppleConnected:  true,
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		snap := uc.Snapshot()
		if len(snap.Events) != 4 {
			t.Fatalf("expected 4 events, got %d", len(snap.Events))
		}
		wantOrder := []string{"l1", "g1", "a1", "m1"}
		for i, want := range wantOrder {
			if snap.Events[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, snap.Events[i].ID)
			}
		}
		if !snap.AppleConnected {
			t.Error("expected apple connected flag")
		}
		if snap.Events[1].Title != "Standup" {
			t.Errorf("raw google item not normalized: %+v", snap.Events[1])
		}
	})

	t.Run("combined shape", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				Events: []json.RawMessage{
					json.RawMessage(`{"id": "c1", "title": "Canonical", "start_time": "2024-01-01T10:00:00Z", "end_time": "2024-01-01T11:00:00Z", "calendar_source": "google"}`),
					json.RawMessage(`{"id": "c2", "summary": "Raw", "start": {"dateTime": "2024-01-01T12:00:00Z"}, "end": {"dateTime": "2024-01-01T13:00:00Z"}}`),
				},
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		snap := uc.Snapshot()
		if len(snap.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(snap.Events))
		}
		if snap.Events[0].CalendarSource != model.SourceGoogle {
			t.Errorf("self-identified source lost: %s", snap.Events[0].CalendarSource)
		}
		if snap.Events[1].CalendarSource != model.SourceGoogle {
			t.Errorf("untagged combined item should default to google, got %s", snap.Events[1].CalendarSource)
		}
	})

	t.Run("apple events imply connected account", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				AppleEvents:    []model.CalendarEvent{canonicalEvent("a1", model.SourceApple)},
				AppleConnected: false,
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if !uc.Snapshot().AppleConnected {
			t.Error("expected connected flag when apple events are present")
		}
	})

	t.Run("no apple signal leaves flag clear", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				LocalEvents: []model.CalendarEvent{canonicalEvent("l1", model.SourceLocal)},
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}
		if uc.Snapshot().AppleConnected {
			t.Error("connected flag set without any apple signal")
		}
	})

	t.Run("malformed events are dropped and counted", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				LocalEvents: []model.CalendarEvent{
					canonicalEvent("ok", model.SourceLocal),
					{ID: "bad", Title: "No times"},
				},
				GoogleEvents: []json.RawMessage{
					json.RawMessage(`{"id": "g-bad", "summary": "No start", "end": {"dateTime": "2024-01-01T11:00:00Z"}}`),
				},
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		snap := uc.Snapshot()
		if len(snap.Events) != 1 || snap.Events[0].ID != "ok" {
			t.Errorf("expected only the valid event, got %+v", snap.Events)
		}
		if snap.Dropped != 2 {
			t.Errorf("expected 2 dropped, got %d", snap.Dropped)
		}
	})

	t.Run("classification runs during aggregation", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				GoogleEvents: []json.RawMessage{
					json.RawMessage(`{
						"id": "inv",
						"summary": "Invite",
						"start": {"dateTime": "2024-01-01T10:00:00Z"},
						"end": {"dateTime": "2024-01-01T11:00:00Z"},
						"attendees": [{"email": "me@example.com", "responseStatus": "needsAction"}]
					}`),
				},
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("refresh: %v", err)
		}

		snap := uc.Snapshot()
		if len(snap.Events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(snap.Events))
		}
		if !bool(snap.Events[0].IsInvite) || snap.Events[0].InviteStatus != model.InvitePending {
			t.Errorf("expected pending invite, got %+v", snap.Events[0])
		}
	})

	t.Run("fetch failure serves last known good", func(t *testing.T) {
		api := &mockBackend{
			listResp: &calendarapi.EventsResponse{
				LocalEvents: []model.CalendarEvent{canonicalEvent("cached", model.SourceLocal)},
			},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("seed refresh: %v", err)
		}

		api.listErr = errors.New("backend down")
		if err := uc.Refresh(ctx); err != nil {
			t.Fatalf("degraded refresh should not error: %v", err)
		}

		snap := uc.Snapshot()
		if len(snap.Events) != 1 || snap.Events[0].ID != "cached" {
			t.Errorf("expected cached events, got %+v", snap.Events)
		}
		if snap.Loading {
			t.Error("loading should be cleared")
		}
	})

	t.Run("fetch failure without cache propagates", func(t *testing.T) {
		api := &mockBackend{listErr: errors.New("backend down")}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.Refresh(ctx); err == nil {
			t.Fatal("expected error with no cached response")
		}
		if uc.Snapshot().Loading {
			t.Error("failed refresh should clear loading")
		}
	})

	t.Run("toggle source refreshes with new filter", func(t *testing.T) {
		api := &mockBackend{}
		uc := New(&mockLogger{}, api, state.NewContainer())

		if err := uc.ToggleSource(ctx, model.SourceApple); err != nil {
			t.Fatalf("toggle: %v", err)
		}
		if !api.called("list_events") {
			t.Error("expected a refresh after toggle")
		}
		for _, s := range uc.Snapshot().Selected {
			if s == model.SourceApple {
				t.Error("apple should be deselected")
			}
		}
	})

	t.Run("fetch sources stores metadata", func(t *testing.T) {
		api := &mockBackend{
			sources: []model.CalendarSource{{ID: "cal-1", Name: "Personal", Type: "google"}},
		}
		uc := New(&mockLogger{}, api, state.NewContainer())

		sources, err := uc.FetchSources(ctx)
		if err != nil {
			t.Fatalf("fetch sources: %v", err)
		}
		if len(sources) != 1 || sources[0].ID != "cal-1" {
			t.Errorf("unexpected sources: %+v", sources)
		}
		snap := uc.Snapshot()
		if len(snap.Sources) != 1 {
			t.Errorf("sources not stored in state: %+v", snap.Sources)
		}
	})
}

func TestPolling(t *testing.T) {
	ctx := context.Background()

	t.Run("start is idempotent and refreshes immediately", func(t *testing.T) {
		api := &mockBackend{}
		uc := New(&mockLogger{}, api, state.NewContainer())
		defer uc.StopPolling()

		if err := uc.StartPolling(ctx, 3600); err != nil {
			t.Fatalf("start: %v", err)
		}
		if !uc.Snapshot().Polling {
			t.Error("expected polling flag set")
		}
		if !api.called("list_events") {
			t.Error("expected an immediate refresh on start")
		}

		calls := len(api.calls)
		if err := uc.StartPolling(ctx, 3600); err != nil {
			t.Fatalf("second start: %v", err)
		}
		if len(api.calls) != calls {
			t.Error("second start should be a no-op")
		}
	})

	t.Run("stop is idempotent", func(t *testing.T) {
		uc := New(&mockLogger{}, &mockBackend{}, state.NewContainer())

		uc.StopPolling()
		if err := uc.StartPolling(ctx, 3600); err != nil {
			t.Fatalf("start: %v", err)
		}
		uc.StopPolling()
		uc.StopPolling()
		if uc.Snapshot().Polling {
			t.Error("expected polling flag cleared")
		}
	})
}
