package calendarapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"

	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

func TestClient(t *testing.T) {
	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})

	t.Run("ListEvents split shape with bearer", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/events" || r.Method != http.MethodGet {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			if r.Header.Get("Authorization") != "Bearer test-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if got := r.URL.Query().Get("calendar_sources"); got != "google,local" {
				t.Errorf("unexpected calendar_sources query: %s", got)
			}
			w.Write([]byte(`{
				"local_events": [{"id": "l1", "title": "Local", "start_time": "2024-01-01T10:00:00Z", "end_time": "2024-01-01T11:00:00Z", "calendar_source": "local"}],
				"google_events": [{"id": "g1", "summary": "Raw", "start": {"dateTime": "2024-01-02T10:00:00Z"}, "end": {"dateTime": "2024-01-02T11:00:00Z"}}],
				"apple_connected": true
			}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		resp, err := client.ListEvents(context.Background(), []string{"google", "local"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Combined() {
			t.Error("expected split shape, got combined")
		}
		if len(resp.LocalEvents) != 1 || resp.LocalEvents[0].ID != "l1" {
			t.Errorf("unexpected local events: %+v", resp.LocalEvents)
		}
		if len(resp.GoogleEvents) != 1 {
			t.Fatalf("expected 1 raw google event, got %d", len(resp.GoogleEvents))
		}
		if !resp.AppleConnected {
			t.Error("expected apple_connected flag")
		}
	})

	t.Run("ListEvents combined shape", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"events": [{"id": "e1", "summary": "Sync"}]}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		resp, err := client.ListEvents(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !resp.Combined() {
			t.Error("expected combined shape")
		}
		if len(resp.Events) != 1 {
			t.Errorf("expected 1 combined event, got %d", len(resp.Events))
		}
	})

	t.Run("missing token sends unauthenticated request", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "" {
				t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
			}
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "missing credentials"}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, nil)
		if _, err := client.ListEvents(context.Background(), nil); err == nil {
			t.Fatal("expected provider-side rejection to surface")
		}
	})

	t.Run("CreateLocalEvent wrapped response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/events" || r.Method != http.MethodPost {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var ev model.CalendarEvent
			json.NewDecoder(r.Body).Decode(&ev)
			if ev.Title != "Standup" {
				t.Errorf("unexpected payload title: %s", ev.Title)
			}
			w.Write([]byte(`{"event": {"id": "srv-1", "title": "Standup", "start_time": "2024-02-01T09:00:00Z", "end_time": "2024-02-01T09:15:00Z", "calendar_source": "local"}}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		created, err := client.CreateLocalEvent(context.Background(), model.CalendarEvent{
			Title:     "Standup",
			StartTime: "2024-02-01T09:00:00Z",
			EndTime:   "2024-02-01T09:15:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "srv-1" {
			t.Errorf("expected server id srv-1, got %s", created.ID)
		}
	})

	t.Run("CreateLocalEvent bare response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "srv-2", "title": "Bare", "start_time": "2024-02-01T09:00:00Z", "end_time": "2024-02-01T10:00:00Z", "calendar_source": "local"}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		created, err := client.CreateLocalEvent(context.Background(), model.CalendarEvent{Title: "Bare"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "srv-2" {
			t.Errorf("expected server id srv-2, got %s", created.ID)
		}
	})

	t.Run("google routes", func(t *testing.T) {
		var gotPath, gotMethod string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath, gotMethod = r.URL.Path, r.Method
			switch {
			case r.URL.Path == "/api/google/add_event":
				var payload calendar.Event
				json.NewDecoder(r.Body).Decode(&payload)
				if payload.Summary != "Sync" {
					t.Errorf("expected provider summary field, got %q", payload.Summary)
				}
				w.Write([]byte(`{"id": "g-new"}`))
			default:
				w.Write([]byte(`{}`))
			}
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)

		id, err := client.AddGoogleEvent(context.Background(), &calendar.Event{
			Summary: "Sync",
			Start:   &calendar.EventDateTime{DateTime: "2024-01-01T10:00:00Z"},
			End:     &calendar.EventDateTime{DateTime: "2024-01-01T11:00:00Z"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "g-new" {
			t.Errorf("expected id g-new, got %s", id)
		}

		if err := client.DeleteGoogleEvent(context.Background(), "g-123"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/api/google/delete_event/g-123" || gotMethod != http.MethodDelete {
			t.Errorf("unexpected delete route: %s %s", gotMethod, gotPath)
		}
	})

	t.Run("RegisterWatch nested shape", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/google/watch" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			if body["webhook_url"] == "" {
				t.Error("expected webhook_url in watch request")
			}
			w.Write([]byte(`{"watch": {"id": "chan-1", "resourceId": "res-1", "expiration": "1700000000000"}}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		info, err := client.RegisterWatch(context.Background(), "https://example.com/google/notify")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.ChannelID != "chan-1" || info.ResourceID != "res-1" {
			t.Errorf("unexpected watch info: %+v", info)
		}
	})

	t.Run("apple routes", func(t *testing.T) {
		var paths []string
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			paths = append(paths, r.Method+" "+r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		ctx := context.Background()

		if err := client.ConnectApple(ctx, calendarapi.AppleCredentials{AppleID: "a@icloud.com", AppSpecificPassword: "pw"}); err != nil {
			t.Fatalf("connect: %v", err)
		}
		if err := client.SyncApple(ctx, calendarapi.AppleSyncRequest{SyncDirection: "from_apple", DateRangeDays: 30}); err != nil {
			t.Fatalf("sync: %v", err)
		}
		if err := client.UpdateAppleEvent(ctx, "a-1", model.CalendarEvent{Title: "Moved"}); err != nil {
			t.Fatalf("update: %v", err)
		}

		want := []string{
			"POST /api/apple/calendar/connect",
			"POST /api/apple/calendar/sync",
			"PUT /api/apple/calendar/events/a-1",
		}
		for i, w := range want {
			if paths[i] != w {
				t.Errorf("route %d: expected %s, got %s", i, w, paths[i])
			}
		}
	})

	t.Run("server error surfaces", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "boom"}`))
		}))
		defer ts.Close()

		client := calendarapi.New(ts.URL, tokens)
		if err := client.DeleteLocalEvent(context.Background(), "x"); err == nil {
			t.Fatal("expected error on 500")
		}
	})
}
