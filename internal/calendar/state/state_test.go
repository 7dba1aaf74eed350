package state_test

import (
	"testing"

	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/model"
)

func event(id string) model.CalendarEvent {
	return model.CalendarEvent{
		ID:             id,
		Title:          "Event " + id,
		StartTime:      "2024-01-01T10:00:00Z",
		EndTime:        "2024-01-01T11:00:00Z",
		CalendarSource: model.SourceLocal,
	}
}

func TestContainer(t *testing.T) {
	t.Run("refresh replaces wholesale", func(t *testing.T) {
		c := state.NewContainer()

		seq := c.BeginRefresh()
		if !c.Snapshot().Loading {
			t.Error("expected loading during refresh")
		}
		if !c.CompleteRefresh(seq, []model.CalendarEvent{event("a"), event("b")}, true, 2) {
			t.Fatal("expected completion to land")
		}

		snap := c.Snapshot()
		if snap.Loading {
			t.Error("expected loading cleared")
		}
		if len(snap.Events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(snap.Events))
		}
		if !snap.AppleConnected {
			t.Error("expected apple connected flag carried through")
		}
		if snap.Dropped != 2 {
			t.Errorf("expected dropped count 2, got %d", snap.Dropped)
		}
		if snap.LastSynced.IsZero() {
			t.Error("expected last synced timestamp")
		}

		seq = c.BeginRefresh()
		c.CompleteRefresh(seq, []model.CalendarEvent{event("c")}, true, 0)
		snap = c.Snapshot()
		if len(snap.Events) != 1 || snap.Events[0].ID != "c" {
			t.Errorf("expected wholesale replace, got %+v", snap.Events)
		}
	})

	t.Run("stale completion loses to newer refresh", func(t *testing.T) {
		c := state.NewContainer()

		slow := c.BeginRefresh()
		fast := c.BeginRefresh()
		if !c.CompleteRefresh(fast, []model.CalendarEvent{event("new")}, false, 0) {
			t.Fatal("expected newer refresh to land")
		}
		if c.CompleteRefresh(slow, []model.CalendarEvent{event("old")}, false, 0) {
			t.Error("expected older refresh to be rejected")
		}

		snap := c.Snapshot()
		if len(snap.Events) != 1 || snap.Events[0].ID != "new" {
			t.Errorf("expected newer result kept, got %+v", snap.Events)
		}
	})

	t.Run("optimistic prepend fences in-flight refresh", func(t *testing.T) {
		c := state.NewContainer()

		seed := c.BeginRefresh()
		c.CompleteRefresh(seed, []model.CalendarEvent{event("a")}, false, 0)

		inflight := c.BeginRefresh()
		c.PrependOptimistic(event("optimistic"))

		if c.CompleteRefresh(inflight, []model.CalendarEvent{event("a")}, false, 0) {
			t.Error("fenced refresh should not land")
		}

		snap := c.Snapshot()
		if len(snap.Events) != 2 || snap.Events[0].ID != "optimistic" {
			t.Errorf("expected optimistic event at head, got %+v", snap.Events)
		}
		if snap.Loading {
			t.Error("rejected completion should still clear loading")
		}

		// A refresh issued after the prepend lands normally.
		after := c.BeginRefresh()
		if !c.CompleteRefresh(after, []model.CalendarEvent{event("fresh")}, false, 0) {
			t.Error("post-fence refresh should land")
		}
	})

	t.Run("abort clears loading", func(t *testing.T) {
		c := state.NewContainer()
		seq := c.BeginRefresh()
		c.AbortRefresh(seq)
		if c.Snapshot().Loading {
			t.Error("expected loading cleared after abort")
		}
	})

	t.Run("replace and remove", func(t *testing.T) {
		c := state.NewContainer()
		seq := c.BeginRefresh()
		c.CompleteRefresh(seq, []model.CalendarEvent{event("a"), event("b")}, false, 0)

		updated := event("a")
		updated.Title = "Renamed"
		if !c.ReplaceOptimistic("a", updated) {
			t.Fatal("expected replace to find the event")
		}
		got, ok := c.FindEvent("a")
		if !ok || got.Title != "Renamed" {
			t.Errorf("expected renamed event, got %+v", got)
		}

		if !c.RemoveOptimistic("b") {
			t.Fatal("expected remove to find the event")
		}
		if _, ok := c.FindEvent("b"); ok {
			t.Error("expected b gone")
		}
		if c.RemoveOptimistic("missing") {
			t.Error("expected remove of unknown id to report false")
		}
	})

	t.Run("source selection", func(t *testing.T) {
		c := state.NewContainer()

		selected := c.SelectedSources()
		if len(selected) != 4 {
			t.Fatalf("expected all sources selected by default, got %v", selected)
		}

		if on := c.ToggleSource(model.SourceApple); on {
			t.Error("expected apple toggled off")
		}
		for _, s := range c.SelectedSources() {
			if s == model.SourceApple {
				t.Error("apple should be filtered out")
			}
		}
		if on := c.ToggleSource(model.SourceApple); !on {
			t.Error("expected apple toggled back on")
		}

		c.SetSelectedSources([]model.Source{model.SourceLocal})
		selected = c.SelectedSources()
		if len(selected) != 1 || selected[0] != model.SourceLocal {
			t.Errorf("expected only local, got %v", selected)
		}
	})

	t.Run("subscribe signals on change", func(t *testing.T) {
		c := state.NewContainer()
		ch := c.Subscribe()

		c.PrependOptimistic(event("x"))
		select {
		case <-ch:
		default:
			t.Error("expected a change signal")
		}

		// Signals coalesce instead of blocking the writer.
		c.PrependOptimistic(event("y"))
		c.PrependOptimistic(event("z"))
	})

	t.Run("unsubscribe stops signals", func(t *testing.T) {
		c := state.NewContainer()
		ch := c.Subscribe()
		c.Unsubscribe(ch)

		c.PrependOptimistic(event("x"))
		select {
		case <-ch:
			t.Error("unexpected signal after unsubscribe")
		default:
		}
	})

	t.Run("snapshot is a copy", func(t *testing.T) {
		c := state.NewContainer()
		seq := c.BeginRefresh()
		c.CompleteRefresh(seq, []model.CalendarEvent{event("a")}, false, 0)

		snap := c.Snapshot()
		snap.Events[0].Title = "mutated"

		got, _ := c.FindEvent("a")
		if got.Title == "mutated" {
			t.Error("snapshot mutation leaked into container")
		}
	})
}
