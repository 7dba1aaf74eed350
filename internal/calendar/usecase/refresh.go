package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"unified-calendar/internal/calendar/normalize"
	"unified-calendar/internal/calendar/scheduler"
	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/model"
	"unified-calendar/pkg/calendarapi"
)

// Refresh fetches events for the currently selected sources and
// replaces the shared state wholesale. On fetch failure the last
// successful response for the same source filter is served instead, so
// a flaky backend degrades to stale data rather than an empty screen.
func (u *implUseCase) Refresh(ctx context.Context) error {
	selected := u.state.SelectedSources()
	sources := make([]string, 0, len(selected))
	for _, s := range selected {
		sources = append(sources, string(s))
	}
	cacheKey := strings.Join(sources, ",")

	seq := u.state.BeginRefresh()

	resp, err := u.api.ListEvents(ctx, sources)
	if err != nil {
		cached, ok := u.lastGood.Get(cacheKey)
		if !ok {
			u.state.AbortRefresh(seq)
			return fmt.Errorf("failed to refresh events: %w", err)
		}
		u.l.Warnf(ctx, "event fetch failed, serving last known good: %v", err)
		resp = cached
	} else {
		u.lastGood.Add(cacheKey, resp)
	}

	events, dropped := u.aggregate(ctx, resp)
	if dropped > 0 {
		u.l.Warnf(ctx, "dropped %d events without usable start/end instants", dropped)
	}

	// A non-empty apple list implies a connected account even when the
	// backend omits the flag.
	appleConnected := resp.AppleConnected || len(resp.AppleEvents) > 0

	if !u.state.CompleteRefresh(seq, events, appleConnected, dropped) {
		u.l.Debugf(ctx, "refresh %d superseded, result discarded", seq)
	}
	return nil
}

// aggregate narrows a backend response into the canonical merged list.
// The split shape concatenates providers in fixed order; the combined
// shape is taken as-is. Items that fail normalization are counted, not
// surfaced.
func (u *implUseCase) aggregate(ctx context.Context, resp *calendarapi.EventsResponse) ([]model.CalendarEvent, int) {
	var (
		out     []model.CalendarEvent
		dropped int
	)

	appendRaw := func(items []json.RawMessage, hint model.Source) {
		for _, raw := range items {
			ev, ok := normalize.Combined(raw, hint)
			if !ok {
				dropped++
				continue
			}
			out = append(out, normalize.Classify(ev))
		}
	}
	appendCanonical := func(items []model.CalendarEvent, hint model.Source) {
		for _, item := range items {
			ev, ok := normalize.Canonical(item, hint)
			if !ok {
				dropped++
				continue
			}
			out = append(out, normalize.Classify(ev))
		}
	}

	if resp.Combined() {
		// The combined list predates per-provider splitting and is
		// mostly Google data, so untagged items default to google.
		appendRaw(resp.Events, model.SourceGoogle)
		return out, dropped
	}

	for _, source := range model.AggregationOrder() {
		switch source {
		case model.SourceLocal:
			appendCanonical(resp.LocalEvents, model.SourceLocal)
		case model.SourceGoogle:
			for _, raw := range resp.GoogleEvents {
				ev, ok := normalize.Google(raw)
				if !ok {
					dropped++
					continue
				}
				out = append(out, normalize.Classify(ev))
			}
		case model.SourceApple:
			appendCanonical(resp.AppleEvents, model.SourceApple)
		case model.SourceMicrosoft:
			appendCanonical(resp.MicrosoftEvents, model.SourceMicrosoft)
		}
	}
	return out, dropped
}

// FetchSources loads calendar source metadata into the state.
func (u *implUseCase) FetchSources(ctx context.Context) ([]model.CalendarSource, error) {
	sources, err := u.api.ListSources(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch calendar sources: %w", err)
	}
	u.state.SetSources(sources)
	return sources, nil
}

// Snapshot returns the current merged calendar state.
func (u *implUseCase) Snapshot() state.Snapshot {
	return u.state.Snapshot()
}

// ToggleSource flips one source in the filter and refreshes so the
// list reflects the new selection.
func (u *implUseCase) ToggleSource(ctx context.Context, s model.Source) error {
	u.state.ToggleSource(s)
	return u.Refresh(ctx)
}

// StartPolling begins background refreshes and performs one immediate
// refresh so callers do not wait a full interval for data. Idempotent.
func (u *implUseCase) StartPolling(ctx context.Context, intervalSeconds int) error {
	if u.sched.Running() {
		return nil
	}
	if intervalSeconds <= 0 {
		intervalSeconds = scheduler.DefaultIntervalSeconds
	}
	if err := u.sched.Start(ctx, intervalSeconds); err != nil {
		return err
	}
	u.state.SetPolling(true)

	if err := u.Refresh(ctx); err != nil {
		u.l.Warnf(ctx, "initial refresh failed: %v", err)
	}
	return nil
}

// StopPolling halts background refreshes. Idempotent.
func (u *implUseCase) StopPolling() {
	u.sched.Stop()
	u.state.SetPolling(false)
}
