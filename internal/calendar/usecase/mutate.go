package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gcal "google.golang.org/api/calendar/v3"

	"unified-calendar/internal/calendar"
	"unified-calendar/internal/model"
)

// CreateEvent routes the create to the provider owning the source,
// inserts the event optimistically at the head of the list and kicks a
// refresh so the authoritative copy replaces it shortly after.
func (u *implUseCase) CreateEvent(ctx context.Context, input calendar.EventInput) (model.CalendarEvent, error) {
	ev, err := eventFromInput(input)
	if err != nil {
		return model.CalendarEvent{}, err
	}

	var serverID string
	switch ev.CalendarSource {
	case model.SourceGoogle:
		serverID, err = u.api.AddGoogleEvent(ctx, googlePayload(ev))
	case model.SourceApple:
		err = u.api.CreateAppleEvent(ctx, ev)
	case model.SourceLocal:
		var created *model.CalendarEvent
		created, err = u.api.CreateLocalEvent(ctx, ev)
		if err == nil && created != nil {
			serverID = created.ID
		}
	default:
		return model.CalendarEvent{}, calendar.ErrUnsupportedSource
	}
	if err != nil {
		return model.CalendarEvent{}, fmt.Errorf("failed to create event: %w", err)
	}

	ev.ID = serverID
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	ev.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	u.state.PrependOptimistic(ev)
	u.refreshAfterMutation(ctx)
	return ev, nil
}

// UpdateEvent routes the update by the stored event's calendar source.
// The caller cannot move an event between sources.
func (u *implUseCase) UpdateEvent(ctx context.Context, id string, input calendar.EventInput) error {
	existing, ok := u.state.FindEvent(id)
	if !ok {
		return calendar.ErrEventNotFound
	}

	input.Source = existing.CalendarSource
	ev, err := eventFromInput(input)
	if err != nil {
		return err
	}
	ev.ID = id
	ev.CreatedAt = existing.CreatedAt
	ev.IsInvite = existing.IsInvite
	ev.InviteStatus = existing.InviteStatus

	switch existing.CalendarSource {
	case model.SourceGoogle:
		err = u.api.UpdateGoogleEvent(ctx, id, googlePayload(ev))
	case model.SourceApple:
		err = u.api.UpdateAppleEvent(ctx, id, ev)
	case model.SourceLocal:
		err = u.api.UpdateLocalEvent(ctx, id, ev)
	default:
		return calendar.ErrUnsupportedSource
	}
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	u.state.ReplaceOptimistic(id, ev)
	u.refreshAfterMutation(ctx)
	return nil
}

// DeleteEvent routes the delete by the stored event's calendar source.
func (u *implUseCase) DeleteEvent(ctx context.Context, id string) error {
	existing, ok := u.state.FindEvent(id)
	if !ok {
		return calendar.ErrEventNotFound
	}

	var err error
	switch existing.CalendarSource {
	case model.SourceGoogle:
		err = u.api.DeleteGoogleEvent(ctx, id)
	case model.SourceApple:
		err = u.api.DeleteAppleEvent(ctx, id)
	case model.SourceLocal:
		err = u.api.DeleteLocalEvent(ctx, id)
	default:
		return calendar.ErrUnsupportedSource
	}
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	u.state.RemoveOptimistic(id)
	u.refreshAfterMutation(ctx)
	return nil
}

// RespondToInvite records an invitation response. The response route is
// the same regardless of the event's provider; the backend fans out.
func (u *implUseCase) RespondToInvite(ctx context.Context, id string, status model.InviteStatus) error {
	if !model.ValidInviteStatus(status) {
		return calendar.ErrInvalidInviteStatus
	}

	if err := u.api.RespondToInvite(ctx, id, status); err != nil {
		return fmt.Errorf("failed to respond to invite: %w", err)
	}

	if existing, ok := u.state.FindEvent(id); ok {
		existing.IsInvite = true
		existing.InviteStatus = status
		u.state.ReplaceOptimistic(id, existing)
	}
	u.refreshAfterMutation(ctx)
	return nil
}

// refreshAfterMutation reconciles state with the backend. A failed
// refresh never fails the mutation that triggered it; the optimistic
// copy stays visible until the next successful pass.
func (u *implUseCase) refreshAfterMutation(ctx context.Context) {
	if err := u.Refresh(ctx); err != nil {
		u.l.Warnf(ctx, "refresh after mutation failed: %v", err)
	}
}

// eventFromInput validates the caller payload and builds the canonical
// event. An empty source means a local event.
func eventFromInput(input calendar.EventInput) (model.CalendarEvent, error) {
	if input.Title == "" {
		return model.CalendarEvent{}, calendar.ErrMissingTitle
	}
	if input.StartTime == "" || input.EndTime == "" {
		return model.CalendarEvent{}, calendar.ErrMissingTimes
	}

	source := input.Source
	if source == "" {
		source = model.SourceLocal
	}

	ev := model.CalendarEvent{
		Title:          input.Title,
		Description:    input.Description,
		Location:       input.Location,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
		CalendarSource: source,
	}
	if _, ok := ev.Start(); !ok {
		return model.CalendarEvent{}, calendar.ErrUnparseableTime
	}
	if _, ok := ev.End(); !ok {
		return model.CalendarEvent{}, calendar.ErrUnparseableTime
	}
	return ev, nil
}

// googlePayload maps a canonical event onto the provider wire shape
// the Google routes expect.
func googlePayload(ev model.CalendarEvent) *gcal.Event {
	return &gcal.Event{
		Summary:     ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       &gcal.EventDateTime{DateTime: ev.StartTime},
		End:         &gcal.EventDateTime{DateTime: ev.EndTime},
	}
}
