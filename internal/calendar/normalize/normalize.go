// Package normalize maps provider wire shapes onto the canonical event
// model and derives invitation flags. Raw payloads are narrowed exactly
// once, here; downstream code only ever sees model.CalendarEvent.
package normalize

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/calendar/v3"

	"unified-calendar/internal/model"
)

// NoTitle is the display fallback for events without a usable title.
const NoTitle = "(No title)"

// rawItem is the provider-shaped event item as it appears in raw
// Google payloads and in un-normalized combined lists. The nested
// start/end/attendee objects reuse the calendar/v3 wire types.
type rawItem struct {
	ID          string                `json:"id"`
	AltID       string                `json:"_id"`
	Summary     string                `json:"summary"`
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Location    string                `json:"location"`
	Source      model.Source          `json:"calendar_source"`
	Start       *calendar.EventDateTime `json:"start"`
	End         *calendar.EventDateTime `json:"end"`
	Attendees   []*calendar.EventAttendee `json:"attendees"`
	Organizer   *calendar.EventOrganizer  `json:"organizer"`
	Creator     *calendar.EventCreator    `json:"creator"`
}

// startTimeProbe detects payloads that are already canonical.
type startTimeProbe struct {
	StartTime string `json:"start_time"`
}

// Google narrows one item from a Google list. Already-normalized
// payloads pass through unchanged; raw items are mapped from the
// provider shape. ok is false when the item has no usable start/end
// instant, in which case the aggregator drops it.
func Google(raw json.RawMessage) (model.CalendarEvent, bool) {
	var probe startTimeProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return model.CalendarEvent{}, false
	}

	if probe.StartTime != "" {
		var ev model.CalendarEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return model.CalendarEvent{}, false
		}
		return Canonical(ev, model.SourceGoogle)
	}

	var item rawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return model.CalendarEvent{}, false
	}
	item.Source = model.SourceGoogle
	return fromRaw(item, model.SourceGoogle)
}

// Combined narrows one item from the backend's combined list. Items
// self-identify via calendar_source where they can; hint is the
// caller's default for those that don't.
func Combined(raw json.RawMessage, hint model.Source) (model.CalendarEvent, bool) {
	var probe startTimeProbe
	if err := json.Unmarshal(raw, &probe); err != nil {
		return model.CalendarEvent{}, false
	}

	if probe.StartTime != "" {
		var ev model.CalendarEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return model.CalendarEvent{}, false
		}
		return Canonical(ev, hint)
	}

	var item rawItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return model.CalendarEvent{}, false
	}
	return fromRaw(item, hint)
}

// Canonical validates an already-normalized event: the source defaults
// to the hint, the title falls back to NoTitle, and events whose start
// or end instant cannot be parsed are rejected. Everything else passes
// through unchanged.
func Canonical(ev model.CalendarEvent, hint model.Source) (model.CalendarEvent, bool) {
	if _, ok := ev.Start(); !ok {
		return model.CalendarEvent{}, false
	}
	if _, ok := ev.End(); !ok {
		return model.CalendarEvent{}, false
	}
	if ev.CalendarSource == "" {
		ev.CalendarSource = hint
	}
	if ev.Title == "" {
		ev.Title = NoTitle
	}
	return ev, true
}

func fromRaw(item rawItem, hint model.Source) (model.CalendarEvent, bool) {
	start, ok := instant(item.Start)
	if !ok {
		return model.CalendarEvent{}, false
	}
	end, ok := instant(item.End)
	if !ok {
		return model.CalendarEvent{}, false
	}

	source := item.Source
	if source == "" {
		source = hint
	}

	id := item.ID
	if id == "" {
		id = item.AltID
	}
	if id == "" {
		id = uuid.NewString()
	}

	title := item.Summary
	if title == "" {
		title = item.Title
	}
	if title == "" {
		title = NoTitle
	}

	return model.CalendarEvent{
		ID:             id,
		Title:          title,
		Description:    item.Description,
		Location:       item.Location,
		StartTime:      start,
		EndTime:        end,
		CalendarSource: source,
		IsInvite:       false,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		Attendees:      attendees(item.Attendees),
		Organizer:      organizer(item.Organizer),
		Creator:        creator(item.Creator),
	}, true
}

// instant extracts an ISO-8601 instant from a provider start/end
// object. Timed events pass their dateTime through unchanged; all-day
// events carry a bare date, which becomes an instant at local
// midnight. Missing or unparseable values reject the event.
func instant(dt *calendar.EventDateTime) (string, bool) {
	if dt == nil {
		return "", false
	}
	if dt.DateTime != "" {
		if _, err := time.Parse(time.RFC3339, dt.DateTime); err != nil {
			return "", false
		}
		return dt.DateTime, true
	}
	if dt.Date != "" {
		midnight, err := time.ParseInLocation("2006-01-02", dt.Date, time.Local)
		if err != nil {
			return "", false
		}
		return midnight.Format(time.RFC3339), true
	}
	return "", false
}

func attendees(raw []*calendar.EventAttendee) []model.Attendee {
	if len(raw) == 0 {
		return nil
	}
	out := make([]model.Attendee, 0, len(raw))
	for _, a := range raw {
		if a == nil {
			continue
		}
		out = append(out, model.Attendee{
			Email:          a.Email,
			Name:           a.DisplayName,
			ResponseStatus: a.ResponseStatus,
		})
	}
	return out
}

func organizer(o *calendar.EventOrganizer) *model.Participant {
	if o == nil {
		return nil
	}
	return &model.Participant{Email: o.Email, DisplayName: o.DisplayName}
}

func creator(c *calendar.EventCreator) *model.Participant {
	if c == nil {
		return nil
	}
	return &model.Participant{Email: c.Email, DisplayName: c.DisplayName}
}
