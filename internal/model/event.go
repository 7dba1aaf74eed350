package model

import (
	"bytes"
	"encoding/json"
	"time"
)

// Source identifies the provider a calendar event originated from.
type Source string

const (
	SourceGoogle    Source = "google"
	SourceApple     Source = "apple"
	SourceMicrosoft Source = "microsoft"
	SourceOutlook   Source = "outlook"
	SourceLocal     Source = "local"
)

// AggregationOrder is the fixed concatenation order of the merged list:
// local first, then the remote providers. Consumers re-sort by start
// time when they need chronological order.
func AggregationOrder() []Source {
	return []Source{SourceLocal, SourceGoogle, SourceApple, SourceMicrosoft}
}

// DefaultSelectedSources is the initial source filter: everything on.
func DefaultSelectedSources() []Source {
	return []Source{SourceGoogle, SourceApple, SourceMicrosoft, SourceLocal}
}

// InviteStatus is the user's response state on an invitation.
type InviteStatus string

const (
	InvitePending   InviteStatus = "pending"
	InviteAccepted  InviteStatus = "accepted"
	InviteDeclined  InviteStatus = "declined"
	InviteTentative InviteStatus = "tentative"
)

// ValidInviteStatus reports whether s is one of the known response states.
func ValidInviteStatus(s InviteStatus) bool {
	switch s {
	case InvitePending, InviteAccepted, InviteDeclined, InviteTentative:
		return true
	}
	return false
}

// FlexBool is a bool that tolerates providers encoding booleans as the
// strings "true"/"false" on the wire. It marshals as a plain bool.
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler for FlexBool.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case `"true"`:
		*b = true
		return nil
	case `"false"`, `""`, "null":
		*b = false
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = FlexBool(v)
	return nil
}

// MarshalJSON implements json.Marshaler for FlexBool.
func (b FlexBool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

// AttendeeStatus is the Microsoft Graph nested response wrapper.
type AttendeeStatus struct {
	Response string `json:"response,omitempty"`
	Time     string `json:"time,omitempty"`
}

// Attendee is provider attendee metadata, kept opaque to the canonical
// model and consumed only by the invite classifier. Google puts the
// reply in responseStatus; Microsoft nests it under status.response.
type Attendee struct {
	Email          string          `json:"email,omitempty"`
	Name           string          `json:"name,omitempty"`
	ResponseStatus string          `json:"responseStatus,omitempty"`
	Status         *AttendeeStatus `json:"status,omitempty"`
}

// Participant is an event organizer or creator.
type Participant struct {
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// CalendarEvent is the canonical event representation consumed by all
// surfaces, independent of the originating provider.
type CalendarEvent struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Location       string       `json:"location,omitempty"`
	StartTime      string       `json:"start_time"`
	EndTime        string       `json:"end_time"`
	CalendarSource Source       `json:"calendar_source"`
	IsInvite       FlexBool     `json:"is_invite"`
	InviteStatus   InviteStatus `json:"invite_status,omitempty"`
	CreatedAt      string       `json:"created_at,omitempty"`

	// Provider passthrough, consumed by the invite classifier.
	Attendees []Attendee   `json:"attendees,omitempty"`
	Organizer *Participant `json:"organizer,omitempty"`
	Creator   *Participant `json:"creator,omitempty"`
}

// Start parses the event's start instant. The second return is false
// when the stored string is missing or unparseable.
func (e CalendarEvent) Start() (time.Time, bool) {
	return parseInstant(e.StartTime)
}

// End parses the event's end instant.
func (e CalendarEvent) End() (time.Time, bool) {
	return parseInstant(e.EndTime)
}

func parseInstant(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	// All-day events carry a bare date; treat it as local midnight.
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CalendarSource is descriptive provider metadata. The engine reads it
// but never mutates it.
type CalendarSource struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Color    string `json:"color"`
	IsActive bool   `json:"is_active"`
}

// Environment names used across config and the HTTP server.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
