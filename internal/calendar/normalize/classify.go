package normalize

import (
	"unified-calendar/internal/model"
)

// Google attendee response states that mean the invitation is still
// awaiting an answer.
const (
	googleNeedsAction = "needsAction"
	googleTentative   = "tentative"
)

// Microsoft attendee response states with the same meaning.
const (
	microsoftNotResponded        = "notResponded"
	microsoftTentativelyAccepted = "tentativelyAccepted"
)

// Classify derives is_invite and invite_status from provider attendee
// metadata when the provider does not supply the flags directly.
// Explicit flags already on the event win. The function is pure and
// idempotent: classifying an already-classified event is a no-op.
func Classify(ev model.CalendarEvent) model.CalendarEvent {
	isInvite := bool(ev.IsInvite)
	status := ev.InviteStatus

	if ev.CalendarSource == model.SourceGoogle && len(ev.Attendees) > 0 {
		if hasPendingGoogleAttendee(ev.Attendees) {
			isInvite = true
			status = model.InvitePending
		} else if organizerDiffersFromCreator(ev) {
			// Someone else's event landed on this calendar: treat it
			// as an invite, keeping any status already present.
			isInvite = true
			if status == "" {
				status = model.InvitePending
			}
		}
	}

	if (ev.CalendarSource == model.SourceMicrosoft || ev.CalendarSource == model.SourceOutlook) &&
		len(ev.Attendees) > 0 && !isInvite {
		if hasPendingMicrosoftAttendee(ev.Attendees) {
			isInvite = true
			status = model.InvitePending
		}
	}

	if isInvite && status == "" {
		status = model.InvitePending
	}

	ev.IsInvite = model.FlexBool(isInvite)
	ev.InviteStatus = status
	return ev
}

func hasPendingGoogleAttendee(attendees []model.Attendee) bool {
	for _, a := range attendees {
		if a.ResponseStatus == googleNeedsAction || a.ResponseStatus == googleTentative {
			return true
		}
	}
	return false
}

func hasPendingMicrosoftAttendee(attendees []model.Attendee) bool {
	for _, a := range attendees {
		if a.Status == nil {
			continue
		}
		if a.Status.Response == microsoftNotResponded || a.Status.Response == microsoftTentativelyAccepted {
			return true
		}
	}
	return false
}

func organizerDiffersFromCreator(ev model.CalendarEvent) bool {
	return ev.Organizer != nil && ev.Creator != nil &&
		ev.Organizer.Email != "" && ev.Creator.Email != "" &&
		ev.Organizer.Email != ev.Creator.Email
}
