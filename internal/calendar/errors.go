package calendar

import "errors"

// Domain-specific errors for the calendar package.
var (
	ErrMissingTitle        = errors.New("event title is empty")
	ErrMissingTimes        = errors.New("event start or end time is missing")
	ErrUnparseableTime     = errors.New("event time is not a valid instant")
	ErrEventNotFound       = errors.New("event not found")
	ErrUnsupportedSource   = errors.New("mutations are not supported for this calendar source")
	ErrInvalidInviteStatus = errors.New("invalid invite status")
	ErrMissingCredentials  = errors.New("apple id or app-specific password is missing")
	ErrMissingWebhookURL   = errors.New("webhook url is empty")
)
