// Package webhook receives Google Calendar push notifications and turns
// them into refreshes of the merged calendar state.
package webhook

import (
	"unified-calendar/internal/calendar"
	pkgLog "unified-calendar/pkg/log"
)

type Handler struct {
	calendarUC calendar.UseCase
	security   *SecurityValidator
	l          pkgLog.Logger
}

func NewHandler(
	calendarUC calendar.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		calendarUC: calendarUC,
		security:   NewSecurityValidator(securityConfig),
		l:          l,
	}
}
