package http

import (
	"errors"
	"net/http"

	"unified-calendar/internal/calendar"
	pkgErrors "unified-calendar/pkg/errors"
	"unified-calendar/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrEventNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "event not found")
	case errors.Is(err, calendar.ErrUnsupportedSource):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, calendar.ErrMissingTitle),
		errors.Is(err, calendar.ErrMissingTimes),
		errors.Is(err, calendar.ErrUnparseableTime),
		errors.Is(err, calendar.ErrInvalidInviteStatus),
		errors.Is(err, calendar.ErrMissingCredentials),
		errors.Is(err, calendar.ErrMissingWebhookURL):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.NewHTTPError(http.StatusBadGateway, response.DefaultErrorMessage)
	}
}
