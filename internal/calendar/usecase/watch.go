package usecase

import (
	"context"
	"fmt"

	"unified-calendar/internal/calendar"
	"unified-calendar/pkg/calendarapi"
)

// SetupGoogleWatch registers a push-notification channel so Google
// changes arrive ahead of the polling cadence.
func (u *implUseCase) SetupGoogleWatch(ctx context.Context, webhookURL string) (*calendarapi.WatchInfo, error) {
	if webhookURL == "" {
		return nil, calendar.ErrMissingWebhookURL
	}

	info, err := u.api.RegisterWatch(ctx, webhookURL)
	if err != nil {
		return nil, fmt.Errorf("failed to set up google watch: %w", err)
	}

	u.l.Infof(ctx, "google watch registered, channel %s expires %s", info.ChannelID, info.Expiration)
	return info, nil
}
