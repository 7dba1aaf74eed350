package usecase

import (
	"context"
	"fmt"

	"unified-calendar/internal/calendar"
	"unified-calendar/pkg/calendarapi"
)

// Defaults for a sync run when the caller leaves the knobs empty.
const (
	defaultSyncDirection = "both"
	defaultSyncRangeDays = 30
)

// ConnectApple links an Apple Calendar account, marks the provider
// connected and triggers an initial sync so events show up without
// waiting for the next poll.
func (u *implUseCase) ConnectApple(ctx context.Context, input calendar.AppleConnectInput) error {
	if input.AppleID == "" || input.AppSpecificPassword == "" {
		return calendar.ErrMissingCredentials
	}

	creds := calendarapi.AppleCredentials{
		AppleID:             input.AppleID,
		AppSpecificPassword: input.AppSpecificPassword,
	}
	if err := u.api.ConnectApple(ctx, creds); err != nil {
		return fmt.Errorf("failed to connect apple calendar: %w", err)
	}
	u.state.SetAppleConnected(true)

	return u.SyncApple(ctx, calendar.AppleSyncInput{})
}

// SyncApple triggers a server-side Apple sync and reconciles state.
func (u *implUseCase) SyncApple(ctx context.Context, input calendar.AppleSyncInput) error {
	if input.SyncDirection == "" {
		input.SyncDirection = defaultSyncDirection
	}
	if input.DateRangeDays <= 0 {
		input.DateRangeDays = defaultSyncRangeDays
	}

	req := calendarapi.AppleSyncRequest{
		SyncDirection: input.SyncDirection,
		DateRangeDays: input.DateRangeDays,
	}
	if err := u.api.SyncApple(ctx, req); err != nil {
		return fmt.Errorf("failed to sync apple calendar: %w", err)
	}

	u.refreshAfterMutation(ctx)
	return nil
}
