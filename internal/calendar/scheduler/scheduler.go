// Package scheduler drives periodic background refreshes of the
// calendar state.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	pkgLog "unified-calendar/pkg/log"
)

// DefaultIntervalSeconds is the polling cadence used when the caller
// does not specify one.
const DefaultIntervalSeconds = 300

// RefreshFunc performs one refresh pass.
type RefreshFunc func(ctx context.Context) error

// Scheduler runs a RefreshFunc on a fixed interval. Start and Stop are
// idempotent; calling Start while running is a no-op rather than a
// second ticker.
type Scheduler struct {
	l       pkgLog.Logger
	refresh RefreshFunc

	mu   sync.Mutex
	cron *cron.Cron
}

// New creates a stopped scheduler.
func New(l pkgLog.Logger, refresh RefreshFunc) *Scheduler {
	return &Scheduler{l: l, refresh: refresh}
}

// Start begins ticking every intervalSeconds. Values below one fall
// back to the default cadence. A scheduler that is already running
// keeps its current interval.
func (s *Scheduler) Start(ctx context.Context, intervalSeconds int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return nil
	}
	if intervalSeconds <= 0 {
		intervalSeconds = DefaultIntervalSeconds
	}

	c := cron.New()
	spec := fmt.Sprintf("@every %ds", intervalSeconds)
	if _, err := c.AddFunc(spec, func() { s.tick() }); err != nil {
		return fmt.Errorf("failed to schedule refresh: %w", err)
	}
	c.Start()
	s.cron = c

	s.l.Infof(ctx, "calendar polling started, interval %ds", intervalSeconds)
	return nil
}

// Stop halts the ticker. Safe to call on a stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return
	}
	s.cron.Stop()
	s.cron = nil
	s.l.Info(context.Background(), "calendar polling stopped")
}

// Running reports whether the ticker is active.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cron != nil
}

// tick runs one refresh with a bounded context. Errors are logged and
// swallowed; the next tick retries.
func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := s.refresh(ctx); err != nil {
		s.l.Warnf(ctx, "background refresh failed: %v", err)
	}
}
