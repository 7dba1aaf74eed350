package webhook

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	pkgResponse "unified-calendar/pkg/response"
)

// Google push notification headers.
const (
	headerChannelID     = "X-Goog-Channel-ID"
	headerChannelToken  = "X-Goog-Channel-Token"
	headerResourceID    = "X-Goog-Resource-ID"
	headerResourceState = "X-Goog-Resource-State"
)

// stateSync is the handshake Google sends right after a channel is
// registered. It confirms the channel; no resource changed yet.
const stateSync = "sync"

// HandleGoogleNotification processes Google Calendar push notifications
func (h *Handler) HandleGoogleNotification(c *gin.Context) {
	ctx := c.Request.Context()

	channelID := c.GetHeader(headerChannelID)
	if channelID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing channel id"})
		return
	}

	// Verify channel token
	if err := h.security.ValidateChannelToken(c.GetHeader(headerChannelToken)); err != nil {
		h.l.Errorf(ctx, "channel token verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	// Verify source IP when a whitelist is configured
	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Errorf(ctx, "IP verification failed: %v", err)
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	// Check rate limit per channel
	if err := h.security.CheckRateLimit(channelID); err != nil {
		h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
		return
	}

	state := c.GetHeader(headerResourceState)
	if state == stateSync {
		h.l.Infof(ctx, "channel %s confirmed", channelID)
		pkgResponse.OK(c, gin.H{"status": "confirmed"})
		return
	}

	h.l.Infof(ctx, "push notification: channel %s resource %s state %s",
		channelID, c.GetHeader(headerResourceID), state)

	// Process in background
	go h.refreshAsync(channelID)

	// Acknowledge immediately
	pkgResponse.OK(c, gin.H{"status": "accepted"})
}

// refreshAsync refreshes the merged calendar with retry and backoff.
func (h *Handler) refreshAsync(channelID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	h.refreshWithRetry(ctx, channelID)
}

func (h *Handler) refreshWithRetry(ctx context.Context, channelID string) {
	maxRetries := 3
	backoff := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := h.calendarUC.Refresh(ctx); err != nil {
			h.l.Warnf(ctx, "push refresh failed (retry %d/%d): %v", i+1, maxRetries, err)
			select {
			case <-ctx.Done():
				h.l.Warnf(ctx, "push refresh for channel %s abandoned: %v", channelID, ctx.Err())
				return
			case <-time.After(backoff):
			}
			backoff *= 2
			continue
		}
		h.l.Infof(ctx, "push refresh for channel %s complete", channelID)
		return
	}

	h.l.Errorf(ctx, "push refresh for channel %s gave up after %d attempts", channelID, maxRetries)
}
