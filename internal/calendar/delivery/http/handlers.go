package http

import (
	"github.com/gin-gonic/gin"

	"unified-calendar/pkg/response"
)

// List godoc
// @Summary     Get the merged calendar
// @Description Returns the current merged event list and sync state without hitting the providers.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} snapshotResp
// @Router      /api/v1/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	response.OK(c, newSnapshotResp(h.uc.Snapshot()))
}

// Refresh godoc
// @Summary     Refresh the merged calendar
// @Description Fetches events from the enabled sources and replaces the merged list.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} snapshotResp
// @Failure     502 {object} response.Resp "Providers unreachable"
// @Router      /api/v1/calendar/events/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSnapshotResp(h.uc.Snapshot()))
}

// Create godoc
// @Summary     Create an event
// @Description Creates an event on the provider owning the calendar source. The response carries the optimistic copy.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body eventReq true "Event data"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Source does not accept mutations"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, eventResp{Event: ev})
}

// Update godoc
// @Summary     Update an event
// @Description Updates an event on the provider that owns it. Events cannot move between sources.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string   true "Event ID"
// @Param       body body eventReq true "Event data"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Source does not accept mutations"
// @Router      /api/v1/calendar/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processEventReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	id := c.Param("id")

	if err := h.uc.UpdateEvent(ctx, id, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Delete godoc
// @Summary     Delete an event
// @Description Deletes an event on the provider that owns it.
// @Tags        Calendar
// @Produce     json
// @Param       id path string true "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/calendar/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.DeleteEvent(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Respond godoc
// @Summary     Respond to an invitation
// @Description Records an accept, decline or tentative response to an invite.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Event ID"
// @Param       body body respondReq true "Response"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Invalid status"
// @Router      /api/v1/calendar/events/{id}/respond [PATCH]
func (h *handler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRespondReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	id := c.Param("id")

	if err := h.uc.RespondToInvite(ctx, id, req.status()); err != nil {
		h.l.Errorf(ctx, "uc.RespondToInvite: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Sources godoc
// @Summary     List calendar sources
// @Description Returns provider calendar metadata and the current selection filter.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} sourcesResp
// @Router      /api/v1/calendar/sources [GET]
func (h *handler) Sources(c *gin.Context) {
	ctx := c.Request.Context()

	sources, err := h.uc.FetchSources(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.FetchSources: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSourcesResp(sources, h.uc.Snapshot().Selected))
}

// ToggleSource godoc
// @Summary     Toggle a source filter
// @Description Flips one calendar source in the filter and refreshes the merged list.
// @Tags        Calendar
// @Produce     json
// @Param       source path string true "Source (google, apple, microsoft, local)"
// @Success     200 {object} snapshotResp
// @Failure     400 {object} response.Resp "Unknown source"
// @Router      /api/v1/calendar/sources/{source}/toggle [POST]
func (h *handler) ToggleSource(c *gin.Context) {
	ctx := c.Request.Context()

	source, err := h.processSourceParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ToggleSource(ctx, source); err != nil {
		h.l.Errorf(ctx, "uc.ToggleSource: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSnapshotResp(h.uc.Snapshot()))
}

// ConnectApple godoc
// @Summary     Connect an Apple Calendar account
// @Description Links an Apple account using an app-specific password and triggers an initial sync.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body appleConnectReq true "Apple credentials"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Missing credentials"
// @Router      /api/v1/calendar/apple/connect [POST]
func (h *handler) ConnectApple(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppleConnectReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.ConnectApple(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.ConnectApple: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// SyncApple godoc
// @Summary     Trigger an Apple sync
// @Description Runs a server-side Apple Calendar sync and reconciles the merged list.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body appleSyncReq false "Sync options"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/calendar/apple/sync [POST]
func (h *handler) SyncApple(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAppleSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.SyncApple(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SyncApple: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Watch godoc
// @Summary     Register a Google push channel
// @Description Registers a webhook channel so Google changes arrive ahead of the polling cadence.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body watchReq true "Webhook URL"
// @Success     200 {object} watchResp
// @Failure     400 {object} response.Resp "Missing URL"
// @Router      /api/v1/calendar/sync/watch [POST]
func (h *handler) Watch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	info, err := h.uc.SetupGoogleWatch(ctx, req.WebhookURL)
	if err != nil {
		h.l.Errorf(ctx, "uc.SetupGoogleWatch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newWatchResp(info))
}

// StartPolling godoc
// @Summary     Start background polling
// @Description Starts periodic refreshes. Idempotent; a running poller keeps its interval.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body pollingReq false "Polling options"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/calendar/sync/polling/start [POST]
func (h *handler) StartPolling(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPollingReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.StartPolling(ctx, req.IntervalSeconds); err != nil {
		h.l.Errorf(ctx, "uc.StartPolling: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// StopPolling godoc
// @Summary     Stop background polling
// @Description Halts periodic refreshes. Idempotent.
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/calendar/sync/polling/stop [POST]
func (h *handler) StopPolling(c *gin.Context) {
	h.uc.StopPolling()
	response.OK(c, nil)
}
