package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"unified-calendar/internal/model"
)

// processEventReq binds and validates the create/update event body.
func (h *handler) processEventReq(c *gin.Context) (eventReq, error) {
	var req eventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processRespondReq binds the invitation response body.
func (h *handler) processRespondReq(c *gin.Context) (respondReq, error) {
	var req respondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processSourceParam parses the source path parameter.
func (h *handler) processSourceParam(c *gin.Context) (model.Source, error) {
	source := model.Source(c.Param("source"))
	switch source {
	case model.SourceGoogle, model.SourceApple, model.SourceMicrosoft, model.SourceOutlook, model.SourceLocal:
		return source, nil
	}
	return "", fmt.Errorf("unknown calendar source %q", c.Param("source"))
}

// processAppleConnectReq binds the Apple credentials body.
func (h *handler) processAppleConnectReq(c *gin.Context) (appleConnectReq, error) {
	var req appleConnectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAppleSyncReq binds the sync options body. An empty body is
// fine; the use case applies defaults.
func (h *handler) processAppleSyncReq(c *gin.Context) (appleSyncReq, error) {
	var req appleSyncReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processWatchReq binds the watch registration body.
func (h *handler) processWatchReq(c *gin.Context) (watchReq, error) {
	var req watchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processPollingReq binds the polling options body, tolerating an
// empty one.
func (h *handler) processPollingReq(c *gin.Context) (pollingReq, error) {
	var req pollingReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
