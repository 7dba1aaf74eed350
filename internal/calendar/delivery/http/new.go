package http

import (
	"github.com/gin-gonic/gin"

	"unified-calendar/internal/calendar"
	"unified-calendar/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Refresh(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	Respond(c *gin.Context)
	Sources(c *gin.Context)
	ToggleSource(c *gin.Context)
	ConnectApple(c *gin.Context)
	SyncApple(c *gin.Context)
	Watch(c *gin.Context)
	StartPolling(c *gin.Context)
	StopPolling(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
