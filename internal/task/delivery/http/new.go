package http

import (
	"github.com/gin-gonic/gin"

	"unified-calendar/internal/task"
	"unified-calendar/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Add(c *gin.Context)
	Toggle(c *gin.Context)
	Remove(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
