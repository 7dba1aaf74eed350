package http

import (
	"github.com/gin-gonic/gin"

	"unified-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", mw.Auth(), h.List)
		tasks.POST("", mw.Auth(), h.Add)
		tasks.PATCH("/:id/toggle", mw.Auth(), h.Toggle)
		tasks.DELETE("/:id", mw.Auth(), h.Remove)
	}
}
