package http

import (
	"github.com/gin-gonic/gin"

	"unified-calendar/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware by convention.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	events := rg.Group("/events")
	{
		events.GET("", mw.Auth(), h.List)
		events.POST("", mw.Auth(), h.Create)
		events.POST("/refresh", mw.Auth(), h.Refresh)
		events.PUT("/:id", mw.Auth(), h.Update)
		events.DELETE("/:id", mw.Auth(), h.Delete)
		events.PATCH("/:id/respond", mw.Auth(), h.Respond)
	}

	sources := rg.Group("/sources")
	{
		sources.GET("", mw.Auth(), h.Sources)
		sources.POST("/:source/toggle", mw.Auth(), h.ToggleSource)
	}

	apple := rg.Group("/apple")
	{
		apple.POST("/connect", mw.Auth(), h.ConnectApple)
		apple.POST("/sync", mw.Auth(), h.SyncApple)
	}

	sync := rg.Group("/sync")
	{
		sync.POST("/watch", mw.Auth(), h.Watch)
		sync.POST("/polling/start", mw.Auth(), h.StartPolling)
		sync.POST("/polling/stop", mw.Auth(), h.StopPolling)
	}
}
