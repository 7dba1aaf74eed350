package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"unified-calendar/internal/middleware"
	taskHTTP "unified-calendar/internal/task/delivery/http"
)

// setupTaskDomain registers the task list routes. The task domain is
// optional; without a use case the routes are simply absent.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.taskUC == nil {
		srv.l.Infof(ctx, "Task domain not configured, skipping routes")
		return nil
	}

	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api.Group(""), h, mw)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
