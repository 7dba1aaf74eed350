package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "unified-calendar/internal/calendar/delivery/http"
	"unified-calendar/internal/middleware"
)

// setupCalendarDomain registers the calendar routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := calendarHTTP.New(srv.l, srv.calendarUC)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	srv.l.Infof(ctx, "Calendar domain registered")
	return nil
}
