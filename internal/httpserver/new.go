package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"unified-calendar/internal/calendar"
	"unified-calendar/internal/task"
	"unified-calendar/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	apiKey      string

	// Calendar domain
	calendarUC calendar.UseCase

	// Task domain
	taskUC task.UseCase

	// Google push notifications
	webhookHandler interface {
		HandleGoogleNotification(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	APIKey      string

	CalendarUseCase calendar.UseCase
	TaskUseCase     task.UseCase

	WebhookHandler interface {
		HandleGoogleNotification(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.Default(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		apiKey:         cfg.APIKey,
		calendarUC:     cfg.CalendarUseCase,
		taskUC:         cfg.TaskUseCase,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil {
		return errors.New("calendar use case is required")
	}
	return nil
}
