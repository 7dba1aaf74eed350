package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"unified-calendar/config"
	_ "unified-calendar/docs" // Swagger docs
	"unified-calendar/internal/calendar/state"
	"unified-calendar/internal/calendar/usecase"
	"unified-calendar/internal/httpserver"
	"unified-calendar/internal/model"
	"unified-calendar/internal/task"
	taskSQLite "unified-calendar/internal/task/repository/sqlite"
	taskUsecase "unified-calendar/internal/task/usecase"
	"unified-calendar/internal/webhook"
	"unified-calendar/pkg/calendarapi"
	"unified-calendar/pkg/log"
	"unified-calendar/pkg/tokenstore"
)

// @title       Unified Calendar API
// @description Multi-provider calendar aggregation engine with Google, Apple, Microsoft and local events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Unified Calendar...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.BaseURL)

	// 3. Credential store
	store, err := tokenstore.Open(cfg.Storage.CredentialsPath)
	if err != nil {
		logger.Error(ctx, "Failed to open credential store: ", err)
		return
	}
	defer store.Close()

	if cfg.Backend.Token != "" {
		if err := store.Set(ctx, tokenstore.KeyToken, cfg.Backend.Token); err != nil {
			logger.Warnf(ctx, "Failed to seed backend token: %v", err)
		}
	}
	if cfg.Backend.AuthToken != "" {
		if err := store.Set(ctx, tokenstore.KeyAuthToken, cfg.Backend.AuthToken); err != nil {
			logger.Warnf(ctx, "Failed to seed backend auth token: %v", err)
		}
	}

	// 4. Calendar domain
	apiClient := calendarapi.New(cfg.Backend.BaseURL, store.TokenSource(ctx))

	container := state.NewContainer()
	if len(cfg.Sync.EnabledSources) > 0 {
		selected := make([]model.Source, 0, len(cfg.Sync.EnabledSources))
		for _, s := range cfg.Sync.EnabledSources {
			selected = append(selected, model.Source(s))
		}
		container.SetSelectedSources(selected)
	}

	calendarUC := usecase.New(logger, apiClient, container)

	// 5. Task domain (optional)
	var taskUC task.UseCase
	taskRepo, repoErr := taskSQLite.New(logger, cfg.Storage.TasksPath)
	if repoErr != nil {
		logger.Warnf(ctx, "Task storage not available (optional): %v", repoErr)
	} else {
		defer taskRepo.Close()
		taskUC = taskUsecase.New(logger, taskRepo)
	}

	// 6. Google push notifications (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled {
		webhookHandler = webhook.NewHandler(calendarUC, webhook.SecurityConfig{
			ChannelToken:    cfg.Webhook.ChannelToken,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)

		// Register the watch channel: manual URL wins, else auto-detect ngrok.
		webhookURL := cfg.Sync.WebhookURL
		if webhookURL == "" {
			ngrokURL, ngrokErr := detectNgrokURL(ctx, cfg.Sync.NgrokAPIBase)
			if ngrokErr != nil {
				logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
			} else {
				webhookURL = ngrokURL + "/webhook/google"
				logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
			}
		}

		if webhookURL != "" {
			if _, whErr := calendarUC.SetupGoogleWatch(ctx, webhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to register Google watch channel: %v", whErr)
			}
		}
	}

	// 7. Background polling
	if err := calendarUC.StartPolling(ctx, cfg.Sync.PollIntervalSeconds); err != nil {
		logger.Warnf(ctx, "Failed to start background polling: %v", err)
	}
	defer calendarUC.StopPolling()

	// 8. HTTP Server
	serverCfg := httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		APIKey:          cfg.HTTPServer.APIKey,
		CalendarUseCase: calendarUC,
		TaskUseCase:     taskUC,
	}
	if webhookHandler != nil {
		serverCfg.WebhookHandler = webhookHandler
	}

	httpServer, err := httpserver.New(logger, serverCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
