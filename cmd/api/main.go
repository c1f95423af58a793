package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"classroom-occupancy/config"
	_ "classroom-occupancy/docs" // Swagger docs
	"classroom-occupancy/internal/httpserver"
	"classroom-occupancy/internal/refresher"
	"classroom-occupancy/internal/schedule/repository"
	csvRepo "classroom-occupancy/internal/schedule/repository/csvfile"
	sheetsRepo "classroom-occupancy/internal/schedule/repository/sheets"
	"classroom-occupancy/internal/schedule/usecase"
	"classroom-occupancy/internal/webhook"
	"classroom-occupancy/pkg/gsheets"
	"classroom-occupancy/pkg/log"
)

// @title       Classroom Occupancy API
// @description Classroom schedule ingestion and occupancy statistics from Google Sheets.
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

	logger.Info(ctx, "Starting Classroom Occupancy...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Schedule source: %s", cfg.Source.Kind)

	// 3. Schedule repository
	var repo repository.Repository
	switch cfg.Source.Kind {
	case config.SourceSheets:
		sheetsClient, sErr := gsheets.NewClientFromCredentialsFile(ctx, cfg.GoogleSheets.CredentialsPath)
		if sErr != nil {
			logger.Errorf(ctx, "Google Sheets not available: %v", sErr)
			logger.Warn(ctx, "→ Run `go run scripts/gsheets-auth/main.go` to generate token.json")
			return
		}
		logger.Info(ctx, "✅ Google Sheets initialized")
		repo = sheetsRepo.New(sheetsClient, cfg.GoogleSheets.SpreadsheetID, cfg.GoogleSheets.ReadRange, logger)
	case config.SourceCSV:
		repo = csvRepo.New(cfg.CSV.Path, logger)
	}

	// 4. Schedule UseCase
	scheduleUC := usecase.New(repo, logger, cfg.Cache.HistorySize, cfg.Cache.HistoryTTL)

	// 5. Periodic refresh
	if cfg.Refresh.Enabled {
		r, rErr := refresher.New(scheduleUC, cfg.Refresh.Interval, logger)
		if rErr != nil {
			logger.Error(ctx, "Failed to initialize refresher: ", rErr)
			return
		}
		go r.Run(ctx)
	} else {
		logger.Warn(ctx, "Periodic refresh disabled, data loads only via POST /api/v1/schedule/refresh")
	}

	// 6. Sheet-change webhook (optional)
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled && cfg.Webhook.Secret != "" {
		validator := webhook.NewSecurityValidator(webhook.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		})
		webhookHandler = webhook.NewHandler(scheduleUC, validator, logger)
		logger.Info(ctx, "✅ Sheet webhook enabled")
	} else {
		logger.Warn(ctx, "Sheet webhook skipped: webhook.enabled is false or WEBHOOK_SECRET is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ScheduleUseCase: scheduleUC,
		WebhookHandler:  webhookHandler,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
