package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/internal/webhook"
	"classroom-occupancy/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Schedule domain
	scheduleUC schedule.UseCase

	// Sheet-change push notifications
	webhookHandler *webhook.Handler

	// API rate limit
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ScheduleUseCase schedule.UseCase
	WebhookHandler  *webhook.Handler
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		scheduleUC:      cfg.ScheduleUseCase,
		webhookHandler:  cfg.WebhookHandler,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	return nil
}
