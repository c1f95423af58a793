package httpserver

import (
	"context"

	"classroom-occupancy/internal/middleware"
	"classroom-occupancy/internal/model"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimitPerMin)
	api := srv.gin.Group("/api/v1")

	if err := srv.setupScheduleDomain(ctx, api, mw); err != nil {
		return err
	}

	if srv.webhookHandler != nil {
		srv.gin.POST("/webhook/sheet", srv.webhookHandler.HandleSheetWebhook)
		srv.l.Infof(ctx, "Sheet webhook route registered at POST /webhook/sheet")
	} else {
		srv.l.Infof(ctx, "Webhook handler not configured, skipping sheet webhook route")
	}

	return nil
}
