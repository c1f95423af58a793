package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/middleware"
	scheduleHTTP "classroom-occupancy/internal/schedule/delivery/http"
)

// setupScheduleDomain initializes the schedule domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  2. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, mw)
func (srv *HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC)

	// Registers /api/v1/schedule/{valid,invalid,stats,refresh}
	scheduleHTTP.RegisterRoutes(api.Group("/schedule"), h, mw)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
