package http

import (
	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.GET("/valid", mw.RateLimit(), h.ListValid)
	rg.GET("/invalid", mw.RateLimit(), h.ListInvalid)
	rg.GET("/stats", mw.RateLimit(), h.Stats)
	rg.POST("/refresh", mw.RateLimit(), h.Refresh)
}
