package http

import (
	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/pkg/log"
)

// Handler is the public interface for the schedule HTTP delivery layer.
type Handler interface {
	ListValid(c *gin.Context)
	ListInvalid(c *gin.Context)
	Stats(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc schedule.UseCase
}

// New creates a new HTTP handler for the schedule domain.
func New(l log.Logger, uc schedule.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
