package webhook

import (
	"classroom-occupancy/internal/schedule"
	pkgLog "classroom-occupancy/pkg/log"
)

// Handler accepts sheet-change push notifications and triggers refreshes.
type Handler struct {
	uc        schedule.UseCase
	validator *SecurityValidator
	l         pkgLog.Logger
}

func NewHandler(uc schedule.UseCase, validator *SecurityValidator, l pkgLog.Logger) *Handler {
	return &Handler{
		uc:        uc,
		validator: validator,
		l:         l,
	}
}
