package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/schedule"
	"classroom-occupancy/pkg/response"
)

// mapError translates domain/use-case errors into HTTP responses.
// Per-row rejections never reach here: they are data, not errors.
func (h *handler) mapError(c *gin.Context, err error) {
	var mc *schedule.MissingColumnsError
	switch {
	case errors.As(err, &mc):
		// Actionable payload for the display layer's error banner.
		response.ErrorWithStatus(c, http.StatusUnprocessableEntity, mc, map[string]interface{}{
			"missing_columns": mc.Columns,
		})
	case errors.Is(err, schedule.ErrRefreshInFlight):
		response.ErrorWithStatus(c, http.StatusConflict, err, nil)
	case errors.Is(err, schedule.ErrNoDataset), errors.Is(err, schedule.ErrVersionNotFound):
		response.ErrorWithStatus(c, http.StatusNotFound, err, nil)
	default:
		response.InternalError(c, err)
	}
}
