package http

import (
	"github.com/gin-gonic/gin"
)

// processListValidReq binds and validates the list query parameters.
func (h *handler) processListValidReq(c *gin.Context) (listValidReq, error) {
	var req listValidReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	// Distinguish "start_hour=0" from an absent parameter.
	_, req.hasStartHour = c.GetQuery("start_hour")
	return req, req.validate()
}
