package http

import (
	"github.com/gin-gonic/gin"

	"classroom-occupancy/pkg/response"
)

// ListValid godoc
// @Summary     List valid schedule rows
// @Description Returns the cleaned schedule with derived time fields, optionally filtered.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       hall       query string false "Filter by hall"
// @Param       days       query string false "Filter by canonical day token (e.g. MWF)"
// @Param       start_hour query int    false "Filter by start hour (0-23)"
// @Param       version    query int    false "Read a retained snapshot version (default: current)"
// @Success     200 {object} listValidResp
// @Failure     404 {object} response.Resp "No dataset loaded yet or version not retained"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/valid [GET]
func (h *handler) ListValid(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListValidReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ListValid(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListValid: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListValidResp(output))
}

// ListInvalid godoc
// @Summary     List rejected schedule rows
// @Description Returns rows excluded from analysis, each with its rejection reason.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} listInvalidResp
// @Failure     404 {object} response.Resp "No dataset loaded yet"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/invalid [GET]
func (h *handler) ListInvalid(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListInvalid(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListInvalid: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newListInvalidResp(output))
}

// Stats godoc
// @Summary     Occupancy statistics
// @Description Returns classes per hall, occupied minutes per hall and the start-hour histogram.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     404 {object} response.Resp "No dataset loaded yet"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}

// Refresh godoc
// @Summary     Trigger a refresh
// @Description Pulls a fresh table from the data source and replaces the dataset.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Success     200 {object} refreshResp
// @Failure     409 {object} response.Resp "Refresh already in progress"
// @Failure     422 {object} response.Resp "Source table is missing required columns"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Refresh(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newRefreshResp(output))
}
