package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"classroom-occupancy/internal/schedule"
	pkgResponse "classroom-occupancy/pkg/response"
)

// HandleSheetWebhook processes sheet-change push notifications. The refresh
// runs in the background so the caller is acknowledged immediately.
func (h *Handler) HandleSheetWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.validator.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Forbidden(c)
		return
	}

	if err := h.validator.CheckRateLimit(c.ClientIP()); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.TooManyRequests(c)
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "webhook: failed to read body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if err := h.validator.ValidateSignature(body, c.GetHeader("X-Sheet-Signature")); err != nil {
		h.l.Warnf(ctx, "webhook: %v", err)
		pkgResponse.Unauthorized(c)
		return
	}

	var payload SheetChangePayload
	if err := json.Unmarshal(body, &payload); err != nil {
		h.l.Errorf(ctx, "webhook: failed to parse payload: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	h.l.Infof(ctx, "webhook: received %s for spreadsheet %s", payload.ChangeType, payload.SpreadsheetID)

	// Process in background to avoid blocking the notifier
	go func() {
		// Bounded so an unresponsive source cannot leak the goroutine
		bgCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		out, err := h.uc.Refresh(bgCtx)
		switch {
		case errors.Is(err, schedule.ErrRefreshInFlight):
			h.l.Infof(bgCtx, "webhook: refresh already running, notification coalesced")
		case err != nil:
			h.l.Errorf(bgCtx, "webhook: refresh failed: %v", err)
		default:
			h.l.Infof(bgCtx, "webhook: refresh run %s published version %d", out.RunID, out.Version)
		}
	}()

	// Acknowledge immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}
