package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"svt_viewer/internal/models"
	"svt_viewer/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid  = "invalid 'from' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	errToInvalid    = "invalid 'to' time; use RFC3339, 'YYYY-MM-DD HH:MM:SS' or YYYY-MM-DD"
	errStageInvalid = "invalid 'stage'; use CHANNELS, INDOOR, OUTDOOR, HEATER or SETPOINT"
	errRangeInvalid = "'from' must be <= 'to'"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

var knownStages = map[string]bool{
	models.StageChannels: true,
	models.StageIndoor:   true,
	models.StageOutdoor:  true,
	models.StageHeater:   true,
	models.StageSetpoint: true,
}

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List aggregation diagnostics
// @Description  Filter diagnostics by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). If 'to' is date-only, it is treated as end-of-day inclusive (23:59:59.999999999Z).
// @Tags         diagnostics
// @Produce      json
// @Param        from    query   string  false  "Start of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD')"  example(2024-01-01)
// @Param        to      query   string  false  "End of range (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD'). Date-only treated as end of day."  example(2024-01-31)
// @Param        stage   query   string  false  "Pipeline stage"  Enums(CHANNELS,INDOOR,OUTDOOR,HEATER,SETPOINT)
// @Param        run_id  query   string  false  "Aggregation run id"
// @Success      200     {object}  map[string]interface{}  "count, diagnostics"
// @Failure      400     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/diagnostics [get]
func (h *Handler) getDiagnostics(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		from  time.Time
		to    time.Time
		stage = strings.ToUpper(strings.TrimSpace(c.Query("stage")))
		runID = strings.TrimSpace(c.Query("run_id"))
		err   error
	)
	if qs := c.Query("from"); qs != "" {
		from, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		to, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		// A bare date covers the whole day.
		if isDateOnly(qs) {
			to = to.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if stage != "" && !knownStages[stage] {
		c.JSON(http.StatusBadRequest, gin.H{"error": errStageInvalid})
		return
	}

	diags, err := h.services.Diagnostics.List(ctx, service.DiagnosticFilter{
		From:  from,
		To:    to,
		Stage: stage,
		RunID: runID,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTimeRange) {
			c.JSON(http.StatusBadRequest, gin.H{"error": errRangeInvalid})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, "failed to load diagnostics",
			"diagnostics_list_failed", err, "from", from, "to", to, "stage", stage)
		return
	}
	if diags == nil {
		diags = []models.Diagnostic{}
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(diags),
		"diagnostics": diags,
	})
}

func parseQueryTime(s string) (time.Time, error) {
	// Try multiple accepted formats, normalizing to UTC.
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2024-01-10T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
