package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"svt_viewer/internal/hub"
	"svt_viewer/internal/models"
	"svt_viewer/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK = "ok"

	errListThermostats = "failed to load thermostats"
	errGetThermostat   = "failed to load thermostat"
	errRefresh         = "failed to refresh thermostats"
	errHubUnavailable  = "home-automation hub unavailable"
	errInvalidID       = "invalid thermostat id"
	errNotFound        = "thermostat not found"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(requestIDKey)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// aggregationError maps a failed aggregation onto a response. Hub failures
// are reported as a bad gateway.
func (h *Handler) aggregationError(c *gin.Context, userMsg, logKey string, err error, kv ...interface{}) {
	switch {
	case hub.IsTransport(err) || hub.IsMalformed(err):
		h.logAndJSONError(c, http.StatusBadGateway, errHubUnavailable, logKey, err, kv...)
	case errors.Is(err, context.DeadlineExceeded):
		h.logAndJSONError(c, http.StatusGatewayTimeout, errHubUnavailable, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, userMsg, logKey, err, kv...)
	}
}

// ThermostatList is the response of the list and refresh endpoints.
type ThermostatList struct {
	RunID       string              `json:"run_id" example:"3f1c8e0a-6a51-4c1f-9a3e-0d2b1f7c9e11"`
	TakenAt     string              `json:"taken_at" example:"2024-01-10T12:00:00Z"`
	Count       int                 `json:"count" example:"1"`
	Thermostats []models.Thermostat `json:"thermostats"`
	Diagnostics []models.Diagnostic `json:"diagnostics,omitempty"`
}

func toThermostatList(s models.Snapshot) ThermostatList {
	list := ThermostatList{
		RunID:       s.RunID,
		Count:       len(s.Thermostats),
		Thermostats: s.Thermostats,
		Diagnostics: s.Diagnostics,
	}
	if !s.TakenAt.IsZero() {
		list.TakenAt = s.TakenAt.UTC().Format(time.RFC3339)
	}
	if list.Thermostats == nil {
		list.Thermostats = []models.Thermostat{}
	}
	return list
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      List thermostats
// @Description  Thermostats of the latest aggregation run. Runs an aggregation first when none is stored yet.
// @Tags         thermostats
// @Produce      json
// @Success      200  {object}  ThermostatList
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/thermostats [get]
func (h *Handler) listThermostats(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.services.Catalog.List(ctx)
	if err != nil {
		h.aggregationError(c, errListThermostats, "thermostats_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, toThermostatList(snap))
}

// @Summary      Get thermostat
// @Tags         thermostats
// @Produce      json
// @Param        id   path      int  true  "Hardware id of the thermostat"
// @Success      200  {object}  models.Thermostat
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/thermostats/{id} [get]
func (h *Handler) getThermostat(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidID})
		return
	}
	ctx := c.Request.Context()
	th, err := h.services.Catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrThermostatNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
			return
		}
		h.aggregationError(c, errGetThermostat, "thermostat_get_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, th)
}

// @Summary      Refresh thermostats
// @Description  Runs an aggregation now and stores it as the latest snapshot.
// @Tags         thermostats
// @Produce      json
// @Success      200  {object}  ThermostatList
// @Failure      500  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/thermostats/refresh [post]
func (h *Handler) refreshThermostats(c *gin.Context) {
	ctx := c.Request.Context()
	snap, err := h.services.Catalog.Refresh(ctx)
	if err != nil {
		h.aggregationError(c, errRefresh, "aggregation_failed", err)
		return
	}
	c.JSON(http.StatusOK, toThermostatList(snap))
}
