package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dulceandina/panela-backend/internal/analytics"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AnalyticsProvider is the slice of the analytics service the handler uses.
type AnalyticsProvider interface {
	GetReport(ctx context.Context, months int) (*domain.AnalyticsReport, error)
	GetInventoryStats(ctx context.Context) (*domain.InventoryStats, error)
	GetProcurementStats(ctx context.Context) (*domain.ProcurementStats, error)
	GetSalesStats(ctx context.Context) ([]domain.SalesStatPoint, error)
}

type AnalyticsHandler struct {
	service AnalyticsProvider
}

func NewAnalyticsHandler(service AnalyticsProvider) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// GetReport serves GET /analytics?months=N. Out-of-range months are clamped,
// not rejected.
func (h *AnalyticsHandler) GetReport(c *gin.Context) {
	months := analytics.DefaultMonthsBack
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			errorResponse(c, http.StatusBadRequest, "months must be an integer")
			return
		}
		months = parsed
	}

	report, err := h.service.GetReport(c.Request.Context(), months)
	if err != nil {
		log.Error().Err(err).Int("months", months).Msg("analytics report failed")
		errorResponse(c, http.StatusInternalServerError, "could not build analytics report")
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *AnalyticsHandler) GetInventoryStats(c *gin.Context) {
	stats, err := h.service.GetInventoryStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("inventory stats failed")
		errorResponse(c, http.StatusInternalServerError, "could not load inventory stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetProcurementStats(c *gin.Context) {
	stats, err := h.service.GetProcurementStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("procurement stats failed")
		errorResponse(c, http.StatusInternalServerError, "could not load procurement stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) GetSalesStats(c *gin.Context) {
	points, err := h.service.GetSalesStats(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("sales stats failed")
		errorResponse(c, http.StatusInternalServerError, "could not load sales stats")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": points})
}
