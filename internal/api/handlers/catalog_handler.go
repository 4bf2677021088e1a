package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/dulceandina/panela-backend/internal/repository"
	"github.com/dulceandina/panela-backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CatalogProvider is the slice of the catalog service the handler uses.
type CatalogProvider interface {
	ListLots(ctx context.Context, filter repository.LotFilter) (*service.PagedResult[domain.Lot], error)
	ListSuppliers(ctx context.Context, filter repository.SupplierFilter) (*service.PagedResult[domain.Supplier], error)
	ListSupplyItems(ctx context.Context, filter repository.SupplyFilter) (*service.PagedResult[domain.SupplyItem], error)
}

type CatalogHandler struct {
	service CatalogProvider
}

func NewCatalogHandler(service CatalogProvider) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func parsePaging(c *gin.Context) (int, int) {
	page := 1
	if parsed, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && parsed > 0 {
		page = parsed
	}

	limit := 10
	if parsed, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && parsed > 0 {
		limit = parsed
	}

	return page, limit
}

func parseBoolParam(c *gin.Context, name string) *bool {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}

func (h *CatalogHandler) ListLots(c *gin.Context) {
	page, limit := parsePaging(c)
	filter := repository.LotFilter{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(c.Query("search")),
	}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		code := strings.ToUpper(status)
		if !domain.ValidLotStatus(code) {
			// Also accept the Spanish labels the frontend shows.
			parsed, ok := domain.ParseLotStatus(status)
			if !ok {
				errorResponse(c, http.StatusBadRequest, "unknown lot status")
				return
			}
			code = parsed
		}
		filter.Status = code
	}

	result, err := h.service.ListLots(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("lot listing failed")
		errorResponse(c, http.StatusInternalServerError, "could not list lots")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	page, limit := parsePaging(c)
	filter := repository.SupplierFilter{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(c.Query("search")),
		Active: parseBoolParam(c, "active"),
	}

	result, err := h.service.ListSuppliers(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("supplier listing failed")
		errorResponse(c, http.StatusInternalServerError, "could not list suppliers")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *CatalogHandler) ListSupplyItems(c *gin.Context) {
	page, limit := parsePaging(c)
	filter := repository.SupplyFilter{
		Page:   page,
		Limit:  limit,
		Search: strings.TrimSpace(c.Query("search")),
		Active: parseBoolParam(c, "active"),
	}

	if low, err := strconv.ParseBool(c.DefaultQuery("low_stock", "false")); err == nil {
		filter.LowStock = low
	}

	result, err := h.service.ListSupplyItems(c.Request.Context(), filter)
	if err != nil {
		log.Error().Err(err).Msg("supply listing failed")
		errorResponse(c, http.StatusInternalServerError, "could not list supplies")
		return
	}

	c.JSON(http.StatusOK, result)
}
