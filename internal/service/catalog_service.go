package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/dulceandina/panela-backend/internal/analytics"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/dulceandina/panela-backend/internal/repository"
)

// PagedResult carries one page of a listing plus the paging envelope.
type PagedResult[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}

func newPagedResult[T any](items []T, total, page, limit int) *PagedResult[T] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	totalPages := (total + limit - 1) / limit
	return &PagedResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

// CatalogService serves the read-only listings behind the dashboard tables.
type CatalogService struct {
	repo repository.CatalogRepository
}

func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListLots(ctx context.Context, filter repository.LotFilter) (*PagedResult[domain.Lot], error) {
	lots, total, err := s.repo.ListLots(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list lots: %w", err)
	}
	return newPagedResult(lots, total, filter.Page, filter.Limit), nil
}

func (s *CatalogService) ListSuppliers(ctx context.Context, filter repository.SupplierFilter) (*PagedResult[domain.Supplier], error) {
	suppliers, total, err := s.repo.ListSuppliers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	return newPagedResult(suppliers, total, filter.Page, filter.Limit), nil
}

// ListSupplyItems serves the supply catalog. With LowStock set, the active
// items are loaded and the two-column threshold check, search, and paging
// run in memory.
func (s *CatalogService) ListSupplyItems(ctx context.Context, filter repository.SupplyFilter) (*PagedResult[domain.SupplyItem], error) {
	if !filter.LowStock {
		items, total, err := s.repo.ListSupplyItems(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list supply items: %w", err)
		}
		return newPagedResult(items, total, filter.Page, filter.Limit), nil
	}

	active, err := s.repo.ActiveSupplyItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("low stock supply items: %w", err)
	}

	low := analytics.LowStock(active)
	if filter.Search != "" {
		low = filterSupplySearch(low, filter.Search)
	}

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	total := len(low)
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return newPagedResult(low[start:end], total, page, limit), nil
}

func filterSupplySearch(items []domain.SupplyItem, search string) []domain.SupplyItem {
	needle := strings.ToLower(search)
	matched := make([]domain.SupplyItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matched = append(matched, item)
			continue
		}
		if item.Description != nil && strings.Contains(strings.ToLower(*item.Description), needle) {
			matched = append(matched, item)
		}
	}
	return matched
}
