package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/dulceandina/panela-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalogRepo struct {
	lots     []domain.Lot
	items    []domain.SupplyItem
	active   []domain.SupplyItem
	failWith error
}

func (s *stubCatalogRepo) ListLots(ctx context.Context, filter repository.LotFilter) ([]domain.Lot, int, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}
	return s.lots, len(s.lots), nil
}

func (s *stubCatalogRepo) ListSuppliers(ctx context.Context, filter repository.SupplierFilter) ([]domain.Supplier, int, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}
	return nil, 0, nil
}

func (s *stubCatalogRepo) ListSupplyItems(ctx context.Context, filter repository.SupplyFilter) ([]domain.SupplyItem, int, error) {
	if s.failWith != nil {
		return nil, 0, s.failWith
	}
	return s.items, len(s.items), nil
}

func (s *stubCatalogRepo) ActiveSupplyItems(ctx context.Context) ([]domain.SupplyItem, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.active, nil
}

func supplyItem(name string, current, minimum float64) domain.SupplyItem {
	return domain.SupplyItem{
		ID:           name,
		Name:         name,
		Unit:         "unidades",
		MinimumStock: minimum,
		CurrentStock: current,
		Active:       true,
	}
}

func TestListSupplyItemsLowStockFilters(t *testing.T) {
	repo := &stubCatalogRepo{
		active: []domain.SupplyItem{
			supplyItem("Bolsas de 500g", 40, 100),
			supplyItem("Etiquetas adhesivas", 200, 50),
			supplyItem("Cajas de cartón", 20, 20),
		},
	}
	svc := NewCatalogService(repo)

	result, err := svc.ListSupplyItems(context.Background(), repository.SupplyFilter{LowStock: true})
	require.NoError(t, err)

	require.Len(t, result.Items, 2)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "Bolsas de 500g", result.Items[0].Name)
	assert.Equal(t, "Cajas de cartón", result.Items[1].Name)
}

func TestListSupplyItemsLowStockSearch(t *testing.T) {
	repo := &stubCatalogRepo{
		active: []domain.SupplyItem{
			supplyItem("Bolsas de 500g", 40, 100),
			supplyItem("Cajas de cartón", 5, 20),
		},
	}
	svc := NewCatalogService(repo)

	result, err := svc.ListSupplyItems(context.Background(), repository.SupplyFilter{
		LowStock: true,
		Search:   "cajas",
	})
	require.NoError(t, err)

	require.Len(t, result.Items, 1)
	assert.Equal(t, "Cajas de cartón", result.Items[0].Name)
}

func TestListSupplyItemsLowStockPaging(t *testing.T) {
	repo := &stubCatalogRepo{}
	for i := 0; i < 25; i++ {
		repo.active = append(repo.active, supplyItem(string(rune('a'+i)), 1, 10))
	}
	svc := NewCatalogService(repo)

	result, err := svc.ListSupplyItems(context.Background(), repository.SupplyFilter{
		LowStock: true,
		Page:     3,
		Limit:    10,
	})
	require.NoError(t, err)

	assert.Equal(t, 25, result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Items, 5)
}

func TestListSupplyItemsLowStockPageBeyondEnd(t *testing.T) {
	repo := &stubCatalogRepo{active: []domain.SupplyItem{supplyItem("Bolsas", 1, 10)}}
	svc := NewCatalogService(repo)

	result, err := svc.ListSupplyItems(context.Background(), repository.SupplyFilter{
		LowStock: true,
		Page:     9,
		Limit:    10,
	})
	require.NoError(t, err)

	assert.Empty(t, result.Items)
	assert.Equal(t, 1, result.Total)
}

func TestListSupplyItemsRepositoryError(t *testing.T) {
	repo := &stubCatalogRepo{failWith: errors.New("db down")}
	svc := NewCatalogService(repo)

	_, err := svc.ListSupplyItems(context.Background(), repository.SupplyFilter{LowStock: true})
	assert.Error(t, err)
}

func TestListLotsWrapsResult(t *testing.T) {
	repo := &stubCatalogRepo{lots: []domain.Lot{{ID: "l-1", Code: "LOTE-001"}}}
	svc := NewCatalogService(repo)

	result, err := svc.ListLots(context.Background(), repository.LotFilter{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "LOTE-001", result.Items[0].Code)
}
