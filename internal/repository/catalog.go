package repository

import (
	"context"

	"github.com/dulceandina/panela-backend/internal/domain"
)

// LotFilter selects lots for the paginated listing.
type LotFilter struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// SupplierFilter selects suppliers for the paginated listing.
type SupplierFilter struct {
	Page   int
	Limit  int
	Search string
	Active *bool
}

// SupplyFilter selects supply items for the paginated listing. LowStock is
// evaluated in memory by the service layer, not here.
type SupplyFilter struct {
	Page     int
	Limit    int
	Search   string
	Active   *bool
	LowStock bool
}

// CatalogRepository is the read-only access to the operational tables the
// listing endpoints expose. All mutation happens in the external CRUD layer.
type CatalogRepository interface {
	ListLots(ctx context.Context, filter LotFilter) ([]domain.Lot, int, error)
	ListSuppliers(ctx context.Context, filter SupplierFilter) ([]domain.Supplier, int, error)
	ListSupplyItems(ctx context.Context, filter SupplyFilter) ([]domain.SupplyItem, int, error)
	ActiveSupplyItems(ctx context.Context) ([]domain.SupplyItem, error)
}
