package analytics

import (
	"testing"

	"github.com/dulceandina/panela-backend/internal/domain"
)

func TestLowStockBoundaryInclusive(t *testing.T) {
	items := []domain.SupplyItem{
		{ID: "a", Name: "Bolsas de 500g", CurrentStock: 5, MinimumStock: 10},
		{ID: "b", Name: "Etiquetas adhesivas", CurrentStock: 10, MinimumStock: 10},
		{ID: "c", Name: "Cajas de cartón", CurrentStock: 11, MinimumStock: 10},
	}

	low := LowStock(items)
	if len(low) != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", len(low))
	}
	if low[0].ID != "a" || low[1].ID != "b" {
		t.Errorf("unexpected low-stock selection: %v", low)
	}
}

func TestLowStockEmptyInput(t *testing.T) {
	low := LowStock(nil)
	if low == nil || len(low) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", low)
	}
}
