package analytics

import "github.com/dulceandina/panela-backend/internal/domain"

// LowStock returns the supply items whose current stock is at or below
// their configured minimum (boundary inclusive). The predicate compares two
// fields of the same record, which the store cannot express as a literal
// filter, so candidates are classified here in memory. Read-only: no alert
// is dispatched and nothing is mutated.
func LowStock(items []domain.SupplyItem) []domain.SupplyItem {
	low := make([]domain.SupplyItem, 0, len(items))
	for _, item := range items {
		if item.CurrentStock <= item.MinimumStock {
			low = append(low, item)
		}
	}
	return low
}
