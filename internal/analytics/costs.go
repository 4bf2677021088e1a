package analytics

import (
	"sort"

	"github.com/dulceandina/panela-backend/internal/domain"
)

// Display labels for the five cost categories.
const (
	CategoryCane      = "Caña"
	CategoryLabor     = "Mano de Obra"
	CategoryEnergy    = "Energía"
	CategoryPackaging = "Empaques"
	CategoryTransport = "Transporte"
)

// DecomposeCosts turns window-wide category totals into shares of the grand
// total, sorted descending by total. Categories with a zero total are
// omitted entirely. When the grand total is zero the result is empty and no
// division happens.
func DecomposeCosts(totals domain.CostTotals) []domain.CostShare {
	grand := totals.Grand()
	if grand <= 0 {
		return []domain.CostShare{}
	}

	entries := []domain.CostShare{
		{Category: CategoryCane, Total: totals.Cane},
		{Category: CategoryLabor, Total: totals.Labor},
		{Category: CategoryEnergy, Total: totals.Energy},
		{Category: CategoryPackaging, Total: totals.Packaging},
		{Category: CategoryTransport, Total: totals.Transport},
	}

	shares := make([]domain.CostShare, 0, len(entries))
	for _, e := range entries {
		if e.Total <= 0 {
			continue
		}
		e.Percentage = e.Total / grand * 100
		shares = append(shares, e)
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Total > shares[j].Total
	})

	return shares
}
