package domain

import "errors"

// ErrNotFound marks a single-record lookup that matched nothing.
var ErrNotFound = errors.New("record not found")

// CostTotals carries the five production cost categories, either for a
// single lot or summed across a window. The category set is closed: adding
// a sixth cost requires extending this type and DecomposeCosts explicitly.
type CostTotals struct {
	Cane      float64 `db:"cane"`
	Labor     float64 `db:"labor"`
	Energy    float64 `db:"energy"`
	Packaging float64 `db:"packaging"`
	Transport float64 `db:"transport"`
}

// Grand returns the sum of all five categories.
func (c CostTotals) Grand() float64 {
	return c.Cane + c.Labor + c.Energy + c.Packaging + c.Transport
}

// Costs returns the lot's five cost categories.
func (l Lot) Costs() CostTotals {
	return CostTotals{
		Cane:      l.CaneCost,
		Labor:     l.LaborCost,
		Energy:    l.EnergyCost,
		Packaging: l.PackagingCost,
		Transport: l.TransportCost,
	}
}

// SuggestedPrice applies a profit margin percentage to a total cost.
func SuggestedPrice(totalCost, marginPct float64) float64 {
	return totalCost * (1 + marginPct/100)
}

// UnitCost returns cost per kg, zero when quantity is zero.
func UnitCost(totalCost, quantity float64) float64 {
	if quantity <= 0 {
		return 0
	}
	return totalCost / quantity
}

// Profitability returns the margin of a sale price over a total cost as a
// percentage, zero when the cost is zero.
func Profitability(salePrice, totalCost float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return (salePrice - totalCost) / totalCost * 100
}
