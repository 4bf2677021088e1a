package domain

import "testing"

func TestGrandTotalSumsFiveCategories(t *testing.T) {
	c := CostTotals{Cane: 1, Labor: 2, Energy: 3, Packaging: 4, Transport: 5}
	if got := c.Grand(); got != 15 {
		t.Fatalf("grand total = %v, want 15", got)
	}
}

func TestSuggestedPrice(t *testing.T) {
	if got := SuggestedPrice(100000, 20); got != 120000 {
		t.Fatalf("suggested price = %v, want 120000", got)
	}
}

func TestUnitCostZeroQuantity(t *testing.T) {
	if got := UnitCost(5000, 0); got != 0 {
		t.Fatalf("unit cost with zero quantity = %v, want 0", got)
	}
	if got := UnitCost(5000, 100); got != 50 {
		t.Fatalf("unit cost = %v, want 50", got)
	}
}

func TestSuggestedUnitPriceFromLotTotals(t *testing.T) {
	// Per-kg suggested price for a lot: unit cost plus the margin. This is
	// the composition the seeder uses when pricing generated lots.
	got := SuggestedPrice(UnitCost(500000, 250), 20)
	if got != 2400 {
		t.Fatalf("suggested unit price = %v, want 2400", got)
	}
}

func TestProfitabilityZeroCostGuard(t *testing.T) {
	if got := Profitability(8000, 0); got != 0 {
		t.Fatalf("profitability with zero cost = %v, want 0", got)
	}
	if got := Profitability(120000, 100000); got != 20 {
		t.Fatalf("profitability = %v, want 20", got)
	}
}
