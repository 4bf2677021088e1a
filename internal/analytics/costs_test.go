package analytics

import (
	"math"
	"testing"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestDecomposeCostsSingleLot(t *testing.T) {
	// One lot with only cane and labor costs.
	shares := DecomposeCosts(domain.CostTotals{Cane: 100000, Labor: 50000})

	require.Len(t, shares, 2)
	require.Equal(t, CategoryCane, shares[0].Category)
	require.InDelta(t, 66.7, shares[0].Percentage, 0.05)
	require.Equal(t, CategoryLabor, shares[1].Category)
	require.InDelta(t, 33.3, shares[1].Percentage, 0.05)

	sum := shares[0].Percentage + shares[1].Percentage
	require.InDelta(t, 100, sum, 1e-9)
}

func TestDecomposeCostsSortsDescendingAndOmitsZeros(t *testing.T) {
	shares := DecomposeCosts(domain.CostTotals{
		Cane:      200,
		Labor:     0,
		Energy:    500,
		Packaging: 300,
		Transport: 0,
	})

	require.Len(t, shares, 3)
	require.Equal(t, []string{CategoryEnergy, CategoryPackaging, CategoryCane}, []string{
		shares[0].Category, shares[1].Category, shares[2].Category,
	})
	for _, s := range shares {
		require.Greater(t, s.Total, 0.0)
		require.False(t, math.IsNaN(s.Percentage) || math.IsInf(s.Percentage, 0))
	}
}

func TestDecomposeCostsPercentagesSumTo100(t *testing.T) {
	shares := DecomposeCosts(domain.CostTotals{
		Cane:      123.45,
		Labor:     67.89,
		Energy:    0.01,
		Packaging: 999,
		Transport: 42,
	})

	var sum float64
	for _, s := range shares {
		sum += s.Percentage
	}
	require.InDelta(t, 100, sum, 1e-9)
}

func TestDecomposeCostsEmptyWindow(t *testing.T) {
	shares := DecomposeCosts(domain.CostTotals{})

	require.NotNil(t, shares)
	require.Empty(t, shares)
}
