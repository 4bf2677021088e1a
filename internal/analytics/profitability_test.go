package analytics

import (
	"math"
	"testing"
)

func TestProfitability(t *testing.T) {
	cases := []struct {
		name       string
		costs      float64
		revenue    float64
		wantProfit float64
		wantMargin float64
	}{
		{"typical month", 200000, 250000, 50000, 25},
		{"loss", 100000, 80000, -20000, -20},
		{"zero costs with revenue", 0, 50000, 50000, 0},
		{"zero everything", 0, 0, 0, 0},
		{"zero revenue", 40000, 0, -40000, -100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			profit, margin := Profitability(tc.costs, tc.revenue)
			if profit != tc.wantProfit {
				t.Errorf("profit = %v, want %v", profit, tc.wantProfit)
			}
			if margin != tc.wantMargin {
				t.Errorf("margin = %v, want %v", margin, tc.wantMargin)
			}
			if math.IsNaN(margin) || math.IsInf(margin, 0) {
				t.Errorf("margin must be finite, got %v", margin)
			}
		})
	}
}
