package analytics

// Profitability combines one bucket's total costs and revenue. Margin is a
// percentage of costs and is zero when costs are zero, so the result is
// always finite.
func Profitability(costs, revenue float64) (profit, margin float64) {
	profit = revenue - costs
	if costs > 0 {
		margin = profit / costs * 100
	}
	return profit, margin
}
