package domain

// MonthlyProduction is one calendar-month point of the production series.
type MonthlyProduction struct {
	Month    string  `json:"month"`
	Quantity float64 `json:"quantity"`
	Lots     int     `json:"lots"`
	Cost     float64 `json:"cost"`
}

// MonthlySales is one calendar-month point of the sales series.
type MonthlySales struct {
	Month    string  `json:"month"`
	Quantity float64 `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Sales    int     `json:"sales"`
}

// CostShare is one cost category's total and its share of the grand total.
type CostShare struct {
	Category   string  `json:"category"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
}

// StateComparison aggregates lots per lifecycle state over all time.
type StateComparison struct {
	Status   string  `json:"status"`
	Lots     int     `json:"lots"`
	Quantity float64 `json:"quantity"`
	Value    float64 `json:"value"`
}

// MonthlyProfitability combines one month's costs and revenue.
type MonthlyProfitability struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Costs   float64 `json:"costs"`
	Profit  float64 `json:"profit"`
	Margin  float64 `json:"margin"`
}

// SupplierRank is one entry of the top-suppliers ranking.
type SupplierRank struct {
	SupplierID string  `json:"supplier_id"`
	Name       string  `json:"name"`
	Purchases  int     `json:"purchases"`
	Total      float64 `json:"total"`
}

// OperatorRank is one entry of the operator performance ranking.
type OperatorRank struct {
	OperatorID string  `json:"operator_id"`
	Name       string  `json:"name"`
	Lots       int     `json:"lots"`
	Quantity   float64 `json:"quantity"`
}

// AnalyticsReport is the full assembled payload, keyed by metric family.
type AnalyticsReport struct {
	MonthsBack           int                    `json:"months_back"`
	MonthlyProduction    []MonthlyProduction    `json:"monthly_production"`
	MonthlySales         []MonthlySales         `json:"monthly_sales"`
	CostBreakdown        []CostShare            `json:"cost_breakdown"`
	StateComparison      []StateComparison      `json:"state_comparison"`
	MonthlyProfitability []MonthlyProfitability `json:"monthly_profitability"`
	TopSuppliers         []SupplierRank         `json:"top_suppliers"`
	OperatorPerformance  []OperatorRank         `json:"operator_performance"`
}

// ProductionAggregate is the sum/count of lots matching a time range.
// Fields are zero, never null, when no rows match.
type ProductionAggregate struct {
	Quantity float64 `db:"quantity"`
	Cost     float64 `db:"cost"`
	Lots     int     `db:"lots"`
}

// SalesAggregate is the sum/count of sales matching a time range.
type SalesAggregate struct {
	Quantity float64 `db:"quantity"`
	Revenue  float64 `db:"revenue"`
	Count    int     `db:"count"`
}

// PurchaseAggregate is the sum/count of raw-cane purchases matching a time
// range.
type PurchaseAggregate struct {
	Quantity float64 `json:"quantity" db:"quantity"`
	Total    float64 `json:"total" db:"total"`
	Count    int     `json:"count" db:"count"`
}

// SupplyMovementAggregate sums supply stock movements per direction over a
// time range.
type SupplyMovementAggregate struct {
	QuantityIn  float64 `json:"quantity_in" db:"quantity_in"`
	QuantityOut float64 `json:"quantity_out" db:"quantity_out"`
	Movements   int     `json:"movements" db:"movements"`
}

// ProcurementStats is the dashboard procurement panel: purchases and supply
// movements over the default window.
type ProcurementStats struct {
	Purchases PurchaseAggregate       `json:"purchases"`
	Movements SupplyMovementAggregate `json:"movements"`
}

// GroupAggregate is a per-owner count/sum produced by a group-by read.
type GroupAggregate struct {
	Key   string  `db:"key"`
	Count int     `db:"count"`
	Total float64 `db:"total"`
}

// StateGroup is the per-lifecycle-state aggregate of the lot table.
type StateGroup struct {
	Status   string  `db:"status"`
	Lots     int     `db:"lots"`
	Quantity float64 `db:"quantity"`
	Value    float64 `db:"value"`
}

// InventoryStats counts lots per lifecycle state for the dashboard cards.
type InventoryStats struct {
	Available    int `json:"available"`
	InProduction int `json:"in_production"`
	Sold         int `json:"sold"`
	Expired      int `json:"expired"`
}

// SalesStatPoint is one month of the dashboard production-vs-sales chart.
type SalesStatPoint struct {
	Month      string  `json:"month"`
	Production float64 `json:"production"`
	Sales      float64 `json:"sales"`
}
