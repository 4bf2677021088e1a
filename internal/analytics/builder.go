package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/dulceandina/panela-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// DefaultTopSuppliers bounds the supplier ranking when no override is set.
const DefaultTopSuppliers = 10

// Repository exposes the aggregate reads the report is assembled from. All
// operations are consistent single reads; the report is a best-effort
// snapshot, not a transactional view.
type Repository interface {
	ProductionAggregate(ctx context.Context, from, to time.Time) (domain.ProductionAggregate, error)
	SalesAggregate(ctx context.Context, from, to time.Time) (domain.SalesAggregate, error)
	PurchasesAggregate(ctx context.Context, from, to time.Time) (domain.PurchaseAggregate, error)
	SupplyMovementAggregate(ctx context.Context, from, to time.Time) (domain.SupplyMovementAggregate, error)
	CostTotals(ctx context.Context, from, to time.Time) (domain.CostTotals, error)
	LotStateGroups(ctx context.Context) ([]domain.StateGroup, error)
	PurchasesBySupplier(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error)
	LotsByOperator(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error)
	SupplierName(ctx context.Context, id string) (string, error)
	OperatorName(ctx context.Context, id string) (string, error)
}

// Builder assembles the analytics report out of independent aggregate reads.
type Builder struct {
	repo         Repository
	topSuppliers int
	topOperators int
	now          func() time.Time
}

// Option configures a Builder.
type Option func(*Builder)

// WithTopSuppliers overrides the supplier ranking size.
func WithTopSuppliers(n int) Option {
	return func(b *Builder) { b.topSuppliers = n }
}

// WithTopOperators bounds the operator ranking (0 keeps all operators).
func WithTopOperators(n int) Option {
	return func(b *Builder) { b.topOperators = n }
}

// WithClock replaces the wall clock, pinning bucket generation in tests.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) { b.now = now }
}

func NewBuilder(repo Repository, opts ...Option) *Builder {
	b := &Builder{
		repo:         repo,
		topSuppliers: DefaultTopSuppliers,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildReport assembles the full report for a monthsBack window. Every
// aggregate family is an independent read, so the bucket series and the
// window-wide families all fan out concurrently; the bucket series is
// reassembled by bucket index, never by completion order. Any failed read
// fails the whole report: a caller must be able to tell "no data" from
// "read failed", so errors are never flattened into zeros.
func (b *Builder) BuildReport(ctx context.Context, monthsBack int) (*domain.AnalyticsReport, error) {
	months := ClampMonthsBack(monthsBack)
	buckets := MonthBuckets(b.now(), months)
	windowStart := buckets[0].Start

	production := make([]domain.MonthlyProduction, len(buckets))
	sales := make([]domain.MonthlySales, len(buckets))
	profitability := make([]domain.MonthlyProfitability, len(buckets))

	var (
		breakdown    []domain.CostShare
		states       []domain.StateComparison
		topSuppliers []domain.SupplierRank
		operators    []domain.OperatorRank
	)

	g, ctx := errgroup.WithContext(ctx)

	for i, bucket := range buckets {
		g.Go(func() error {
			prod, err := b.repo.ProductionAggregate(ctx, bucket.Start, bucket.End)
			if err != nil {
				return fmt.Errorf("production aggregate %s: %w", bucket.Label, err)
			}
			sold, err := b.repo.SalesAggregate(ctx, bucket.Start, bucket.End)
			if err != nil {
				return fmt.Errorf("sales aggregate %s: %w", bucket.Label, err)
			}

			production[i] = domain.MonthlyProduction{
				Month:    bucket.Label,
				Quantity: prod.Quantity,
				Lots:     prod.Lots,
				Cost:     prod.Cost,
			}
			sales[i] = domain.MonthlySales{
				Month:    bucket.Label,
				Quantity: sold.Quantity,
				Revenue:  sold.Revenue,
				Sales:    sold.Count,
			}
			profit, margin := Profitability(prod.Cost, sold.Revenue)
			profitability[i] = domain.MonthlyProfitability{
				Month:   bucket.Label,
				Revenue: sold.Revenue,
				Costs:   prod.Cost,
				Profit:  profit,
				Margin:  margin,
			}
			return nil
		})
	}

	g.Go(func() error {
		totals, err := b.repo.CostTotals(ctx, windowStart, buckets[len(buckets)-1].End)
		if err != nil {
			return fmt.Errorf("cost totals: %w", err)
		}
		breakdown = DecomposeCosts(totals)
		return nil
	})

	g.Go(func() error {
		groups, err := b.repo.LotStateGroups(ctx)
		if err != nil {
			return fmt.Errorf("lot state groups: %w", err)
		}
		states = make([]domain.StateComparison, len(groups))
		for i, group := range groups {
			states[i] = domain.StateComparison{
				Status:   group.Status,
				Lots:     group.Lots,
				Quantity: group.Quantity,
				Value:    group.Value,
			}
		}
		return nil
	})

	g.Go(func() error {
		groups, err := b.repo.PurchasesBySupplier(ctx, windowStart)
		if err != nil {
			return fmt.Errorf("purchases by supplier: %w", err)
		}
		ranked, err := RankGroups(ctx, groups, b.repo.SupplierName, b.topSuppliers)
		if err != nil {
			return fmt.Errorf("rank suppliers: %w", err)
		}
		topSuppliers = make([]domain.SupplierRank, len(ranked))
		for i, r := range ranked {
			topSuppliers[i] = domain.SupplierRank{
				SupplierID: r.Key,
				Name:       r.Name,
				Purchases:  r.Count,
				Total:      r.Total,
			}
		}
		return nil
	})

	g.Go(func() error {
		groups, err := b.repo.LotsByOperator(ctx, windowStart)
		if err != nil {
			return fmt.Errorf("lots by operator: %w", err)
		}
		ranked, err := RankGroups(ctx, groups, b.repo.OperatorName, b.topOperators)
		if err != nil {
			return fmt.Errorf("rank operators: %w", err)
		}
		operators = make([]domain.OperatorRank, len(ranked))
		for i, r := range ranked {
			operators[i] = domain.OperatorRank{
				OperatorID: r.Key,
				Name:       r.Name,
				Lots:       r.Count,
				Quantity:   r.Total,
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &domain.AnalyticsReport{
		MonthsBack:           months,
		MonthlyProduction:    production,
		MonthlySales:         sales,
		CostBreakdown:        breakdown,
		StateComparison:      states,
		MonthlyProfitability: profitability,
		TopSuppliers:         topSuppliers,
		OperatorPerformance:  operators,
	}, nil
}
