package analytics

import (
	"context"
	"fmt"

	"github.com/dulceandina/panela-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// InventoryStats counts lots per lifecycle state for the dashboard cards.
func (b *Builder) InventoryStats(ctx context.Context) (*domain.InventoryStats, error) {
	groups, err := b.repo.LotStateGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("lot state groups: %w", err)
	}

	stats := &domain.InventoryStats{}
	for _, group := range groups {
		switch group.Status {
		case domain.LotStatusAvailable:
			stats.Available = group.Lots
		case domain.LotStatusInProduction:
			stats.InProduction = group.Lots
		case domain.LotStatusSold:
			stats.Sold = group.Lots
		case domain.LotStatusExpired:
			stats.Expired = group.Lots
		}
	}
	return stats, nil
}

// ProcurementStats aggregates purchases and supply movements over the
// default window for the dashboard procurement panel. Both reads fan out
// and either failure fails the whole payload.
func (b *Builder) ProcurementStats(ctx context.Context) (*domain.ProcurementStats, error) {
	buckets := MonthBuckets(b.now(), DefaultMonthsBack)
	from, to := buckets[0].Start, buckets[len(buckets)-1].End

	stats := &domain.ProcurementStats{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		purchases, err := b.repo.PurchasesAggregate(ctx, from, to)
		if err != nil {
			return fmt.Errorf("purchases aggregate: %w", err)
		}
		stats.Purchases = purchases
		return nil
	})
	g.Go(func() error {
		movements, err := b.repo.SupplyMovementAggregate(ctx, from, to)
		if err != nil {
			return fmt.Errorf("supply movement aggregate: %w", err)
		}
		stats.Movements = movements
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats, nil
}

// SalesStats builds the fixed six-month production-vs-sales series shown on
// the dashboard chart. Buckets fan out concurrently and are reassembled by
// index.
func (b *Builder) SalesStats(ctx context.Context) ([]domain.SalesStatPoint, error) {
	buckets := MonthBuckets(b.now(), DefaultMonthsBack)
	points := make([]domain.SalesStatPoint, len(buckets))

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
			points[i] = domain.SalesStatPoint{
				Month:      bucket.Label,
				Production: prod.Quantity,
				Sales:      sold.Quantity,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return points, nil
}
