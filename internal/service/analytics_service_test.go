package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/dulceandina/panela-backend/internal/analytics"
	"github.com/dulceandina/panela-backend/internal/cache"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRepo struct {
	reads atomic.Int64
}

func (r *countingRepo) ProductionAggregate(ctx context.Context, from, to time.Time) (domain.ProductionAggregate, error) {
	r.reads.Add(1)
	return domain.ProductionAggregate{Quantity: 100, Cost: 400000, Lots: 2}, nil
}

func (r *countingRepo) SalesAggregate(ctx context.Context, from, to time.Time) (domain.SalesAggregate, error) {
	r.reads.Add(1)
	return domain.SalesAggregate{Quantity: 80, Revenue: 500000, Count: 4}, nil
}

func (r *countingRepo) PurchasesAggregate(ctx context.Context, from, to time.Time) (domain.PurchaseAggregate, error) {
	r.reads.Add(1)
	return domain.PurchaseAggregate{Quantity: 250, Total: 830000, Count: 2}, nil
}

func (r *countingRepo) SupplyMovementAggregate(ctx context.Context, from, to time.Time) (domain.SupplyMovementAggregate, error) {
	r.reads.Add(1)
	return domain.SupplyMovementAggregate{QuantityIn: 700, QuantityOut: 150, Movements: 9}, nil
}

func (r *countingRepo) CostTotals(ctx context.Context, from, to time.Time) (domain.CostTotals, error) {
	r.reads.Add(1)
	return domain.CostTotals{Cane: 300000, Labor: 100000}, nil
}

func (r *countingRepo) LotStateGroups(ctx context.Context) ([]domain.StateGroup, error) {
	r.reads.Add(1)
	return []domain.StateGroup{{Status: domain.LotStatusAvailable, Lots: 2}}, nil
}

func (r *countingRepo) PurchasesBySupplier(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error) {
	r.reads.Add(1)
	return nil, nil
}

func (r *countingRepo) LotsByOperator(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error) {
	r.reads.Add(1)
	return nil, nil
}

func (r *countingRepo) SupplierName(ctx context.Context, id string) (string, error) {
	return "", domain.ErrNotFound
}

func (r *countingRepo) OperatorName(ctx context.Context, id string) (string, error) {
	return "", domain.ErrNotFound
}

func newCachedService(t *testing.T) (*AnalyticsService, *countingRepo) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &countingRepo{}
	builder := analytics.NewBuilder(repo)
	return NewAnalyticsService(builder, cache.NewRedisReportCache(client, time.Minute)), repo
}

func TestGetReportCachesSecondRead(t *testing.T) {
	svc, repo := newCachedService(t)
	ctx := context.Background()

	first, err := svc.GetReport(ctx, 6)
	require.NoError(t, err)
	readsAfterFirst := repo.reads.Load()
	assert.Greater(t, readsAfterFirst, int64(0))

	second, err := svc.GetReport(ctx, 6)
	require.NoError(t, err)

	assert.Equal(t, readsAfterFirst, repo.reads.Load(), "second read must come from cache")
	assert.Equal(t, first, second)
}

func TestGetReportClampsBeforeCaching(t *testing.T) {
	svc, repo := newCachedService(t)
	ctx := context.Background()

	report, err := svc.GetReport(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, analytics.MaxMonthsBack, report.MonthsBack)
	readsAfterFirst := repo.reads.Load()

	// A different out-of-range value clamps to the same window and hits
	// the same cache entry.
	_, err = svc.GetReport(ctx, 50)
	require.NoError(t, err)
	assert.Equal(t, readsAfterFirst, repo.reads.Load())
}

func TestInvalidateReportsForcesRebuild(t *testing.T) {
	svc, repo := newCachedService(t)
	ctx := context.Background()

	_, err := svc.GetReport(ctx, 6)
	require.NoError(t, err)
	readsAfterFirst := repo.reads.Load()

	require.NoError(t, svc.InvalidateReports(ctx))

	_, err = svc.GetReport(ctx, 6)
	require.NoError(t, err)
	assert.Greater(t, repo.reads.Load(), readsAfterFirst)
}

func TestGetInventoryStats(t *testing.T) {
	svc, _ := newCachedService(t)

	stats, err := svc.GetInventoryStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Available)
}

func TestGetProcurementStats(t *testing.T) {
	svc, _ := newCachedService(t)

	stats, err := svc.GetProcurementStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 830000.0, stats.Purchases.Total)
	assert.Equal(t, 9, stats.Movements.Movements)
}
