package service

import (
	"context"
	"fmt"

	"github.com/dulceandina/panela-backend/internal/analytics"
	"github.com/dulceandina/panela-backend/internal/cache"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/rs/zerolog/log"
)

// AnalyticsService serves assembled reports through a cache-aside layer.
// Cache read or write failures are logged and the report is served from
// the database; only database failures surface to the caller.
type AnalyticsService struct {
	builder *analytics.Builder
	cache   cache.ReportCache
}

func NewAnalyticsService(builder *analytics.Builder, reportCache cache.ReportCache) *AnalyticsService {
	if reportCache == nil {
		reportCache = cache.NewNoopReportCache()
	}
	return &AnalyticsService{builder: builder, cache: reportCache}
}

func (s *AnalyticsService) GetReport(ctx context.Context, months int) (*domain.AnalyticsReport, error) {
	months = analytics.ClampMonthsBack(months)

	if report, ok, err := s.cache.GetReport(ctx, months); err != nil {
		log.Warn().Err(err).Int("months", months).Msg("report cache read failed, falling back to database")
	} else if ok {
		log.Debug().Int("months", months).Msg("analytics report served from cache")
		return report, nil
	}

	report, err := s.builder.BuildReport(ctx, months)
	if err != nil {
		return nil, fmt.Errorf("build analytics report: %w", err)
	}

	if err := s.cache.SetReport(ctx, months, report); err != nil {
		log.Warn().Err(err).Int("months", months).Msg("report cache write failed")
	}

	return report, nil
}

func (s *AnalyticsService) GetInventoryStats(ctx context.Context) (*domain.InventoryStats, error) {
	stats, err := s.builder.InventoryStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory stats: %w", err)
	}
	return stats, nil
}

func (s *AnalyticsService) GetProcurementStats(ctx context.Context) (*domain.ProcurementStats, error) {
	stats, err := s.builder.ProcurementStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("procurement stats: %w", err)
	}
	return stats, nil
}

func (s *AnalyticsService) GetSalesStats(ctx context.Context) ([]domain.SalesStatPoint, error) {
	points, err := s.builder.SalesStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("sales stats: %w", err)
	}
	return points, nil
}

// InvalidateReports drops every cached report, used after data imports.
func (s *AnalyticsService) InvalidateReports(ctx context.Context) error {
	return s.cache.InvalidateAll(ctx)
}
