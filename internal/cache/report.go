package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dulceandina/panela-backend/internal/config"
	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	reportKeyPrefix = "analytics:report"
	scanBatchSize   = 100
)

// ReportCache is the cache-aside store for assembled analytics reports.
type ReportCache interface {
	GetReport(ctx context.Context, months int) (*domain.AnalyticsReport, bool, error)
	SetReport(ctx context.Context, months int, report *domain.AnalyticsReport) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

// NewReportCache builds the cache from config, falling back to a noop
// implementation when caching is disabled.
func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return NewRedisReportCache(client, ttl), nil
}

// NewRedisReportCache wraps an existing client, which lets tests plug in
// miniredis.
func NewRedisReportCache(client *redis.Client, ttl time.Duration) ReportCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &redisReportCache{client: client, ttl: ttl}
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func reportKey(months int) string {
	return fmt.Sprintf("%s:%02d", reportKeyPrefix, months)
}

func (c *redisReportCache) GetReport(ctx context.Context, months int) (*domain.AnalyticsReport, bool, error) {
	payload, err := c.client.Get(ctx, reportKey(months)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var report domain.AnalyticsReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, false, fmt.Errorf("decode report cache: %w", err)
	}

	return &report, true, nil
}

func (c *redisReportCache) SetReport(ctx context.Context, months int, report *domain.AnalyticsReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report cache: %w", err)
	}

	if err := c.client.Set(ctx, reportKey(months), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, reportKeyPrefix, scanBatchSize)
}

func (n *noopReportCache) GetReport(ctx context.Context, months int) (*domain.AnalyticsReport, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetReport(ctx context.Context, months int, report *domain.AnalyticsReport) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}
