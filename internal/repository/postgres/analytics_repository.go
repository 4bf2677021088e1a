package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// AnalyticsRepository serves the aggregate reads the report builder fans
// out. Every aggregate COALESCEs to zero so an empty window reads as zero
// values, while a failed read surfaces as an error; the two are never
// conflated. Time ranges are half-open: from inclusive, to exclusive.
type AnalyticsRepository struct {
	db *DB
}

func NewAnalyticsRepository(db *DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) ProductionAggregate(ctx context.Context, from, to time.Time) (domain.ProductionAggregate, error) {
	const query = `
        SELECT COALESCE(SUM(quantity), 0)   AS quantity,
               COALESCE(SUM(total_cost), 0) AS cost,
               COUNT(*)                     AS lots
        FROM lots
        WHERE produced_at >= $1 AND produced_at < $2`

	var agg domain.ProductionAggregate
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &agg, query, from, to)
	})
	if err != nil {
		return domain.ProductionAggregate{}, fmt.Errorf("production aggregate: %w", err)
	}
	return agg, nil
}

func (r *AnalyticsRepository) SalesAggregate(ctx context.Context, from, to time.Time) (domain.SalesAggregate, error) {
	const query = `
        SELECT COALESCE(SUM(quantity), 0) AS quantity,
               COALESCE(SUM(total), 0)    AS revenue,
               COUNT(*)                   AS count
        FROM sales
        WHERE sold_at >= $1 AND sold_at < $2`

	var agg domain.SalesAggregate
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &agg, query, from, to)
	})
	if err != nil {
		return domain.SalesAggregate{}, fmt.Errorf("sales aggregate: %w", err)
	}
	return agg, nil
}

func (r *AnalyticsRepository) PurchasesAggregate(ctx context.Context, from, to time.Time) (domain.PurchaseAggregate, error) {
	const query = `
        SELECT COALESCE(SUM(quantity), 0) AS quantity,
               COALESCE(SUM(total), 0)    AS total,
               COUNT(*)                   AS count
        FROM purchases
        WHERE purchased_at >= $1 AND purchased_at < $2`

	var agg domain.PurchaseAggregate
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &agg, query, from, to)
	})
	if err != nil {
		return domain.PurchaseAggregate{}, fmt.Errorf("purchases aggregate: %w", err)
	}
	return agg, nil
}

func (r *AnalyticsRepository) SupplyMovementAggregate(ctx context.Context, from, to time.Time) (domain.SupplyMovementAggregate, error) {
	const query = `
        SELECT COALESCE(SUM(quantity) FILTER (WHERE direction = 'IN'), 0)  AS quantity_in,
               COALESCE(SUM(quantity) FILTER (WHERE direction = 'OUT'), 0) AS quantity_out,
               COUNT(*)                                                    AS movements
        FROM supply_movements
        WHERE moved_at >= $1 AND moved_at < $2`

	var agg domain.SupplyMovementAggregate
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &agg, query, from, to)
	})
	if err != nil {
		return domain.SupplyMovementAggregate{}, fmt.Errorf("supply movement aggregate: %w", err)
	}
	return agg, nil
}

func (r *AnalyticsRepository) CostTotals(ctx context.Context, from, to time.Time) (domain.CostTotals, error) {
	const query = `
        SELECT COALESCE(SUM(cane_cost), 0)      AS cane,
               COALESCE(SUM(labor_cost), 0)     AS labor,
               COALESCE(SUM(energy_cost), 0)    AS energy,
               COALESCE(SUM(packaging_cost), 0) AS packaging,
               COALESCE(SUM(transport_cost), 0) AS transport
        FROM lots
        WHERE produced_at >= $1 AND produced_at < $2`

	var totals domain.CostTotals
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &totals, query, from, to)
	})
	if err != nil {
		return domain.CostTotals{}, fmt.Errorf("cost totals: %w", err)
	}
	return totals, nil
}

func (r *AnalyticsRepository) LotStateGroups(ctx context.Context) ([]domain.StateGroup, error) {
	const query = `
        SELECT status,
               COUNT(*)                     AS lots,
               COALESCE(SUM(quantity), 0)   AS quantity,
               COALESCE(SUM(total_cost), 0) AS value
        FROM lots
        GROUP BY status
        ORDER BY status`

	var groups []domain.StateGroup
	err := r.db.Gate(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &groups, query)
	})
	if err != nil {
		return nil, fmt.Errorf("lot state groups: %w", err)
	}

	log.Debug().Int("state_rows", len(groups)).Msg("analytics: lot state groups fetched")
	return groups, nil
}

func (r *AnalyticsRepository) PurchasesBySupplier(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error) {
	const query = `
        SELECT supplier_id             AS key,
               COUNT(*)                AS count,
               COALESCE(SUM(total), 0) AS total
        FROM purchases
        WHERE purchased_at >= $1
        GROUP BY supplier_id`

	var groups []domain.GroupAggregate
	err := r.db.Gate(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &groups, query, since)
	})
	if err != nil {
		return nil, fmt.Errorf("purchases by supplier: %w", err)
	}
	return groups, nil
}

func (r *AnalyticsRepository) LotsByOperator(ctx context.Context, since time.Time) ([]domain.GroupAggregate, error) {
	const query = `
        SELECT operator_id                AS key,
               COUNT(*)                   AS count,
               COALESCE(SUM(quantity), 0) AS total
        FROM lots
        WHERE produced_at >= $1
        GROUP BY operator_id`

	var groups []domain.GroupAggregate
	err := r.db.Gate(ctx, func() error {
		return sqlx.SelectContext(ctx, r.db, &groups, query, since)
	})
	if err != nil {
		return nil, fmt.Errorf("lots by operator: %w", err)
	}
	return groups, nil
}

func (r *AnalyticsRepository) SupplierName(ctx context.Context, id string) (string, error) {
	return r.lookupName(ctx, `SELECT name FROM suppliers WHERE id = $1`, id)
}

func (r *AnalyticsRepository) OperatorName(ctx context.Context, id string) (string, error) {
	return r.lookupName(ctx, `SELECT name FROM users WHERE id = $1`, id)
}

func (r *AnalyticsRepository) lookupName(ctx context.Context, query, id string) (string, error) {
	var name string
	err := r.db.Gate(ctx, func() error {
		return r.db.GetContext(ctx, &name, query, id)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("name lookup: %w", err)
	}
	return name, nil
}
