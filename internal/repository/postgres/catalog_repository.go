package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/dulceandina/panela-backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// CatalogRepository implements the read-only listing queries.
type CatalogRepository struct {
	db *DB
}

func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func clampPage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	return page, limit
}

func (r *CatalogRepository) ListLots(ctx context.Context, filter repository.LotFilter) ([]domain.Lot, int, error) {
	page, limit := clampPage(filter.Page, filter.Limit)

	var (
		clauses []string
		args    []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(code ILIKE $%d OR description ILIKE $%d)", idx, idx))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("status = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM lots`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count lots: %w", err)
	}

	query := fmt.Sprintf(`SELECT * FROM lots%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	lots := make([]domain.Lot, 0, limit)
	if err := sqlx.SelectContext(ctx, r.db, &lots, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list lots: %w", err)
	}

	log.Debug().Int("rows", len(lots)).Int("total", total).Msg("catalog: lots fetched")
	return lots, total, nil
}

func (r *CatalogRepository) ListSuppliers(ctx context.Context, filter repository.SupplierFilter) ([]domain.Supplier, int, error) {
	page, limit := clampPage(filter.Page, filter.Limit)

	var (
		clauses []string
		args    []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR contact ILIKE $%d OR email ILIKE $%d)", idx, idx, idx))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM suppliers`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count suppliers: %w", err)
	}

	query := fmt.Sprintf(`SELECT * FROM suppliers%s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	suppliers := make([]domain.Supplier, 0, limit)
	if err := sqlx.SelectContext(ctx, r.db, &suppliers, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list suppliers: %w", err)
	}
	return suppliers, total, nil
}

func (r *CatalogRepository) ListSupplyItems(ctx context.Context, filter repository.SupplyFilter) ([]domain.SupplyItem, int, error) {
	page, limit := clampPage(filter.Page, filter.Limit)

	var (
		clauses []string
		args    []interface{}
	)
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		idx := len(args)
		clauses = append(clauses, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", idx, idx))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active = $%d", len(args)))
	}

	where := ""
	if len(clauses) > 0 {
		where = " WHERE " + strings.Join(clauses, " AND ")
	}

	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM supply_items`+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count supply items: %w", err)
	}

	query := fmt.Sprintf(`SELECT * FROM supply_items%s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		where, len(args)+1, len(args)+2)
	args = append(args, limit, (page-1)*limit)

	items := make([]domain.SupplyItem, 0, limit)
	if err := sqlx.SelectContext(ctx, r.db, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list supply items: %w", err)
	}
	return items, total, nil
}

// ActiveSupplyItems loads every active item so the low-stock predicate,
// which compares two columns of the same row, can run in memory.
func (r *CatalogRepository) ActiveSupplyItems(ctx context.Context) ([]domain.SupplyItem, error) {
	const query = `SELECT * FROM supply_items WHERE active = true ORDER BY name ASC`

	var items []domain.SupplyItem
	if err := sqlx.SelectContext(ctx, r.db, &items, query); err != nil {
		return nil, fmt.Errorf("active supply items: %w", err)
	}
	return items, nil
}
