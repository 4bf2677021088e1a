package analytics

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dulceandina/panela-backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// UnknownName replaces the display name of an owner that no longer resolves,
// so a dangling reference never fails the whole report.
const UnknownName = "Desconocido"

const nameLookupParallelism = 8

// NameResolver looks up an owning entity's display name by id. It returns
// domain.ErrNotFound when the entity does not exist; any other error is a
// genuine read failure and propagates.
type NameResolver func(ctx context.Context, id string) (string, error)

// RankedGroup is one resolved, ordered entry of a ranking.
type RankedGroup struct {
	Key   string
	Name  string
	Count int
	Total float64
}

// RankGroups resolves display names for grouped aggregates, sorts them
// descending by total and truncates to topN (topN <= 0 keeps every group).
// Name lookups run concurrently since groups are independent reads; ties
// keep the stable input order.
func RankGroups(ctx context.Context, groups []domain.GroupAggregate, resolve NameResolver, topN int) ([]RankedGroup, error) {
	ranked := make([]RankedGroup, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(nameLookupParallelism)
	for i, group := range groups {
		g.Go(func() error {
			name, err := resolve(ctx, group.Key)
			switch {
			case errors.Is(err, domain.ErrNotFound):
				name = UnknownName
			case err != nil:
				return fmt.Errorf("resolve name for %s: %w", group.Key, err)
			}
			ranked[i] = RankedGroup{
				Key:   group.Key,
				Name:  name,
				Count: group.Count,
				Total: group.Total,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked, nil
}
