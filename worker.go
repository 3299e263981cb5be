package mazepath

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/pdrpinto/mazepath/internal/ctxlog"
)

// Query is one start/goal pair for SearchBatch.
type Query struct {
	Start Position
	Goal  Position
}

// SearchBatch runs one Search per query on a pool of WithWorkers goroutines.
// Results are index-aligned with queries. The grid is shared and must not be
// modified until SearchBatch returns. The first failing query cancels the
// rest and its error is returned.
func SearchBatch(
	contextObject context.Context,
	graph Grid,
	queries []Query,
	options ...Option,
) ([]Result, error) {
	searchOptions := applyOptions(options)
	results := make([]Result, len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)

	ctxlog.FromContext(contextObject).Debug("batch started",
		"queries", len(queries), "workers", searchOptions.NumberOfWorkers)

	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			result, err := Search(groupContext, graph, query.Start, query.Goal, options...)
			if err != nil {
				return fmt.Errorf("query %d %v->%v: %w", i, query.Start, query.Goal, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
