package fontload

import (
	"context"

	"github.com/mmcdole/fontpeek/internal/domain"
	"golang.org/x/sync/errgroup"
)

// CheckResult is the outcome of requesting one family's resource
type CheckResult struct {
	Family string
	Err    error
}

// CheckStylesheets requests every family concurrently (at most limit at a
// time) and reports each outcome in input order. Unlike Loader it waits for results.
func CheckStylesheets(ctx context.Context, m domain.Materializer, families []string, limit int) []CheckResult {
	results := make([]CheckResult, len(families))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, family := range families {
		i, family := i, family
		g.Go(func() error {
			results[i] = CheckResult{Family: family, Err: m.Materialize(ctx, family)}
			// Failures are per-family results, not group errors
			return nil
		})
	}
	g.Wait()

	return results
}
