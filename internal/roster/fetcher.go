package roster

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Service is the read-only remote catalog.
type Service interface {
	ListPage(ctx context.Context, page Page) ([]Summary, error)
	FetchDetail(ctx context.Context, summary Summary) (Entity, error)
}

// Fetcher resolves summaries into entities concurrently.
type Fetcher struct {
	service Service
	limit   int
}

// NewFetcher builds a Fetcher. A limit of zero or less runs every detail
// request at once.
func NewFetcher(service Service, limit int) *Fetcher {
	return &Fetcher{service: service, limit: limit}
}

// FetchAll resolves every summary and returns the entities in input order.
// The first failure cancels the remaining requests and fails the whole call.
func (f *Fetcher) FetchAll(ctx context.Context, summaries []Summary) ([]Entity, error) {
	out := make([]Entity, len(summaries))
	if len(summaries) == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if f.limit > 0 {
		g.SetLimit(f.limit)
	}
	for i, s := range summaries {
		g.Go(func() error {
			entity, err := f.service.FetchDetail(gctx, s)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", s.URL, err)
			}
			if err := entity.Validate(); err != nil {
				return fmt.Errorf("fetch %s: %w", s.URL, err)
			}
			out[i] = entity
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
