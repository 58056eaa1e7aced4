package roster

import (
	"context"
)

// Loader turns a page into its ordered, fully resolved roster.
type Loader struct {
	service Service
	fetcher *Fetcher
}

// NewLoader builds a Loader over service. concurrency bounds the number of
// in-flight detail requests (zero means unbounded).
func NewLoader(service Service, concurrency int) *Loader {
	return &Loader{
		service: service,
		fetcher: NewFetcher(service, concurrency),
	}
}

// Load lists page and enriches every summary. Any failure fails the page as
// a unit with a *LoadError. An empty listing is a valid, empty roster.
func (l *Loader) Load(ctx context.Context, page Page) ([]Entity, error) {
	summaries, err := l.service.ListPage(ctx, page)
	if err != nil {
		return nil, &LoadError{Kind: KindListing, Page: page, Err: err}
	}
	entities, err := l.fetcher.FetchAll(ctx, summaries)
	if err != nil {
		return nil, &LoadError{Kind: KindDetail, Page: page, Err: err}
	}
	return entities, nil
}
