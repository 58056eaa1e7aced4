package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/five82/pokedex/internal/state"
)

// Dispatcher is the part of the session controller the load loop needs.
// *state.Controller implements it.
type Dispatcher interface {
	Requests() <-chan state.Request
	Load(ctx context.Context, req state.Request) bool
}

// StartLoader launches a background goroutine that runs every request the
// dispatcher issues. Each load gets its own goroutine so a slow, superseded
// load never holds up the newest one. The returned channel closes once ctx
// is done and all in-flight loads have returned.
func StartLoader(ctx context.Context, d Dispatcher, logger zerolog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		var wg sync.WaitGroup
		defer close(done)
		defer wg.Wait()

		for {
			select {
			case <-ctx.Done():
				return
			case req := <-d.Requests():
				wg.Add(1)
				go func() {
					defer wg.Done()
					if !d.Load(ctx, req) {
						logger.Debug().
							Str("load_id", req.ID).
							Uint64("generation", req.Generation).
							Int("offset", req.Page.Offset).
							Msg("load not applied")
					}
				}()
			}
		}
	}()
	return done
}
