package app

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pokedex/internal/roster"
	"github.com/five82/pokedex/internal/state"
)

type pageLoader struct {
	mu    sync.Mutex
	gates map[int]chan struct{}
	calls []int
}

func (l *pageLoader) Load(ctx context.Context, page roster.Page) ([]roster.Entity, error) {
	l.mu.Lock()
	l.calls = append(l.calls, page.Offset)
	gate := l.gates[page.Offset]
	l.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return []roster.Entity{{ID: page.Offset + 1, Name: "entity", Categories: []string{"normal"}}}, nil
}

func (l *pageLoader) callCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

func TestStartLoaderRunsRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loader := &pageLoader{}
	ctrl := state.New(loader, 2)
	done := StartLoader(ctx, ctrl, zerolog.Nop())

	ctrl.Reload()
	require.Eventually(t, func() bool { return ctrl.Snapshot().HasLoaded }, time.Second, 5*time.Millisecond)

	snap := ctrl.Snapshot()
	require.Len(t, snap.Roster, 1)
	assert.Equal(t, 1, snap.Roster[0].ID)
	assert.False(t, snap.Loading)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loader did not stop after cancel")
	}
}

func TestStartLoaderNewerRequestNotBlockedByStale(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gate := make(chan struct{})
	loader := &pageLoader{gates: map[int]chan struct{}{0: gate}}
	ctrl := state.New(loader, 2)
	done := StartLoader(ctx, ctrl, zerolog.Nop())

	ctrl.Reload()
	require.Eventually(t, func() bool { return loader.callCount() == 1 }, time.Second, 5*time.Millisecond)

	ctrl.NextPage()
	require.Eventually(t, func() bool {
		snap := ctrl.Snapshot()
		return snap.HasLoaded && snap.Loaded.Offset == 2
	}, time.Second, 5*time.Millisecond)

	close(gate)
	snap := ctrl.Snapshot()
	assert.Equal(t, 2, snap.Page.Offset)
	require.Len(t, snap.Roster, 1)
	assert.Equal(t, 3, snap.Roster[0].ID)

	cancel()
	<-done
}

func TestStartLoaderStopsWithoutRequests(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := StartLoader(ctx, state.New(&pageLoader{}, 2), zerolog.Nop())
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("loader did not stop")
	}
}
