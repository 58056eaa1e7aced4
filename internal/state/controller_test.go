package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pokedex/internal/roster"
)

// gatedLoader returns canned rosters per offset. A gate blocks the load for
// its offset until closed; failures map an offset to an error.
type gatedLoader struct {
	mu       sync.Mutex
	pages    map[int][]roster.Entity
	gates    map[int]chan struct{}
	failures map[int]error
	started  map[int]int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{
		pages:    map[int][]roster.Entity{},
		gates:    map[int]chan struct{}{},
		failures: map[int]error{},
		started:  map[int]int{},
	}
}

func (l *gatedLoader) Load(ctx context.Context, page roster.Page) ([]roster.Entity, error) {
	l.mu.Lock()
	gate := l.gates[page.Offset]
	l.started[page.Offset]++
	err := l.failures[page.Offset]
	items := l.pages[page.Offset]
	l.mu.Unlock()

	if gate != nil {
		// Ignore ctx so a superseded load still resolves late.
		<-gate
	}
	if err != nil {
		return nil, &roster.LoadError{Kind: roster.KindListing, Page: page, Err: err}
	}
	return items, nil
}

func (l *gatedLoader) startedCount(offset int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.started[offset]
}

func entity(id int, name string) roster.Entity {
	return roster.Entity{ID: id, Name: name, Categories: []string{"normal"}}
}

func names(items []roster.Entity) []string {
	out := make([]string, 0, len(items))
	for _, e := range items {
		out = append(out, e.Name)
	}
	return out
}

func TestController_InitialState(t *testing.T) {
	c := New(newGatedLoader(), 52)
	snap := c.Snapshot()
	assert.Equal(t, roster.Page{Offset: 0, Limit: 52}, snap.Page)
	assert.False(t, snap.HasPrev())
	assert.False(t, snap.HasLoaded)
	assert.Equal(t, roster.Idle, snap.Selection.State())
	assert.Empty(t, snap.Visible)
}

func TestController_LoadAppliesRoster(t *testing.T) {
	loader := newGatedLoader()
	loader.pages[0] = []roster.Entity{entity(1, "bulbasaur"), entity(4, "charmander")}
	c := New(loader, 52)

	req := c.Reload()
	assert.True(t, c.Snapshot().Loading)
	require.True(t, c.Load(context.Background(), req))

	snap := c.Snapshot()
	assert.False(t, snap.Loading)
	assert.True(t, snap.HasLoaded)
	assert.False(t, snap.Stale())
	assert.Equal(t, []string{"bulbasaur", "charmander"}, names(snap.Roster))
	assert.Equal(t, []string{"bulbasaur", "charmander"}, names(snap.Visible))
	assert.NoError(t, snap.LastError)
}

func TestController_LatestOffsetWins(t *testing.T) {
	for _, order := range []string{"older resolves last", "older resolves first"} {
		t.Run(order, func(t *testing.T) {
			loader := newGatedLoader()
			loader.pages[0] = []roster.Entity{entity(1, "bulbasaur")}
			loader.pages[52] = []roster.Entity{entity(53, "persian")}
			loader.gates[0] = make(chan struct{})
			loader.gates[52] = make(chan struct{})
			c := New(loader, 52)

			results := make(chan bool, 2)
			first := c.Reload()
			go func() { results <- c.Load(context.Background(), first) }()
			require.Eventually(t, func() bool { return loader.startedCount(0) == 1 }, time.Second, 5*time.Millisecond)

			second := c.NextPage()
			assert.Equal(t, 52, second.Page.Offset)
			assert.Greater(t, second.Generation, first.Generation)
			go func() { results <- c.Load(context.Background(), second) }()
			require.Eventually(t, func() bool { return loader.startedCount(52) == 1 }, time.Second, 5*time.Millisecond)

			if order == "older resolves last" {
				close(loader.gates[52])
				assert.True(t, <-results)
				close(loader.gates[0])
				assert.False(t, <-results)
			} else {
				close(loader.gates[0])
				assert.False(t, <-results)
				close(loader.gates[52])
				assert.True(t, <-results)
			}

			snap := c.Snapshot()
			assert.Equal(t, []string{"persian"}, names(snap.Roster))
			assert.Equal(t, 52, snap.Loaded.Offset)
			assert.Equal(t, 52, snap.Page.Offset)
			assert.NoError(t, snap.LastError)
			assert.False(t, snap.Loading)
		})
	}
}

func TestController_StaleRequestIsNotStarted(t *testing.T) {
	loader := newGatedLoader()
	c := New(loader, 52)

	stale := c.Reload()
	c.NextPage()
	assert.False(t, c.Load(context.Background(), stale))
	assert.Zero(t, loader.startedCount(0))
}

func TestController_ListingFailureKeepsPreviousRoster(t *testing.T) {
	loader := newGatedLoader()
	loader.pages[0] = []roster.Entity{entity(1, "bulbasaur"), entity(2, "ivysaur")}
	loader.failures[52] = errors.New("api /pokemon returned status 503")
	c := New(loader, 52)

	require.True(t, c.Load(context.Background(), c.Reload()))
	c.SetQuery("ivy")
	c.Select(entity(2, "ivysaur"))
	before := c.Snapshot()

	assert.False(t, c.Load(context.Background(), c.NextPage()))

	snap := c.Snapshot()
	assert.Equal(t, before.Roster, snap.Roster)
	assert.Equal(t, []string{"ivysaur"}, names(snap.Visible))
	assert.Equal(t, "ivy", snap.Query)
	sel, ok := snap.Selected()
	require.True(t, ok)
	assert.Equal(t, "ivysaur", sel.Name)

	require.Error(t, snap.LastError)
	assert.ErrorIs(t, snap.LastError, roster.ErrListing)
	var loadErr *roster.LoadError
	require.ErrorAs(t, snap.LastError, &loadErr)
	assert.Equal(t, roster.KindListing, loadErr.Kind)
	assert.Equal(t, snap.LastError.Error(), c.Snapshot().LastError.Error())
	assert.Equal(t, 1, snap.ConsecutiveFailures)
	assert.True(t, snap.Stale())
	assert.Equal(t, 52, snap.Page.Offset)
	assert.Equal(t, 0, snap.Loaded.Offset)
	assert.False(t, snap.Loading)

	// Retrying goes through pagination again.
	assert.False(t, c.Load(context.Background(), c.Reload()))
	assert.True(t, c.Snapshot().IsOffline())
	loader.mu.Lock()
	delete(loader.failures, 52)
	loader.pages[52] = []roster.Entity{entity(53, "persian")}
	loader.mu.Unlock()
	require.True(t, c.Load(context.Background(), c.Reload()))
	snap = c.Snapshot()
	assert.Zero(t, snap.ConsecutiveFailures)
	assert.NoError(t, snap.LastError)
}

func TestController_PrevPage(t *testing.T) {
	c := New(newGatedLoader(), 52)

	_, ok := c.PrevPage()
	assert.False(t, ok)
	assert.Equal(t, 0, c.Snapshot().Page.Offset)

	c.NextPage()
	c.NextPage()
	req, ok := c.PrevPage()
	require.True(t, ok)
	assert.Equal(t, 52, req.Page.Offset)
	req, ok = c.PrevPage()
	require.True(t, ok)
	assert.Equal(t, 0, req.Page.Offset)
	_, ok = c.PrevPage()
	assert.False(t, ok)
	assert.GreaterOrEqual(t, c.Snapshot().Page.Offset, 0)
}

func TestController_SelectionSurvivesQueryAndPage(t *testing.T) {
	loader := newGatedLoader()
	loader.pages[0] = []roster.Entity{entity(25, "pikachu"), entity(26, "raichu")}
	c := New(loader, 52)
	require.True(t, c.Load(context.Background(), c.Reload()))

	c.Select(entity(25, "pikachu"))
	c.SetQuery("rai")
	snap := c.Snapshot()
	assert.Equal(t, []string{"raichu"}, names(snap.Visible))
	assert.Equal(t, roster.Inspecting, snap.Selection.State())

	c.NextPage()
	sel, ok := c.Snapshot().Selected()
	require.True(t, ok)
	assert.Equal(t, "pikachu", sel.Name)

	c.Close()
	assert.Equal(t, roster.Idle, c.Snapshot().Selection.State())
	c.Close()
	assert.Equal(t, roster.Idle, c.Snapshot().Selection.State())
}

func TestController_SnapshotIsACopy(t *testing.T) {
	loader := newGatedLoader()
	loader.pages[0] = []roster.Entity{entity(1, "bulbasaur")}
	c := New(loader, 52)
	require.True(t, c.Load(context.Background(), c.Reload()))

	snap := c.Snapshot()
	snap.Roster[0].Name = "changed"
	snap.Roster[0].Categories[0] = "fire"

	again := c.Snapshot()
	assert.Equal(t, "bulbasaur", again.Roster[0].Name)
	assert.Equal(t, "normal", again.Roster[0].Categories[0])
}

func TestController_RequestsKeepOnlyNewest(t *testing.T) {
	c := New(newGatedLoader(), 52)
	c.Reload()
	c.NextPage()
	last := c.NextPage()

	select {
	case req := <-c.Requests():
		assert.Equal(t, last, req)
	case <-time.After(time.Second):
		t.Fatal("no request queued")
	}
	select {
	case req := <-c.Requests():
		t.Fatalf("unexpected extra request %+v", req)
	default:
	}
}

func TestController_SubscribePublishesChanges(t *testing.T) {
	loader := newGatedLoader()
	loader.pages[0] = []roster.Entity{entity(1, "bulbasaur")}
	c := New(loader, 52)

	events, unsubscribe := c.Subscribe()
	c.SetQuery("bulb")
	c.SetQuery("bulb")
	c.Select(entity(1, "bulbasaur"))
	c.Close()
	c.Close()
	require.True(t, c.Load(context.Background(), c.Reload()))
	c.NextPage()

	var kinds []EventKind
	for len(kinds) < 7 {
		select {
		case ev := <-events:
			kinds = append(kinds, ev.Kind)
		case <-time.After(time.Second):
			t.Fatalf("timed out after events %v", kinds)
		}
	}
	assert.Equal(t, []EventKind{
		EventQuery,
		EventSelection,
		EventSelection,
		EventLoadStarted,
		EventRoster,
		EventPage,
		EventLoadStarted,
	}, kinds)

	unsubscribe()
	unsubscribe()
	_, open := <-events
	assert.False(t, open)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "roster", EventRoster.String())
	assert.Equal(t, "load_failed", EventLoadFailed.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
