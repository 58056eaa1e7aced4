package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/five82/pokedex/internal/roster"
)

// Loader resolves a page into its roster. *roster.Loader implements it.
type Loader interface {
	Load(ctx context.Context, page roster.Page) ([]roster.Entity, error)
}

// Request is a page load tagged with the generation it was issued for.
type Request struct {
	ID         string
	Generation uint64
	Page       roster.Page
}

// Controller owns the session state: the current page, its roster, the
// search query and the selection. Every page change bumps a generation and
// only the load for the latest generation is ever applied.
type Controller struct {
	mu     sync.Mutex
	loader Loader
	logger zerolog.Logger
	now    func() time.Time

	page       roster.Page
	loaded     roster.Page
	hasLoaded  bool
	items      []roster.Entity
	query      string
	selection  roster.Selection
	generation uint64
	loading    bool
	cancel     context.CancelFunc
	lastLoaded time.Time
	lastErr    error
	failures   int

	subs     map[int]chan Event
	nextSub  int
	requests chan Request
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for load outcomes.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Controller positioned on the first page of size limit.
func New(loader Loader, limit int, opts ...Option) *Controller {
	c := &Controller{
		loader:   loader,
		logger:   zerolog.Nop(),
		now:      time.Now,
		page:     roster.FirstPage(limit),
		subs:     make(map[int]chan Event),
		requests: make(chan Request, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Requests yields page loads to run. Only the newest pending request is kept.
func (c *Controller) Requests() <-chan Request {
	return c.requests
}

// Reload requests the current page again.
func (c *Controller) Reload() Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestLocked(c.page)
}

// NextPage advances by one page. It does not check for the end of the data.
func (c *Controller) NextPage() Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.requestLocked(c.page.Next())
}

// PrevPage goes back one page. At offset 0 it is a no-op and returns false.
func (c *Controller) PrevPage() (Request, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.page.HasPrev() {
		return Request{}, false
	}
	return c.requestLocked(c.page.Prev()), true
}

func (c *Controller) requestLocked(page roster.Page) Request {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	changed := page != c.page
	c.page = page
	c.loading = true

	req := Request{ID: ulid.Make().String(), Generation: c.generation, Page: page}
	c.enqueueLocked(req)
	if changed {
		c.publishLocked(EventPage)
	}
	c.publishLocked(EventLoadStarted)
	return req
}

// enqueueLocked replaces any pending request; superseded loads would be
// discarded on arrival anyway.
func (c *Controller) enqueueLocked(req Request) {
	for {
		select {
		case c.requests <- req:
			return
		default:
		}
		select {
		case <-c.requests:
		default:
		}
	}
}

// Load runs req and applies its result if req is still the latest request.
// It reports whether the result was applied. Errors are recorded in the
// snapshot, never returned: the previous roster stays in place.
func (c *Controller) Load(ctx context.Context, req Request) bool {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !c.begin(req, cancel) {
		return false
	}

	log := c.logger.With().Str("load_id", req.ID).Int("offset", req.Page.Offset).Int("limit", req.Page.Limit).Logger()
	log.Debug().Uint64("generation", req.Generation).Msg("page load started")

	started := c.now()
	items, err := c.loader.Load(ctx, req.Page)
	return c.commit(req, items, err, log, c.now().Sub(started))
}

func (c *Controller) begin(req Request, cancel context.CancelFunc) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if req.Generation != c.generation {
		return false
	}
	c.cancel = cancel
	return true
}

func (c *Controller) commit(req Request, items []roster.Entity, err error, log zerolog.Logger, took time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.Generation != c.generation {
		log.Debug().Uint64("generation", req.Generation).Uint64("current", c.generation).Msg("discarding stale page load")
		return false
	}
	c.cancel = nil
	c.loading = false

	if err != nil {
		c.lastErr = err
		c.failures++
		ev := log.Warn()
		var loadErr *roster.LoadError
		if errors.As(err, &loadErr) {
			ev = ev.Str("kind", loadErr.Kind.String())
		}
		ev.Err(err).Int("consecutive_failures", c.failures).Dur("took", took).Msg("page load failed")
		c.publishLocked(EventLoadFailed)
		return false
	}

	if items == nil {
		items = []roster.Entity{}
	}
	c.items = roster.CloneAll(items)
	c.loaded = req.Page
	c.hasLoaded = true
	c.lastErr = nil
	c.failures = 0
	c.lastLoaded = c.now()
	log.Info().Int("entities", len(items)).Dur("took", took).Msg("page loaded")
	c.publishLocked(EventRoster)
	return true
}

// SetQuery replaces the search query. Selection is left alone.
func (c *Controller) SetQuery(q string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if q == c.query {
		return
	}
	c.query = q
	c.publishLocked(EventQuery)
}

// Select inspects e, replacing any current selection.
func (c *Controller) Select(e roster.Entity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selection.Select(e)
	c.publishLocked(EventSelection)
}

// Close ends the inspection. It is a no-op when nothing is selected.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selection.State() == roster.Idle {
		return
	}
	c.selection.Close()
	c.publishLocked(EventSelection)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := roster.CloneAll(c.items)
	return Snapshot{
		Roster:              items,
		Visible:             roster.Filter(items, c.query),
		Page:                c.page,
		Loaded:              c.loaded,
		HasLoaded:           c.hasLoaded,
		Query:               c.query,
		Selection:           c.selection,
		Loading:             c.loading,
		Generation:          c.generation,
		LastLoaded:          c.lastLoaded,
		LastError:           c.lastErr,
		ConsecutiveFailures: c.failures,
	}
}
