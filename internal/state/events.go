package state

// EventKind names the state cell that changed.
type EventKind int

const (
	EventRoster EventKind = iota + 1
	EventPage
	EventQuery
	EventSelection
	EventLoadStarted
	EventLoadFailed
)

func (k EventKind) String() string {
	switch k {
	case EventRoster:
		return "roster"
	case EventPage:
		return "page"
	case EventQuery:
		return "query"
	case EventSelection:
		return "selection"
	case EventLoadStarted:
		return "load_started"
	case EventLoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// Event is a change notification. Delivery is best effort: a subscriber that
// has not drained its previous event misses the new one, so consumers should
// read a fresh Snapshot rather than rely on the exact sequence.
type Event struct {
	Kind       EventKind
	Generation uint64
}

const subscriberBuffer = 8

func (c *Controller) publishLocked(kind EventKind) {
	ev := Event{Kind: kind, Generation: c.generation}
	for _, ch := range c.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a listener. The returned func unsubscribes and closes
// the channel.
func (c *Controller) Subscribe() (<-chan Event, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	ch := make(chan Event, subscriberBuffer)
	c.subs[id] = ch

	var once bool
	return ch, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if once {
			return
		}
		once = true
		delete(c.subs, id)
		close(ch)
	}
}
