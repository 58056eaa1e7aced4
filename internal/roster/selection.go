package roster

// SelectionState is either Idle or Inspecting.
type SelectionState int

const (
	Idle SelectionState = iota
	Inspecting
)

func (s SelectionState) String() string {
	if s == Inspecting {
		return "inspecting"
	}
	return "idle"
}

// Selection tracks the single entity under inspection. The zero value is Idle.
// It does not follow the filter or the page: only Close clears it.
type Selection struct {
	entity *Entity
}

// Select inspects e, replacing any previous selection.
func (s *Selection) Select(e Entity) {
	dup := e.Clone()
	s.entity = &dup
}

// Close returns to Idle. Closing while Idle is a no-op.
func (s *Selection) Close() {
	s.entity = nil
}

// State returns the current state.
func (s Selection) State() SelectionState {
	if s.entity == nil {
		return Idle
	}
	return Inspecting
}

// Current returns the inspected entity, if any.
func (s Selection) Current() (Entity, bool) {
	if s.entity == nil {
		return Entity{}, false
	}
	return s.entity.Clone(), true
}
