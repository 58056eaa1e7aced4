package roster

// DefaultLimit is the page size used when none is configured.
const DefaultLimit = 52

// Page is an offset/limit window into the remote listing. Offset is always
// a non-negative multiple of Limit.
type Page struct {
	Offset int
	Limit  int
}

// FirstPage returns the first page for limit, falling back to DefaultLimit.
func FirstPage(limit int) Page {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return Page{Offset: 0, Limit: limit}
}

// Next returns the following page. It never checks for the end of the data.
func (p Page) Next() Page {
	return Page{Offset: p.Offset + p.Limit, Limit: p.Limit}
}

// Prev returns the preceding page, clamped at the first page.
func (p Page) Prev() Page {
	off := p.Offset - p.Limit
	if off < 0 {
		off = 0
	}
	return Page{Offset: off, Limit: p.Limit}
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Offset > 0
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	if p.Limit <= 0 {
		return 1
	}
	return p.Offset/p.Limit + 1
}
