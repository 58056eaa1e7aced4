// Package roster holds the catalog core: paging, detail enrichment, search
// filtering and selection.
//
// A page load lists one Page of summaries and resolves every summary into an
// Entity concurrently. The load succeeds or fails as a unit: callers never see
// a roster mixing resolved and unresolved entries. Failures are *LoadError
// values that match ErrListing or ErrDetail with errors.Is.
//
// Filter and Selection are independent of each other and of paging. The
// session-level wiring of these pieces, including suppression of stale page
// loads, lives in package state.
package roster
