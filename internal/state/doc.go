// Package state owns the session state of the catalog viewer.
//
// # Overview
//
// Controller is the single owner of four state cells: the requested page, the
// roster of the last successfully loaded page, the search query and the
// selection. The UI reads them through Snapshot and is notified of changes
// through Subscribe; the load dispatcher in package app consumes Requests and
// runs Controller.Load for each.
//
//	Producer (UI keys):            Dispatcher (app):             Consumer (UI):
//	┌────────────────┐            ┌───────────────────┐        ┌─────────────────┐
//	│ NextPage()     │──Request──→│ ctrl.Load(ctx, r) │        │                 │
//	│ PrevPage()     │            │   loader.Load()   │        │                 │
//	│ Reload()       │            │   commit (mutex)  │──Event→│ ctrl.Snapshot() │
//	└────────────────┘            └───────────────────┘        └─────────────────┘
//
// # Latest Request Wins
//
// Every page change increments a generation counter and tags the returned
// Request with it. A load is committed only when its generation still matches
// the controller's, so a slow response for an older page can never overwrite
// a newer one, whatever order the responses arrive in. Superseded loads also
// have their context cancelled, but correctness rests on the generation
// check alone.
//
// # Failure Semantics
//
// A failed load for the current generation records LastError and bumps
// ConsecutiveFailures. The roster, query and selection are left exactly as
// they were, so the UI keeps showing the last good page (Snapshot.Stale
// reports that it no longer matches Snapshot.Page). Retrying is a matter of
// issuing another request.
//
// # Selection
//
// Selection is independent of the query and of paging: an inspected entity
// stays selected after it is filtered out or its page is replaced, until
// Close is called.
//
// # Defensive Copying
//
// Snapshot deep-copies the roster and wraps the last error, so callers may
// keep or mutate a snapshot without affecting the controller.
package state
