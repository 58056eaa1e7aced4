// Package app is the composition root for pokedex.
//
// Run loads configuration, opens the session log, builds the PokéAPI client,
// the roster loader and the session controller, then hands the controller to
// the UI and blocks until the user quits.
//
// Configuration layers apply in order: built-in defaults, the TOML file,
// POKEDEX_* environment variables and finally the command-line flags carried
// in Options.
//
// # Loading
//
// The controller never performs I/O itself. Page changes produce a Request on
// Controller.Requests; StartLoader consumes that channel and runs each request
// on its own goroutine:
//
//	ui keypress ──> Controller.NextPage() ──> Requests() ──> StartLoader
//	                                                            │
//	                                     Controller.Load(ctx, req)
//	                                                            │
//	                       commit if req.Generation is still the latest
//
// A load that lost the race is cancelled by the controller and its result is
// dropped on arrival, so the dispatcher does not need to track which request
// is current.
//
// # Errors
//
// Startup problems (unreadable config, log file that cannot be opened, invalid
// base URL) are returned from Run. Load failures are recorded in the session
// snapshot and logged; they never end the program.
package app
