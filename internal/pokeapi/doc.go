// Package pokeapi provides a read-only HTTP client for the PokéAPI v2 REST
// service.
//
// # Endpoints
//
//   - GET {base}/pokemon?limit={L}&offset={O}: one page of {name, url} results
//   - GET {url}: the full record of a single Pokémon
//
// Client implements roster.Service. Listing results keep the order the
// service returns them in, and Pokemon.Entity maps the wire payload onto
// roster.Entity (sprites.front_default becomes ImageURL, types[].type.name
// becomes Categories in served order).
//
// # Error Handling
//
// Non-2xx responses and malformed bodies are errors:
//   - "execute request: dial tcp: connection refused"
//   - "api /api/v2/pokemon returned status 500"
//   - "decode response: unexpected EOF"
//
// The client does not retry or cache. Retry policy belongs to the caller and
// the service stays authoritative for all data.
package pokeapi
