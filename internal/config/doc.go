// Package config loads the pokedex configuration.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/pokedex/config.toml)
//  3. POKEDEX_* environment variables
//  4. Command-line flags (applied by cmd/pokedex)
//
// A missing config file is not an error; pokedex works out of the box
// against the public PokéAPI.
//
// # TOML Format
//
//	base_url = "https://pokeapi.co/api/v2"
//	page_size = 52
//	timeout_seconds = 10
//	concurrency = 0          # 0 = one request per entity on the page
//	log_file = "~/.local/share/pokedex/pokedex.log"
//	log_level = "info"
//
// # Environment
//
//	POKEDEX_BASE_URL, POKEDEX_PAGE_SIZE, POKEDEX_TIMEOUT_SECONDS,
//	POKEDEX_CONCURRENCY, POKEDEX_LOG_FILE, POKEDEX_LOG_LEVEL
//
// Tilde paths are expanded and relative paths made absolute.
package config
