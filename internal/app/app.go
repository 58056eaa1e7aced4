package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/five82/pokedex/internal/config"
	"github.com/five82/pokedex/internal/logging"
	"github.com/five82/pokedex/internal/pokeapi"
	"github.com/five82/pokedex/internal/prefs"
	"github.com/five82/pokedex/internal/roster"
	"github.com/five82/pokedex/internal/state"
	"github.com/five82/pokedex/internal/ui"
)

// Options configure the pokedex application. Non-zero fields override the
// config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pokedex/prefs.toml
	BaseURL    string
	PageSize   int
	Debug      bool
}

// Run boots the pokedex TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, err := openLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: logging disabled: %v\n", err)
	}
	defer logger.Close()

	logger.Info().
		Str("base_url", cfg.BaseURL).
		Int("page_size", cfg.PageSize).
		Int("concurrency", cfg.Concurrency).
		Msg("pokedex starting")

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warn().Err(err).Msg("using default preferences")
	}

	client, err := pokeapi.NewClient(cfg.BaseURL, pokeapi.WithTimeout(cfg.Timeout()))
	if err != nil {
		return fmt.Errorf("init pokeapi client: %w", err)
	}

	ctrl := state.New(
		roster.NewLoader(client, cfg.Concurrency),
		cfg.PageSize,
		state.WithLogger(logging.Component(logger.Logger, "roster")),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Start the load loop, then request the first page so the UI opens on a
	// loading roster.
	done := StartLoader(ctx, ctrl, logging.Component(logger.Logger, "loader"))
	ctrl.Reload()

	uiErr := ui.Run(ui.Options{
		Context:    ctx,
		Controller: ctrl,
		Logger:     logging.Component(logger.Logger, "ui"),
		LogPath:    logger.Path(),
		ThemeName:  userPrefs.Theme,
		Compact:    userPrefs.Compact,
		PrefsPath:  opts.PrefsPath,
		BaseURL:    client.BaseURL(),
	})

	cancel()
	<-done
	logger.Info().Msg("pokedex stopped")
	return uiErr
}

// openLogger opens the session log. When the file cannot be opened it
// returns a discarding logger along with the error, so the UI still runs.
func openLogger(cfg config.Config) (*logging.Logger, error) {
	logger, err := logging.New(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	if err != nil {
		return logging.Nop(), fmt.Errorf("init logging: %w", err)
	}
	return logger, nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return applyOverrides(cfg, opts)
}

func applyOverrides(cfg config.Config, opts Options) (config.Config, error) {
	if url := strings.TrimSpace(opts.BaseURL); url != "" {
		cfg.BaseURL = url
	}
	switch {
	case opts.PageSize > 0:
		cfg.PageSize = opts.PageSize
	case opts.PageSize < 0:
		return config.Config{}, fmt.Errorf("page size must be positive, got %d", opts.PageSize)
	}
	if opts.Debug {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}
