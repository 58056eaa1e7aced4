package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/pokedex/internal/app"
	"github.com/five82/pokedex/internal/palette"
)

var errNotTerminal = errors.New("pokedex needs an interactive terminal")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := newRootCmd(app.Run, isTerminal)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "pokedex: %v\n", err)
		return 1
	}
	return 0
}

type runFunc func(ctx context.Context, opts app.Options) error

func newRootCmd(runApp runFunc, tty func() bool) *cobra.Command {
	var opts app.Options

	root := &cobra.Command{
		Use:   "pokedex",
		Short: "Browse the PokéAPI catalog in the terminal",
		Long: "pokedex pages through the PokéAPI roster, enriches every entry with its details\n" +
			"and shows them as a searchable card grid with a detail overlay.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !tty() {
				return errNotTerminal
			}
			return runApp(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/pokedex/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/pokedex/prefs.toml)")
	flags.StringVar(&opts.BaseURL, "base-url", "", "PokéAPI base URL (overrides config)")
	flags.IntVar(&opts.PageSize, "page-size", 0, "entries per page (overrides config)")
	flags.BoolVar(&opts.Debug, "debug", false, "log at debug level")

	root.AddCommand(newPaletteCmd())
	return root
}

func newPaletteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the category colors and their contrast borders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printPalette(cmd.OutOrStdout())
		},
	}
}

func printPalette(w io.Writer) error {
	for _, name := range palette.Names() {
		style, err := palette.Style(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%-10s %s  brightness %6.2f  border %s\n",
			name, style.Base.Hex(), palette.Brightness(style.Base), style.Border); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
