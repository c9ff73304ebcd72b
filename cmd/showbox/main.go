package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/showbox/internal/adapter"
	"github.com/mmcdole/showbox/internal/adapter/source"
	"github.com/mmcdole/showbox/internal/domain"
	"github.com/mmcdole/showbox/internal/favorites"
	"github.com/mmcdole/showbox/internal/showlist"
	"github.com/mmcdole/showbox/internal/store"
	"github.com/mmcdole/showbox/internal/tui"
	"github.com/mmcdole/showbox/internal/tui/styles"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	var (
		showVersion bool
		reset       bool
		list        bool
		writeConfig bool
		favsOnly    bool
	)
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&reset, "reset", false, "forget the saved list, favorites and scroll position")
	flag.BoolVar(&list, "list", false, "print the next page of shows and exit")
	flag.BoolVar(&favsOnly, "favorites", false, "print saved favorites, fuzzy filtered by an optional query, and exit")
	flag.BoolVar(&writeConfig, "write-config", false, "write the effective configuration to the config file and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("showbox %s\n", Version)
		return
	}

	if writeConfig {
		if err := saveConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(reset, list, favsOnly, strings.Join(flag.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(reset, list, favsOnly bool, query string) error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer, err := adapter.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	if closer != nil {
		defer closer.Close()
	}
	slog.SetDefault(logger)

	logger.Info("starting showbox", "version", Version)

	kv, err := store.Open(store.Options{
		Driver:    store.Driver(cfg.Storage.Driver),
		Dir:       cfg.Storage.Path,
		Namespace: cfg.Catalog.URL,
		RedisURL:  cfg.Storage.RedisURL,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer kv.Close()

	cleared := false
	if reset {
		if cleared, err = clearState(kv, logger); err != nil {
			return err
		}
	}

	catalog, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	favs := favorites.New(kv, logger)
	shows := showlist.New(catalog, kv,
		showlist.WithFavorites(favs),
		showlist.WithLogger(logger),
	)

	if reset && !cleared {
		// Backend can't enumerate its keys; reset through the stores
		shows.Reset()
		favs.Reset()
		logger.Info("reset saved state", "driver", cfg.Storage.Driver)
	}

	if favsOnly {
		for _, show := range favs.Filter(query) {
			printShow(os.Stdout, show)
		}
		return nil
	}

	if list || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printNextPage(os.Stdout, shows)
	}

	model := tui.NewModel(shows, favs, catalog, tui.Options{
		StartPage:     tui.ParsePage(cfg.UI.StartPage),
		GenreLimit:    cfg.UI.GenreLimit,
		InspectorOpen: cfg.UI.InspectorOpen,
	}, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// stateClearer is implemented by backends that can drop every stored key
type stateClearer interface {
	Keys() []string
	Clear() error
}

// clearState wipes kv when the backend supports it, reporting whether it did
func clearState(kv domain.KeyValueStore, logger *slog.Logger) (bool, error) {
	c, ok := kv.(stateClearer)
	if !ok {
		return false, nil
	}
	keys := c.Keys()
	if err := c.Clear(); err != nil {
		return false, fmt.Errorf("failed to clear state: %w", err)
	}
	logger.Info("cleared saved state", "keys", keys)
	return true, nil
}

// saveConfig writes the loaded configuration (defaults plus any overrides)
// so it can be edited
func saveConfig() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := adapter.SaveConfig(cfg); err != nil {
		return err
	}
	fmt.Println("✓ Configuration saved!")
	return nil
}

// printNextPage fetches one page through the list store and prints the rows
// that were added, one per line
func printNextPage(w io.Writer, shows *showlist.Store) error {
	before := len(shows.State().Shows)

	if err := loadWithSpinner(shows); err != nil {
		return err
	}

	all := shows.State().Shows
	for _, show := range all[min(before, len(all)):] {
		printShow(w, show)
	}
	return nil
}

func printShow(w io.Writer, show domain.Show) {
	fav := " "
	if show.IsFavorite {
		fav = styles.FavoriteChar
	}
	fmt.Fprintf(w, "%s %7d  %s", fav, show.ID, show.Name)
	if year := show.Year(); year > 0 {
		fmt.Fprintf(w, " (%d)", year)
	}
	if show.Rating != nil {
		fmt.Fprintf(w, "  %s", show.RatingText())
	}
	fmt.Fprintln(w)
}

// loadWithSpinner loads the next page, animating a spinner on stderr when it
// is a terminal
func loadWithSpinner(shows *showlist.Store) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		_, err := shows.LoadNextPage(ctx)
		errCh <- err
	}()

	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return <-errCh
	}

	frame := 0
	fmt.Fprintf(os.Stderr, "\r%s Loading shows...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-errCh:
			fmt.Fprint(os.Stderr, clearSpinnerLine)
			if err != nil {
				return fmt.Errorf("failed to load shows: %w", err)
			}
			return nil

		case <-ticker.C:
			frame++
			fmt.Fprintf(os.Stderr, "\r%s Loading shows...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])
		}
	}
}
