package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/config"
	"github.com/xonecas/vscroll/internal/core"
	"github.com/xonecas/vscroll/internal/store"
	"github.com/xonecas/vscroll/internal/tui"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "config.toml", "Path to config file")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		dbPath      = flag.String("db", "", "Path to the row database (default ~/.vscroll/vscroll.db)")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vscroll %s\n", Version)
		os.Exit(0)
	}

	// Initialize logging
	if err := initLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", Version).Msg("Starting vscroll")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	log.Debug().Interface("config", cfg).Msg("Configuration loaded")

	// Initialize store
	s, err := openStore(*dbPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize store")
	}
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seedCtx, seedCancel := context.WithTimeout(ctx, time.Minute)
	if err := s.Seed(seedCtx, cfg.List.Rows); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed rows")
	}
	seedCancel()
	log.Debug().Int("rows", cfg.List.Rows).Msg("Store initialized")

	// Initialize event bus
	bus := core.NewEventBus(1000)
	defer bus.Close()

	go logEvents(bus.Subscribe())

	feed := core.NewFeed(s, bus, cfg.FeedInterval())
	if cfg.Feed.Enabled {
		if err := feed.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to start feed")
		}
	}
	defer feed.Stop()

	// Set up signal handling for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Subscribe to events for TUI
	eventCh := bus.Subscribe()

	model := tui.New(s, bus, eventCh, cfg)
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	go func() {
		<-sigCh
		log.Info().Msg("Received shutdown signal")
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		log.Fatal().Err(err).Msg("TUI error")
	}

	log.Info().Msg("vscroll shutdown complete")
}

func openStore(path string) (*store.Store, error) {
	if path == "" {
		return store.New()
	}
	return store.Open(path)
}

// logEvents writes bus traffic to the debug log.
func logEvents(ch <-chan core.Event) {
	for e := range ch {
		log.Debug().Str("type", string(e.Type)).Interface("data", e.Data).Msg("Event")
	}
}

func initLogging(debug bool) error {
	// Ensure data directory exists
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	// Open log file (truncate on startup)
	logPath := filepath.Join(dataDir, "vscroll.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Log to file only (TUI owns stdout/stderr)
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

	return nil
}
