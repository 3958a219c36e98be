package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/config"
	"github.com/xonecas/vscroll/internal/core"
	"github.com/xonecas/vscroll/internal/gui"
	"github.com/xonecas/vscroll/internal/store"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version and exit")
		configPath  = flag.String("config", "config.toml", "Path to config file")
		debug       = flag.Bool("debug", false, "Enable debug logging")
		dbPath      = flag.String("db", "", "Path to the row database (default ~/.vscroll/vscroll.db)")
		tiles       = flag.Float64("tiles", 0, "Scroll a checkerboard of this cell size instead of rows")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("vscroll-gui %s\n", Version)
		os.Exit(0)
	}

	if err := initLogging(*debug); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}

	log.Info().Str("version", Version).Msg("Starting vscroll-gui")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	if *tiles > 0 {
		cfg.Window.TileSize = *tiles
	}

	var s *store.Store
	if *dbPath == "" {
		s, err = store.New()
	} else {
		s, err = store.Open(*dbPath)
	}
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

	bus := core.NewEventBus(1000)
	defer bus.Close()

	go func(ch <-chan core.Event) {
		for e := range ch {
			log.Debug().Str("type", string(e.Type)).Interface("data", e.Data).Msg("Event")
		}
	}(bus.Subscribe())

	feed := core.NewFeed(s, bus, cfg.FeedInterval())
	if cfg.Feed.Enabled {
		if err := feed.Start(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to start feed")
		}
	}
	defer feed.Stop()

	game, err := gui.NewGame(s, bus, bus.Subscribe(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create window")
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("Window error")
	}

	log.Info().Msg("vscroll-gui shutdown complete")
}

func initLogging(debug bool) error {
	dataDir, err := config.EnsureDataDir()
	if err != nil {
		return fmt.Errorf("ensure data dir: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dataDir, "vscroll-gui.log"), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	// Debug logs also go to stderr.
	var w = zerolog.MultiLevelWriter(logFile)
	if debug {
		w = zerolog.MultiLevelWriter(logFile, zerolog.ConsoleWriter{Out: os.Stderr})
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return nil
}
