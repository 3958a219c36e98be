package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/xonecas/vscroll/internal/constants"
	"github.com/xonecas/vscroll/internal/store"
)

// RowAppender is the part of the row store the feed writes to.
type RowAppender interface {
	Append(ctx context.Context, level store.Level, message string) (*store.Row, error)
	Version(ctx context.Context) (uint64, error)
}

var feedLines = []struct {
	level   store.Level
	message string
}{
	{store.LevelInfo, "request served"},
	{store.LevelDebug, "heartbeat"},
	{store.LevelInfo, "job finished"},
	{store.LevelWarn, "queue backing up"},
	{store.LevelInfo, "client connected"},
	{store.LevelError, "upstream timeout"},
}

// Feed appends a row every interval and announces it on the bus.
type Feed struct {
	rows     RowAppender
	bus      *EventBus
	interval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	ticks   int
	running bool
}

// NewFeed creates a feed. A non-positive interval uses the default.
func NewFeed(rows RowAppender, bus *EventBus, interval time.Duration) *Feed {
	if interval <= 0 {
		interval = constants.FeedInterval
	}
	return &Feed{
		rows:     rows,
		bus:      bus,
		interval: interval,
	}
}

// Start begins appending rows until ctx is done or Stop is called.
func (f *Feed) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running {
		return fmt.Errorf("feed already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.running = true

	f.wg.Add(1)
	go f.run(ctx)

	log.Debug().Dur("interval", f.interval).Msg("Feed started")
	return nil
}

// Stop halts the feed and waits for an in-flight append to finish.
func (f *Feed) Stop() {
	f.mu.Lock()
	if !f.running {
		f.mu.Unlock()
		return
	}
	f.cancel()
	f.running = false
	f.mu.Unlock()

	f.wg.Wait()
	log.Debug().Msg("Feed stopped")
}

// Running reports whether the feed goroutine is active.
func (f *Feed) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *Feed) run(ctx context.Context) {
	defer f.wg.Done()

	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.tick(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Warn().Err(err).Msg("Feed append failed")
				f.bus.Publish(Event{
					Type:      EventFeedError,
					Data:      ErrorData{Error: err.Error()},
					Timestamp: time.Now(),
				})
			}
		}
	}
}

func (f *Feed) tick(ctx context.Context) error {
	f.mu.Lock()
	line := feedLines[f.ticks%len(feedLines)]
	f.ticks++
	f.mu.Unlock()

	row, err := f.rows.Append(ctx, line.level, line.message)
	if err != nil {
		return fmt.Errorf("append row: %w", err)
	}
	version, err := f.rows.Version(ctx)
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}

	event := Event{
		Type:      EventRowsAppended,
		Data:      RowsAppendedData{Count: row.Index + 1, Version: version},
		Timestamp: time.Now(),
	}
	if !f.bus.PublishBlocking(event, constants.EventBusPublishTimeout) {
		log.Warn().Int("row", row.Index).Msg("Dropped rows-appended event")
	}
	return nil
}
