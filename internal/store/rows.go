package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Level is the severity of a log row.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var seedLevels = [...]Level{LevelInfo, LevelInfo, LevelDebug, LevelInfo, LevelWarn, LevelInfo, LevelDebug, LevelError}

var seedMessages = [...]string{
	"request served",
	"cache refreshed",
	"connection accepted",
	"worker idle",
	"slow response",
	"config reloaded",
	"heartbeat",
	"upstream unavailable",
}

// Row is one stored log line. Index is its zero-based position in the list.
type Row struct {
	Index     int
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}

// Seed fills an empty store with n generated rows in a single transaction.
// A store that already has rows is left alone.
func (s *Store) Seed(ctx context.Context, n int) error {
	count, err := s.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 || n <= 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rows (id, level, message, created_at)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()

	start := time.Now().UTC().Add(-time.Duration(n) * time.Second)
	for i := 0; i < n; i++ {
		msg := fmt.Sprintf("%s #%d", seedMessages[i%len(seedMessages)], i)
		at := start.Add(time.Duration(i) * time.Second)
		if _, err := stmt.ExecContext(ctx, uuid.New().String(), seedLevels[i%len(seedLevels)], msg, at); err != nil {
			return fmt.Errorf("insert seed row %d: %w", i, err)
		}
	}

	if err := bumpVersion(ctx, tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Debug().Int("rows", n).Msg("Seeded row store")
	return nil
}

// Append adds a row at the end of the list.
func (s *Store) Append(ctx context.Context, level Level, message string) (*Row, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO rows (id, level, message, created_at)
		VALUES (?, ?, ?, ?)
	`, id, level, message, now)
	if err != nil {
		return nil, fmt.Errorf("insert row: %w", err)
	}
	seq, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("row id: %w", err)
	}
	if err := bumpVersion(ctx, tx); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit append: %w", err)
	}

	return &Row{
		Index:     int(seq - 1),
		ID:        id,
		Level:     level,
		Message:   message,
		CreatedAt: now,
	}, nil
}

// Count returns the number of rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rows`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return count, nil
}

// Rows returns the rows at positions [first, last), clamped to the stored rows.
func (s *Store) Rows(ctx context.Context, first, last int) ([]*Row, error) {
	if first < 0 {
		first = 0
	}
	if last <= first {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, id, level, message, created_at
		FROM rows
		WHERE seq > ? AND seq <= ?
		ORDER BY seq ASC
	`, first, last)
	if err != nil {
		return nil, fmt.Errorf("query rows: %w", err)
	}
	defer rows.Close()

	out := make([]*Row, 0, last-first)
	for rows.Next() {
		var r Row
		var seq int64
		if err := rows.Scan(&seq, &r.ID, &r.Level, &r.Message, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		r.Index = int(seq - 1)
		out = append(out, &r)
	}

	return out, rows.Err()
}

// Row returns the row at position i.
func (s *Store) Row(ctx context.Context, i int) (*Row, error) {
	var r Row
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT seq, id, level, message, created_at
		FROM rows
		WHERE seq = ?
	`, i+1).Scan(&seq, &r.ID, &r.Level, &r.Message, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("row %d: %w", i, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get row: %w", err)
	}
	r.Index = int(seq - 1)
	return &r, nil
}

// Version returns a counter that increases with every write.
func (s *Store) Version(ctx context.Context) (uint64, error) {
	var v int64
	if err := s.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'version'`).Scan(&v); err != nil {
		return 0, fmt.Errorf("get version: %w", err)
	}
	return uint64(v), nil
}

func bumpVersion(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx, `UPDATE meta SET value = value + 1 WHERE key = 'version'`); err != nil {
		return fmt.Errorf("bump version: %w", err)
	}
	return nil
}
