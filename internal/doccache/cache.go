package doccache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"soundhaus/internal/logging"
)

//go:embed schema.sql
var schemaSQL string

// Store manages summary persistence backed by SQLite.
type Store struct {
	db     *sql.DB
	path   string
	lock   *flock.Flock
	logger *slog.Logger
}

// Stats describes cache contents for the status command.
type Stats struct {
	Path      string
	Entries   int64
	SizeBytes int64
}

// Open initializes or connects to the cache database at path.
func Open(path string, logger *slog.Logger) (*Store, error) {
	logger = logging.NewComponentLogger(logger, "doccache")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}

	return &Store{
		db:     db,
		path:   path,
		lock:   flock.New(path + ".lock"),
		logger: logger,
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Lookup returns the cached summary JSON for a content hash, if present.
func (s *Store) Lookup(ctx context.Context, contentHash string) (string, bool, error) {
	var summary string
	err := s.db.QueryRowContext(ctx,
		"SELECT summary FROM summaries WHERE content_hash = ?", contentHash,
	).Scan(&summary)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup: %w", err)
	}
	return summary, true, nil
}

// Save stores or replaces the summary for a content hash.
func (s *Store) Save(ctx context.Context, contentHash, summaryJSON string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO summaries (content_hash, summary, created_at) VALUES (?, ?, ?)",
		contentHash, summaryJSON, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("cache save: %w", err)
	}
	s.logger.Debug("summary cached", logging.String("content_hash", contentHash))
	return nil
}

// Clear drops every cached entry. A file lock serializes clears across
// processes so two concurrent clears cannot interleave with writers.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("acquire cache lock: %w", err)
	}
	defer func() {
		_ = s.lock.Unlock()
	}()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM summaries"); err != nil {
		return fmt.Errorf("cache clear: %w", err)
	}
	return nil
}

// Stats reports entry count and on-disk size.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	stats := Stats{Path: s.path}

	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM summaries").Scan(&stats.Entries); err != nil {
		return Stats{}, fmt.Errorf("cache stats: %w", err)
	}
	if info, err := os.Stat(s.path); err == nil {
		stats.SizeBytes = info.Size()
	}
	return stats, nil
}
