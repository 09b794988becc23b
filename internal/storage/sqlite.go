// Package storage persists user corrections so the learning layer survives
// process restarts.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cassis-finance/cassis/internal/common"
	"github.com/cassis-finance/cassis/internal/service"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Write retry policy. SQLITE_BUSY from a concurrent reader is transient.
var writeRetry = service.RetryOptions{
	MaxAttempts:  3,
	InitialDelay: 50 * time.Millisecond,
	MaxDelay:     500 * time.Millisecond,
	Multiplier:   2.0,
}

// SQLiteCorrectionStore implements service.CorrectionStore using SQLite.
type SQLiteCorrectionStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteCorrectionStore opens (and if needed creates) the corrections
// database at dbPath and runs migrations.
func NewSQLiteCorrectionStore(ctx context.Context, dbPath string) (*SQLiteCorrectionStore, error) {
	if strings.TrimSpace(dbPath) == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	if dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite does not benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLiteCorrectionStore{db: db, dbPath: dbPath}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// SaveCorrection appends one correction. Corrections are append-only; history
// is never rewritten.
func (s *SQLiteCorrectionStore) SaveCorrection(ctx context.Context, c service.Correction) error {
	if strings.TrimSpace(c.Merchant) == "" {
		return fmt.Errorf("merchant cannot be empty")
	}
	createdAt := c.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	err := common.WithRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx,
			`INSERT INTO corrections (merchant, suggested_tag, actual_tag, accepted, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			strings.ToLower(strings.TrimSpace(c.Merchant)), c.SuggestedTag, c.ActualTag, c.Accepted, createdAt)
		return execErr
	}, writeRetry)
	if err != nil {
		return fmt.Errorf("failed to save correction: %w", err)
	}
	return nil
}

// ListCorrections returns all corrections in insertion order, oldest first.
func (s *SQLiteCorrectionStore) ListCorrections(ctx context.Context) ([]service.Correction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT merchant, suggested_tag, actual_tag, accepted, created_at
		 FROM corrections ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list corrections: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []service.Correction
	for rows.Next() {
		var c service.Correction
		if err := rows.Scan(&c.Merchant, &c.SuggestedTag, &c.ActualTag, &c.Accepted, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan correction: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corrections: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (s *SQLiteCorrectionStore) Close() error {
	return s.db.Close()
}
