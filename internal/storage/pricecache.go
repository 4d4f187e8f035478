// Package storage persists the last good price snapshot so fiat
// conversion works immediately after a restart, before the first live
// fetch completes. User inputs are never persisted.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/glebarez/go-sqlite"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
)

const latestKey = "latest"

// PriceCache is a small SQLite-backed KV store for price snapshots.
type PriceCache struct {
	db *sql.DB
}

// NewPriceCache opens (or creates) the cache database with WAL mode.
func NewPriceCache(dbPath string) (*PriceCache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS price_snapshots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create price_snapshots table: %w", err)
	}

	return &PriceCache{db: db}, nil
}

// Save upserts the snapshot as the latest cached value.
func (c *PriceCache) Save(ctx context.Context, snap domain.PriceSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = c.db.ExecContext(ctx,
		"INSERT INTO price_snapshots (key, value, updated_at) VALUES (?, ?, ?) ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at",
		latestKey, string(payload), snap.UpdatedAtUnixM,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert snapshot: %w", err)
	}
	return nil
}

// Load returns the latest cached snapshot. ok is false when the cache
// is empty.
func (c *PriceCache) Load(ctx context.Context) (domain.PriceSnapshot, bool, error) {
	var payload string
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM price_snapshots WHERE key = ?", latestKey,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return domain.PriceSnapshot{}, false, nil
	}
	if err != nil {
		return domain.PriceSnapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snap domain.PriceSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return domain.PriceSnapshot{}, false, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return snap, true, nil
}

// Close releases the underlying database handle.
func (c *PriceCache) Close() error {
	return c.db.Close()
}
