// Package app orchestrates startup: configuration, logging, the
// engine tables and the price cache. Loading is fail-closed — a
// missing or malformed table stops the process before the engine runs.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/engine"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/infra"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/storage"
)

// Bootstrap holds everything the commands need after initialization.
type Bootstrap struct {
	Config *infra.Config
	Engine *engine.Engine
	Cache  *storage.PriceCache
}

// NewBootstrap creates an empty Bootstrap.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{}
}

// Initialize loads config, installs the logger and builds the engine.
func (b *Bootstrap) Initialize(configPath string) error {
	if configPath == "" {
		configPath = infra.ResolveConfigPath()
	}

	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("config load failed (engine cannot run without its tables): %w", err)
	}
	b.Config = cfg

	slog.SetDefault(infra.NewLogger(cfg))

	leagues, err := domain.NewLeagueTable(cfg.Leagues)
	if err != nil {
		// Validate() already vetted this; re-check keeps the invariant local.
		return fmt.Errorf("league table: %w", err)
	}

	b.Engine = engine.New(engine.Tables{
		Leagues:            leagues,
		Rewards:            cfg.Rewards,
		BlockTimes:         cfg.BlockTimes,
		WithdrawalMinimums: cfg.WithdrawalMinimums,
	})

	slog.Info("Engine initialized",
		slog.Int("leagues", len(cfg.Leagues)),
		slog.Int("reward_rows", len(cfg.Rewards)),
	)
	return nil
}

// OpenPriceCache opens the sqlite snapshot cache under the workspace
// data dir. The cache is an optimization: failure to open it is
// reported but callers may choose to continue without it.
func (b *Bootstrap) OpenPriceCache() error {
	dataDir := filepath.Join(infra.GetWorkspaceDir(), "data")
	if err := infra.EnsureDir(dataDir); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	cache, err := storage.NewPriceCache(filepath.Join(dataDir, "prices.db"))
	if err != nil {
		return err
	}
	b.Cache = cache
	return nil
}

// SeedPrices loads the cached snapshot into the price client, if a
// cache is open and holds one.
func (b *Bootstrap) SeedPrices(ctx context.Context, client *infra.PriceClient) {
	if b.Cache == nil {
		return
	}
	snap, ok, err := b.Cache.Load(ctx)
	if err != nil {
		slog.Warn("Price cache load failed", slog.Any("error", err))
		return
	}
	if !ok {
		return
	}
	client.Seed(snap)
	slog.Info("Price snapshot seeded from cache",
		slog.Int("assets", len(snap.USD)),
		slog.Int64("updated_um", snap.UpdatedAtUnixM),
	)
}

// Close releases bootstrap-owned resources.
func (b *Bootstrap) Close() {
	if b.Cache != nil {
		if err := b.Cache.Close(); err != nil {
			slog.Warn("Price cache close failed", slog.Any("error", err))
		}
	}
}
