package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/app"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/infra"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: auto-resolve)")
	flag.Parse()

	// Optional .env for the LEAGUECALC_* overrides.
	_ = godotenv.Load()

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	cfg := bootstrap.Config
	infra.PrintBanner(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bootstrap.OpenPriceCache(); err != nil {
		slog.Warn("Price cache unavailable, continuing without it", slog.Any("error", err))
	}

	// Server first so the price client can fan updates out to it.
	var srv *server.Server

	priceClient := infra.NewPriceClient(cfg, func(snap domain.PriceSnapshot) {
		if bootstrap.Cache != nil {
			if err := bootstrap.Cache.Save(context.Background(), snap); err != nil {
				slog.Warn("Price cache save failed", slog.Any("error", err))
			}
		}
		if srv != nil {
			srv.NotifyPrices(snap)
		}
	})
	srv = server.NewServer(bootstrap.Engine, priceClient, cfg.Server.AllowedOrigins)

	bootstrap.SeedPrices(ctx, priceClient)
	if err := priceClient.Start(ctx); err != nil {
		slog.Error("Failed to start price client", slog.Any("error", err))
	}
	defer priceClient.Stop()

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("HTTP server listening", slog.String("addr", cfg.Server.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", slog.Any("error", err))
	}
}
