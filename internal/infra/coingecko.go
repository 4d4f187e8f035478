package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
)

// geckoQuote is one asset's dual-currency quote in the CoinGecko
// simple/price response.
type geckoQuote struct {
	USD float64 `json:"usd"`
	EUR float64 `json:"eur"`
}

// PriceClient polls CoinGecko for USD/EUR spot prices on a fixed
// interval and maintains the latest PriceSnapshot. The EUR/USD cross
// rate is derived once per refresh from the anchor asset's dual quote.
// Consumers read whatever snapshot is current; staleness is tolerated.
type PriceClient struct {
	onUpdate     func(domain.PriceSnapshot)
	snapshot     domain.PriceSnapshot
	mu           sync.RWMutex
	pollInterval time.Duration
	apiURL       string
	anchorSymbol string
	httpClient   *http.Client
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

// NewPriceClient creates a price client from config. onUpdate fires on
// every successful refresh with a copy of the new snapshot; it may be
// nil.
func NewPriceClient(cfg *Config, onUpdate func(domain.PriceSnapshot)) *PriceClient {
	return &PriceClient{
		onUpdate:     onUpdate,
		snapshot:     domain.NewPriceSnapshot(),
		pollInterval: time.Duration(cfg.Prices.PollIntervalSec) * time.Second,
		apiURL:       cfg.Prices.APIURL,
		anchorSymbol: cfg.Prices.AnchorSymbol,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Seed installs a previously cached snapshot so fiat conversion works
// before the first live fetch completes.
func (c *PriceClient) Seed(snap domain.PriceSnapshot) {
	if snap.USD == nil {
		return
	}
	if snap.EURPerUSD <= 0 {
		snap.EURPerUSD = domain.DefaultEURPerUSD
	}
	c.mu.Lock()
	c.snapshot = snap.Clone()
	c.mu.Unlock()
}

// Start fetches once immediately, then begins interval polling.
func (c *PriceClient) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	if err := c.FetchOnce(ctx); err != nil {
		slog.Warn("Initial price fetch failed", slog.Any("error", err))
		// Keep going; the ticker retries.
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Price polling panic recovered", slog.Any("panic", r))
			}
		}()

		ticker := time.NewTicker(c.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Price polling stopped")
				return
			case <-ticker.C:
				if err := c.FetchOnce(ctx); err != nil {
					slog.Warn("Price fetch failed", slog.Any("error", err))
				}
			}
		}
	}()

	return nil
}

// FetchOnce fetches the current quotes with retry and updates the
// snapshot on success.
func (c *PriceClient) FetchOnce(ctx context.Context) error {
	var lastErr error
	for i := 0; i < 3; i++ {
		if i > 0 {
			delay := CalculateBackoff(i - 1)
			slog.Info("Retrying price fetch", slog.Int("attempt", i), slog.Duration("delay", delay))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		err := c.doFetch(ctx)
		if err == nil {
			return nil
		}
		lastErr = err
		slog.Warn("Price fetch attempt failed", slog.Int("attempt", i+1), slog.Any("error", err))
	}
	return lastErr
}

func (c *PriceClient) doFetch(ctx context.Context) error {
	ids := domain.PricedAssetIDs()
	idList := make([]string, 0, len(ids))
	for id := range ids {
		idList = append(idList, id)
	}
	sort.Strings(idList)

	q := url.Values{}
	q.Set("ids", strings.Join(idList, ","))
	q.Set("vs_currencies", "usd,eur")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", GetPlatformUserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var quotes map[string]geckoQuote
	if err := json.Unmarshal(body, &quotes); err != nil {
		return err
	}
	if len(quotes) == 0 {
		return fmt.Errorf("empty response from price API")
	}

	c.mu.Lock()
	next := c.snapshot.Clone()
	for id, symbol := range ids {
		quote, ok := quotes[id]
		if !ok || quote.USD <= 0 {
			continue // absent quote is a valid state; keep the old value
		}
		next.USD[symbol] = quote.USD

		if symbol == c.anchorSymbol && quote.EUR > 0 {
			// eurPerUsd = anchorUSD / anchorEUR, derived in decimal to
			// avoid compounding float error across refreshes.
			rate := decimal.NewFromFloat(quote.USD).Div(decimal.NewFromFloat(quote.EUR))
			next.EURPerUSD, _ = rate.Float64()
		}
	}
	next.UpdatedAtUnixM = time.Now().UnixMicro()
	c.snapshot = next
	c.mu.Unlock()

	slog.Info("Price snapshot updated",
		slog.Int("assets", len(next.USD)),
		slog.String("eur_per_usd", fmt.Sprintf("%.6f", next.EURPerUSD)),
	)

	if c.onUpdate != nil {
		c.onUpdate(next.Clone())
	}

	return nil
}

// Stop halts polling and waits for the worker to exit.
func (c *PriceClient) Stop() {
	if c.cancel != nil {
		c.cancel()
		c.wg.Wait()
	}
}

// Snapshot returns a copy of the current price snapshot.
func (c *PriceClient) Snapshot() domain.PriceSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot.Clone()
}
