// Command leaguecalc runs one earnings calculation from the terminal:
// power and mode from flags, network data from a file or stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/app"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/engine"
	"github.com/iamyahyr/rollercoin-league-calculator/internal/infra"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
)

func main() {
	configPath := flag.String("config", "", "path to config.yaml (default: auto-resolve)")
	power := flag.String("power", "", "your mining power, e.g. 1.5 (decimal comma accepted)")
	unit := flag.String("unit", "GH", "power unit: GH, PH, EH or ZH")
	mode := flag.String("mode", "crypto", "display mode: crypto, usd or eur")
	networkFile := flag.String("network", "-", "network data file, or - for stdin")
	flag.Parse()

	bootstrap := app.NewBootstrap()
	if err := bootstrap.Initialize(*configPath); err != nil {
		slog.Error("Bootstrapping failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer bootstrap.Close()

	networkData, err := readNetworkData(*networkFile)
	if err != nil {
		slog.Error("Failed to read network data", slog.Any("error", err))
		os.Exit(1)
	}

	powerValue, err := engine.ParseLocaleNumber(*power)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid --power value; expected a positive number")
		os.Exit(2)
	}

	in := engine.Input{
		Power:       powerValue,
		Unit:        hashpow.ParseUnit(*unit),
		NetworkData: networkData,
		Mode:        domain.ParseDisplayMode(*mode),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prices := fetchPrices(ctx, bootstrap, in.Mode)

	sess := domain.NewSession()
	report := bootstrap.Engine.Compute(sess, in, prices)
	render(report)
}

func readNetworkData(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// fetchPrices prefers the cached snapshot; in fiat modes it falls back
// to one live fetch when the cache is empty.
func fetchPrices(ctx context.Context, bootstrap *app.Bootstrap, mode domain.DisplayMode) domain.PriceSnapshot {
	client := infra.NewPriceClient(bootstrap.Config, nil)

	if err := bootstrap.OpenPriceCache(); err == nil {
		bootstrap.SeedPrices(ctx, client)
	}

	snap := client.Snapshot()
	if mode.Fiat() && len(snap.USD) == 0 {
		if err := client.FetchOnce(ctx); err != nil {
			slog.Warn("Live price fetch failed; fiat figures will be N/A", slog.Any("error", err))
		}
		snap = client.Snapshot()
	}
	return snap
}

func render(report engine.Report) {
	fmt.Printf("League: %s\n", report.League.Name)

	switch report.Status {
	case engine.StatusOK:
	case engine.StatusNoPower:
		fmt.Println("No data: enter a positive mining power.")
		return
	case engine.StatusNoNetworkData:
		fmt.Println("No data: provide network statistics text.")
		return
	default:
		fmt.Println("No data available for current league or network data.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ASSET\tPER BLOCK\tDAILY\tWEEKLY\tMONTHLY\tWITHDRAWAL")
	for _, row := range report.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Symbol, row.PerBlock, row.PerDay, row.PerWeek, row.PerMonth, row.Withdrawal.Text)
	}
	w.Flush()
}
