package engine

import (
	"strings"
	"testing"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	table, err := domain.NewLeagueTable([]domain.League{
		{Name: "BRONZE I", Class: "bronze", MinGH: 0, MaxGH: 1000},
		{Name: "SILVER I", Class: "silver", MinGH: 1000, MaxGH: 1_000_000},
	})
	if err != nil {
		t.Fatalf("league table: %v", err)
	}
	return New(Tables{
		Leagues: table,
		Rewards: map[string]map[string]float64{
			"BRONZE I": {"BTC": 2, "RLT": 50},
			"SILVER I": {"BTC": 4, "RLT": 120, "ETH": 1},
		},
		BlockTimes:         map[string]float64{"BTC": 10, "ETH": 0.25},
		WithdrawalMinimums: map[string]float64{"BTC": 0.005, "RLT": 10},
	})
}

func testPrices() domain.PriceSnapshot {
	return domain.PriceSnapshot{
		USD:       map[string]float64{"BTC": 60000},
		EURPerUSD: 1.2,
	}
}

const networkText = "BTC\n1 TH/s\nRLT\n2 PH/s\nETH\n1 PH/s\n"

func TestComputeStatuses(t *testing.T) {
	eng := testEngine(t)

	t.Run("No Power", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 0, Unit: hashpow.GH, NetworkData: networkText}, testPrices())
		if rep.Status != StatusNoPower {
			t.Errorf("status = %s, want %s", rep.Status, StatusNoPower)
		}
		if rep.League.Name != "BRONZE I" {
			t.Errorf("league = %s, want default badge", rep.League.Name)
		}
	})

	t.Run("No Network Data", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: "  \n "}, testPrices())
		if rep.Status != StatusNoNetworkData {
			t.Errorf("status = %s, want %s", rep.Status, StatusNoNetworkData)
		}
	})

	t.Run("Garbage Network Data", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: "nothing useful here"}, testPrices())
		if rep.Status != StatusNoAssets {
			t.Errorf("status = %s, want %s", rep.Status, StatusNoAssets)
		}
	})

	t.Run("OK", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: networkText}, testPrices())
		if rep.Status != StatusOK {
			t.Fatalf("status = %s, want ok", rep.Status)
		}
		if sess.PowerGH != 100 || sess.League == nil || sess.League.Name != "BRONZE I" {
			t.Errorf("session not updated: %+v", sess)
		}
	})
}

func TestComputeRows(t *testing.T) {
	eng := testEngine(t)

	t.Run("Native Mode", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: networkText}, testPrices())
		// BRONZE I rewards: BTC and RLT; ETH has no reward in this league.
		if len(rep.Rows) != 2 {
			t.Fatalf("rows = %d, want 2: %+v", len(rep.Rows), rep.Rows)
		}
		// Registry order puts RLT before BTC.
		if rep.Rows[0].Symbol != "RLT" || rep.Rows[1].Symbol != "BTC" {
			t.Errorf("row order = %s, %s; want RLT, BTC", rep.Rows[0].Symbol, rep.Rows[1].Symbol)
		}
		if !strings.HasSuffix(rep.Rows[1].PerBlock, " BTC") {
			t.Errorf("native row lacks unit suffix: %q", rep.Rows[1].PerBlock)
		}
		if rep.Rows[1].Withdrawal.Severity == SeverityNone {
			t.Errorf("BTC withdrawal estimate missing: %+v", rep.Rows[1].Withdrawal)
		}
	})

	t.Run("League Switch Changes Reward Set", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 5, Unit: hashpow.PH, NetworkData: networkText}, testPrices())
		if sess.League.Name != "SILVER I" {
			t.Fatalf("league = %s, want SILVER I", sess.League.Name)
		}
		if len(rep.Rows) != 3 {
			t.Errorf("rows = %d, want 3 (ETH rewarded in SILVER I)", len(rep.Rows))
		}
	})

	t.Run("Fiat Mode Excludes Game Tokens", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: networkText, Mode: domain.ModeUSD}, testPrices())
		for _, row := range rep.Rows {
			if row.Symbol == "RLT" {
				t.Error("game token row present in usd mode")
			}
		}
		if len(rep.Rows) != 1 || !strings.HasPrefix(rep.Rows[0].PerBlock, "$") {
			t.Errorf("unexpected usd rows: %+v", rep.Rows)
		}
	})

	t.Run("Unpriced Asset Shows NA In Fiat", func(t *testing.T) {
		sess := domain.NewSession()
		rep := eng.Compute(sess, Input{Power: 5, Unit: hashpow.PH, NetworkData: networkText, Mode: domain.ModeEUR}, testPrices())
		// ETH has no quote in the fixture snapshot.
		var ethRow *Row
		for i := range rep.Rows {
			if rep.Rows[i].Symbol == "ETH" {
				ethRow = &rep.Rows[i]
			}
		}
		if ethRow == nil {
			t.Fatal("ETH row missing")
		}
		if ethRow.PerDay != "N/A" {
			t.Errorf("ETH per-day = %q, want N/A", ethRow.PerDay)
		}
		if ethRow.Withdrawal != WithdrawalUnavailable {
			t.Errorf("ETH withdrawal = %+v, want unavailable", ethRow.Withdrawal)
		}
	})

	t.Run("Zero Network Power Row Excluded", func(t *testing.T) {
		sess := domain.NewSession()
		text := "BTC\n1 TH/s\nRLT\n0,0 PH/s\n"
		rep := eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: text}, testPrices())
		for _, row := range rep.Rows {
			if row.Symbol == "RLT" {
				t.Error("asset with non-positive network power must not emit a row")
			}
		}
	})
}

func TestRecompute(t *testing.T) {
	eng := testEngine(t)
	sess := domain.NewSession()

	if _, ok := eng.Recompute(sess, testPrices()); ok {
		t.Error("recompute with no prior input must report not-ready")
	}

	eng.Compute(sess, Input{Power: 100, Unit: hashpow.GH, NetworkData: networkText, Mode: domain.ModeUSD}, testPrices())

	fresh := testPrices()
	fresh.USD["BTC"] = 70000
	rep, ok := eng.Recompute(sess, fresh)
	if !ok || rep.Status != StatusOK {
		t.Fatalf("recompute = (%+v, %v)", rep, ok)
	}
	if len(rep.Rows) != 1 || rep.Rows[0].Symbol != "BTC" {
		t.Fatalf("unexpected rows: %+v", rep.Rows)
	}
}
