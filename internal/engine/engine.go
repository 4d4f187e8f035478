package engine

import (
	"log/slog"
	"strings"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/hashpow"
	"github.com/iamyahyr/rollercoin-league-calculator/pkg/safe"
)

// Status summarizes a computation outcome for the presentation layer.
type Status string

const (
	StatusOK Status = "ok"
	// The user's power input is missing, non-numeric or non-positive.
	StatusNoPower Status = "no_power"
	// The network data text is empty.
	StatusNoNetworkData Status = "no_network_data"
	// Network text was present but no asset/value pairs were recognized.
	// The parser returns the same empty snapshot for garbage and for
	// well-formed-but-empty input; the two are one sentinel here too.
	StatusNoAssets Status = "no_assets"
	// Everything parsed but no asset survived the exclusion rules for
	// the active league and mode.
	StatusNoRows Status = "no_rows"
)

// Tables are the four configuration lookup tables, loaded once before
// the first computation and immutable afterwards.
type Tables struct {
	Leagues            *domain.LeagueTable
	Rewards            map[string]map[string]float64 // league name -> symbol -> reward/block
	BlockTimes         map[string]float64            // symbol -> minutes
	WithdrawalMinimums map[string]float64            // symbol -> native amount
}

// Engine is the earnings computation core. It is stateless and safe
// for concurrent use; all per-user state lives in the Session the
// caller passes in.
type Engine struct {
	tables Tables
}

// New wraps validated configuration tables in an Engine.
func New(tables Tables) *Engine {
	return &Engine{tables: tables}
}

// Input is one complete user request.
type Input struct {
	Power       float64            `json:"power"`
	Unit        hashpow.Unit       `json:"unit"`
	NetworkData string             `json:"network_data"`
	Mode        domain.DisplayMode `json:"mode"`
}

// Row is one rendered line of the earnings table. All figures are
// preformatted display strings in the requested currency; consumers
// render them literally.
type Row struct {
	Symbol     string             `json:"symbol"`
	Name       string             `json:"name"`
	Color      string             `json:"color"`
	IconPath   string             `json:"icon_path"`
	PerBlock   string             `json:"per_block"`
	PerDay     string             `json:"per_day"`
	PerWeek    string             `json:"per_week"`
	PerMonth   string             `json:"per_month"`
	Withdrawal WithdrawalEstimate `json:"withdrawal"`
}

// LeagueBadge carries the classified league for display.
type LeagueBadge struct {
	Name      string `json:"name"`
	Class     string `json:"class"`
	ImagePath string `json:"image_path"`
}

// Report is the full engine output for one input.
type Report struct {
	Status Status             `json:"status"`
	Mode   domain.DisplayMode `json:"mode"`
	League LeagueBadge        `json:"league"`
	Rows   []Row              `json:"rows"`
}

func badge(l domain.League) LeagueBadge {
	return LeagueBadge{Name: l.Name, Class: l.Class, ImagePath: l.BadgeImagePath()}
}

// Compute runs the full pipeline: normalize the user's power, classify
// the league, parse network data, project per-asset earnings, convert
// to the display currency and estimate withdrawal times. The session
// is updated in place so the caller can recompute later (e.g. on a
// price refresh) without re-parsing intent. Compute is a fault
// barrier: it never panics out; an unexpected fault degrades to an
// empty no-rows report.
func (e *Engine) Compute(sess *domain.Session, in Input, prices domain.PriceSnapshot) (report Report) {
	mode := domain.ParseDisplayMode(string(in.Mode))
	sess.Mode = mode

	defer func() {
		if r := recover(); r != nil {
			slog.Error("earnings computation fault", slog.Any("panic", r))
			report = Report{Status: StatusNoRows, Mode: mode, League: badge(domain.DefaultLeague)}
		}
	}()

	userGH := hashpow.ToGH(in.Power, in.Unit)
	if !safe.Positive(userGH) {
		sess.PowerGH = 0
		sess.League = nil
		return Report{Status: StatusNoPower, Mode: mode, League: badge(domain.DefaultLeague)}
	}

	league := e.tables.Leagues.Classify(userGH)
	sess.PowerGH = userGH
	sess.League = &league

	if strings.TrimSpace(in.NetworkData) == "" {
		return Report{Status: StatusNoNetworkData, Mode: mode, League: badge(league)}
	}

	network := ParseNetworkData(in.NetworkData)
	sess.Network = network
	if len(network) == 0 {
		return Report{Status: StatusNoAssets, Mode: mode, League: badge(league)}
	}

	rows := e.buildRows(league, mode, userGH, network, prices)
	status := StatusOK
	if len(rows) == 0 {
		status = StatusNoRows
	}
	return Report{Status: status, Mode: mode, League: badge(league), Rows: rows}
}

// Recompute replays the session's last accepted input against a fresh
// price snapshot. Used by the stream path when prices refresh.
func (e *Engine) Recompute(sess *domain.Session, prices domain.PriceSnapshot) (Report, bool) {
	if sess == nil || sess.League == nil || len(sess.Network) == 0 {
		return Report{}, false
	}
	rows := e.buildRows(*sess.League, sess.Mode, sess.PowerGH, sess.Network, prices)
	status := StatusOK
	if len(rows) == 0 {
		status = StatusNoRows
	}
	return Report{Status: status, Mode: sess.Mode, League: badge(*sess.League), Rows: rows}, true
}

func (e *Engine) buildRows(league domain.League, mode domain.DisplayMode, userGH float64, network domain.NetworkSnapshot, prices domain.PriceSnapshot) []Row {
	rewards := e.tables.Rewards[league.Name]
	if len(rewards) == 0 {
		return nil
	}

	var rows []Row
	for _, info := range domain.Assets() {
		reward, hasReward := rewards[info.Symbol]
		measurement, hasPower := network[info.Symbol]
		if !hasReward || !hasPower {
			continue
		}
		// Game tokens have no market quote: shown in native mode only.
		if mode.Fiat() && info.IsGameToken {
			continue
		}

		earnings, ok := Project(reward, measurement.GH(), userGH, e.tables.BlockTimes[info.Symbol])
		if !ok {
			continue
		}

		row := Row{
			Symbol:   info.Symbol,
			Name:     info.Name,
			Color:    info.Color,
			IconPath: info.IconPath,
		}

		// Game tokens stay in native units regardless of mode.
		rowMode := mode
		if info.IsGameToken {
			rowMode = domain.ModeNative
		}
		price, _ := prices.Price(info.Symbol)
		row.PerBlock = e.display(earnings.PerBlock, price, rowMode, prices.EURPerUSD, info.Name)
		row.PerDay = e.display(earnings.PerDay, price, rowMode, prices.EURPerUSD, info.Name)
		row.PerWeek = e.display(earnings.PerWeek, price, rowMode, prices.EURPerUSD, info.Name)
		row.PerMonth = e.display(earnings.PerMonth, price, rowMode, prices.EURPerUSD, info.Name)

		if min, ok := e.tables.WithdrawalMinimums[info.Symbol]; ok {
			row.Withdrawal = EstimateWithdrawal(earnings.PerDay, min)
		} else {
			row.Withdrawal = WithdrawalUnavailable
		}

		rows = append(rows, row)
	}
	return rows
}

// display converts one native figure into its final display string.
func (e *Engine) display(native, priceUSD float64, mode domain.DisplayMode, eurPerUSD float64, name string) string {
	amount, ok := Convert(native, priceUSD, mode, eurPerUSD)
	if !ok {
		return "N/A"
	}
	switch mode {
	case domain.ModeUSD:
		return "$" + FormatAmount(amount, mode)
	case domain.ModeEUR:
		return "€" + FormatAmount(amount, mode)
	default:
		return FormatAmount(amount, mode) + " " + name
	}
}
