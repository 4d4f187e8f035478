package infra

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/iamyahyr/rollercoin-league-calculator/internal/domain"
)

// Config holds every setting the calculator needs, including the four
// core lookup tables. All tables are loaded once before the first
// computation; a missing or malformed table fails the load outright.
type Config struct {
	App struct {
		Name    string `yaml:"name"`
		Version string `yaml:"version"`
	} `yaml:"app"`

	Leagues            []domain.League               `yaml:"leagues"`
	Rewards            map[string]map[string]float64 `yaml:"league_rewards"`
	BlockTimes         map[string]float64            `yaml:"block_times"`          // minutes per block
	WithdrawalMinimums map[string]float64            `yaml:"withdrawal_minimums"` // native units

	Prices struct {
		APIURL          string `yaml:"api_url"`
		PollIntervalSec int    `yaml:"poll_interval_sec"`
		AnchorSymbol    string `yaml:"anchor_symbol"` // dual-quote asset the EUR/USD rate derives from
	} `yaml:"prices"`

	Server struct {
		Addr           string   `yaml:"addr"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`

	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// LoadConfig reads and parses the config file, applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	overrideWithEnv(&cfg)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Prices.APIURL == "" {
		c.Prices.APIURL = "https://api.coingecko.com/api/v3/simple/price"
	}
	if c.Prices.PollIntervalSec <= 0 {
		c.Prices.PollIntervalSec = 60
	}
	if c.Prices.AnchorSymbol == "" {
		c.Prices.AnchorSymbol = "BTC"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:8090"
	}
}

// Validate checks the four tables are present and coherent. Loading is
// fail-closed: the engine must not start with a partial table set.
func (c *Config) Validate() error {
	if _, err := domain.NewLeagueTable(c.Leagues); err != nil {
		return fmt.Errorf("leagues: %w", err)
	}

	if len(c.Rewards) == 0 {
		return fmt.Errorf("league_rewards table is missing")
	}
	known := make(map[string]bool, len(c.Leagues))
	for _, l := range c.Leagues {
		known[l.Name] = true
	}
	for leagueName, rewards := range c.Rewards {
		if !known[leagueName] {
			return fmt.Errorf("league_rewards references unknown league %q", leagueName)
		}
		for sym, reward := range rewards {
			if _, ok := domain.AssetBySymbol(sym); !ok {
				return fmt.Errorf("league_rewards[%s] references unknown asset %q", leagueName, sym)
			}
			if reward <= 0 {
				return fmt.Errorf("league_rewards[%s][%s] must be positive, got %v", leagueName, sym, reward)
			}
		}
	}

	if len(c.BlockTimes) == 0 {
		return fmt.Errorf("block_times table is missing")
	}
	for sym, minutes := range c.BlockTimes {
		if minutes <= 0 {
			return fmt.Errorf("block_times[%s] must be positive, got %v", sym, minutes)
		}
	}

	if len(c.WithdrawalMinimums) == 0 {
		return fmt.Errorf("withdrawal_minimums table is missing")
	}
	for sym, min := range c.WithdrawalMinimums {
		if min <= 0 {
			return fmt.Errorf("withdrawal_minimums[%s] must be positive, got %v", sym, min)
		}
	}

	if _, ok := domain.AssetBySymbol(c.Prices.AnchorSymbol); !ok {
		return fmt.Errorf("prices.anchor_symbol %q is not a known asset", c.Prices.AnchorSymbol)
	}

	return nil
}

// overrideWithEnv lets deployment environments supersede file values.
func overrideWithEnv(cfg *Config) {
	if url := os.Getenv("LEAGUECALC_PRICE_API_URL"); url != "" {
		cfg.Prices.APIURL = url
	}
	if sec := os.Getenv("LEAGUECALC_PRICE_POLL_SEC"); sec != "" {
		if n, err := strconv.Atoi(sec); err == nil && n > 0 {
			cfg.Prices.PollIntervalSec = n
		}
	}
	if addr := os.Getenv("LEAGUECALC_SERVER_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if level := os.Getenv("LEAGUECALC_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
}
