package domain

import (
	"sort"
	"strings"
)

// AssetInfo describes one supported asset's static metadata.
// Loaded once at process start, immutable thereafter.
type AssetInfo struct {
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Color       string `json:"color"`      // Hex color for UI rendering
	IconPath    string `json:"icon_path"`  // Relative icon asset path
	CoinGeckoID string `json:"-"`          // Empty for game tokens (no market quote)
	IsGameToken bool   `json:"game_token"` // Game tokens have no fiat price
	SortOrder   int    `json:"sort_order"`
	Alias       string `json:"-"` // Legacy alternate symbol, if any
}

// Registry of every asset the calculator understands. Game tokens
// (RLT, RST) are native-only: they appear in native display mode but
// never in USD/EUR modes.
var assets = []AssetInfo{
	{Symbol: "RLT", Name: "RLT", Color: "#03E1E4", IconPath: "crypto_icons/rlt.png", IsGameToken: true, SortOrder: 1},
	{Symbol: "RST", Name: "RST", Color: "#FFDC00", IconPath: "crypto_icons/rst.png", IsGameToken: true, SortOrder: 2},
	{Symbol: "BTC", Name: "BTC", Color: "#F7931A", IconPath: "crypto_icons/btc.png", CoinGeckoID: "bitcoin", SortOrder: 3},
	{Symbol: "ETH", Name: "ETH", Color: "#987EFF", IconPath: "crypto_icons/eth.png", CoinGeckoID: "ethereum", SortOrder: 4},
	{Symbol: "BNB", Name: "BNB", Color: "#F3BA2F", IconPath: "crypto_icons/bnb.png", CoinGeckoID: "binancecoin", SortOrder: 5},
	{Symbol: "POL", Name: "POL", Color: "#8247E5", IconPath: "crypto_icons/pol.png", CoinGeckoID: "polygon-ecosystem-token", SortOrder: 6, Alias: "MATIC"},
	{Symbol: "XRP", Name: "XRP", Color: "#E5E6E7", IconPath: "crypto_icons/xrp.png", CoinGeckoID: "ripple", SortOrder: 7},
	{Symbol: "DOGE", Name: "DOGE", Color: "#C2A633", IconPath: "crypto_icons/doge.png", CoinGeckoID: "dogecoin", SortOrder: 8},
	{Symbol: "TRX", Name: "TRX", Color: "#D3392F", IconPath: "crypto_icons/trx.png", CoinGeckoID: "tron", SortOrder: 9},
	{Symbol: "SOL", Name: "SOL", Color: "#21EBAA", IconPath: "crypto_icons/sol.png", CoinGeckoID: "solana", SortOrder: 10},
	{Symbol: "LTC", Name: "LTC", Color: "#345D9D", IconPath: "crypto_icons/ltc.png", CoinGeckoID: "litecoin", SortOrder: 11},
}

// Assets returns the full registry ordered by SortOrder.
func Assets() []AssetInfo {
	out := make([]AssetInfo, len(assets))
	copy(out, assets)
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

// AssetBySymbol looks up an asset by its canonical symbol.
func AssetBySymbol(symbol string) (AssetInfo, bool) {
	for _, a := range assets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return AssetInfo{}, false
}

// ResolveSymbol matches a raw input line against the registry,
// case-insensitively, accepting either the canonical symbol or its
// legacy alias. It returns the canonical symbol on a match.
func ResolveSymbol(line string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, a := range assets {
		if upper == a.Symbol || (a.Alias != "" && upper == a.Alias) {
			return a.Symbol, true
		}
	}
	return "", false
}

// PricedAssetIDs returns CoinGecko id -> symbol for every asset that
// carries a market quote.
func PricedAssetIDs() map[string]string {
	ids := make(map[string]string)
	for _, a := range assets {
		if a.CoinGeckoID != "" {
			ids[a.CoinGeckoID] = a.Symbol
		}
	}
	return ids
}
