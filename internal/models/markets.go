package models

// MarketSession identifies one of the tracked trading sessions.
type MarketSession string

const (
	SessionAsia        MarketSession = "asia"
	SessionEurope      MarketSession = "europe"
	SessionUS          MarketSession = "us"
	SessionCrypto      MarketSession = "crypto"
	SessionCommodities MarketSession = "commodities"
)

// SessionStatus is whether a session is currently trading.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "open"
	SessionClosed SessionStatus = "closed"
)

// SessionInfo describes one market session's schedule and headline markets.
type SessionInfo struct {
	ID          MarketSession `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Timezone    string        `json:"timezone"`
	OpenTime    string        `json:"openTime"`  // "HH:MM" local to Timezone
	CloseTime   string        `json:"closeTime"` // "HH:MM" local to Timezone
	Status      SessionStatus `json:"status"`
	MainIndices []string      `json:"mainIndices"`
	KeyPairs    []string      `json:"keyPairs"`
}

// MarketStats is the quick-stats strip shown per session.
type MarketStats struct {
	Volume      float64 `json:"volume"`
	Volatility  float64 `json:"volatility"`
	Sentiment   string  `json:"sentiment"` // "bullish" or "bearish"
	Performance float64 `json:"performance"`
}

// PairCategory groups currency pairs on the board.
type PairCategory string

const (
	PairMajor  PairCategory = "major"
	PairMinor  PairCategory = "minor"
	PairExotic PairCategory = "exotic"
)

// CurrencyPair is one row of the currency-pair board.
type CurrencyPair struct {
	Symbol        string       `json:"symbol"`
	Name          string       `json:"name"`
	Category      PairCategory `json:"category"`
	Nickname      string       `json:"nickname,omitempty"`
	Bid           float64      `json:"bid"`
	Ask           float64      `json:"ask"`
	Change        float64      `json:"change"`
	ChangePercent float64      `json:"changePercent"`
}

// Spread returns the pair's bid/ask spread in price terms.
func (p CurrencyPair) Spread() float64 {
	return p.Ask - p.Bid
}

// Watchlist is a named list of instrument symbols.
type Watchlist struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Instruments []string `json:"instruments"`
}

// QuickStatsPrefs controls which quick stats are shown and in what order.
type QuickStatsPrefs struct {
	Enabled []string `json:"enabled"`
	Order   []string `json:"order"`
}

// UserPreferences is the persisted preference blob.
type UserPreferences struct {
	DefaultSession  MarketSession   `json:"defaultSession"`
	FavoriteMarkets []MarketSession `json:"favoriteMarkets"`
	Watchlists      []Watchlist     `json:"watchlists"`
	QuickStats      QuickStatsPrefs `json:"quickStats"`
	Theme           string          `json:"theme"` // "light", "dark", "system"
}
