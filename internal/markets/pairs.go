package markets

import (
	"math/rand"
	"strings"

	"tradingdesk/internal/models"
)

// defaultPairs is the canned currency-pair board.
var defaultPairs = []models.CurrencyPair{
	// Majors
	{Symbol: "EUR/USD", Name: "Euro / US Dollar", Category: models.PairMajor, Nickname: "Fiber", Bid: 1.0921, Ask: 1.0923},
	{Symbol: "USD/JPY", Name: "US Dollar / Japanese Yen", Category: models.PairMajor, Nickname: "Gopher", Bid: 149.31, Ask: 149.33},
	{Symbol: "GBP/USD", Name: "British Pound / US Dollar", Category: models.PairMajor, Nickname: "Cable", Bid: 1.2651, Ask: 1.2653},
	{Symbol: "USD/CHF", Name: "US Dollar / Swiss Franc", Category: models.PairMajor, Nickname: "Swissie", Bid: 0.8821, Ask: 0.8823},
	{Symbol: "AUD/USD", Name: "Australian Dollar / US Dollar", Category: models.PairMajor, Nickname: "Aussie", Bid: 0.6551, Ask: 0.6553},
	{Symbol: "USD/CAD", Name: "US Dollar / Canadian Dollar", Category: models.PairMajor, Nickname: "Loonie", Bid: 1.3481, Ask: 1.3483},
	{Symbol: "NZD/USD", Name: "New Zealand Dollar / US Dollar", Category: models.PairMajor, Nickname: "Kiwi", Bid: 0.6121, Ask: 0.6123},
	{Symbol: "GBP/EUR", Name: "British Pound / Euro", Category: models.PairMajor, Nickname: "Chunnel", Bid: 0.8631, Ask: 0.8633},
	{Symbol: "EUR/CHF", Name: "Euro / Swiss Franc", Category: models.PairMajor, Nickname: "Euro-swissie", Bid: 0.9521, Ask: 0.9523},
	{Symbol: "EUR/JPY", Name: "Euro / Japanese Yen", Category: models.PairMajor, Nickname: "Yuppy", Bid: 163.07, Ask: 163.09},

	// Minors
	{Symbol: "EUR/GBP", Name: "Euro / British Pound", Category: models.PairMinor, Bid: 0.8631, Ask: 0.8633},
	{Symbol: "GBP/JPY", Name: "British Pound / Japanese Yen", Category: models.PairMinor, Bid: 188.91, Ask: 188.93},
	{Symbol: "GBP/CHF", Name: "British Pound / Swiss Franc", Category: models.PairMinor, Bid: 1.1161, Ask: 1.1163},
	{Symbol: "AUD/JPY", Name: "Australian Dollar / Japanese Yen", Category: models.PairMinor, Bid: 97.81, Ask: 97.83},
	{Symbol: "AUD/CHF", Name: "Australian Dollar / Swiss Franc", Category: models.PairMinor, Bid: 0.5781, Ask: 0.5783},
	{Symbol: "NZD/JPY", Name: "New Zealand Dollar / Japanese Yen", Category: models.PairMinor, Bid: 91.41, Ask: 91.43},
	{Symbol: "NZD/CHF", Name: "New Zealand Dollar / Swiss Franc", Category: models.PairMinor, Bid: 0.5401, Ask: 0.5403},

	// Exotics
	{Symbol: "USD/TRY", Name: "US Dollar / Turkish Lira", Category: models.PairExotic, Bid: 31.921, Ask: 31.941},
	{Symbol: "USD/ZAR", Name: "US Dollar / South African Rand", Category: models.PairExotic, Bid: 18.921, Ask: 18.941},
	{Symbol: "USD/SGD", Name: "US Dollar / Singapore Dollar", Category: models.PairExotic, Bid: 1.3421, Ask: 1.3423},
	{Symbol: "USD/MXN", Name: "US Dollar / Mexican Peso", Category: models.PairExotic, Bid: 17.121, Ask: 17.141},
	{Symbol: "USD/BRL", Name: "US Dollar / Brazilian Real", Category: models.PairExotic, Bid: 4.9821, Ask: 4.9841},
	{Symbol: "USD/INR", Name: "US Dollar / Indian Rupee", Category: models.PairExotic, Bid: 82.921, Ask: 82.941},
}

// Pairs serves the currency-pair board.
type Pairs struct {
	rng *rand.Rand
}

// NewPairs returns a board with the given jitter seed. Quotes are mock data;
// the seed only controls the simulated tick noise.
func NewPairs(seed int64) *Pairs {
	return &Pairs{rng: rand.New(rand.NewSource(seed))}
}

// List returns the board, optionally restricted to one category. Category ""
// means all. Each call applies small simulated quote movement, standing in
// for the live feed the desk does not have.
func (p *Pairs) List(category models.PairCategory) []models.CurrencyPair {
	var out []models.CurrencyPair
	for _, pair := range defaultPairs {
		if category != "" && pair.Category != category {
			continue
		}
		jitter := (p.rng.Float64() - 0.5) * 0.0010
		pair.Bid += jitter
		pair.Ask += jitter
		pair.Change = jitter
		if pair.Bid != 0 {
			pair.ChangePercent = jitter / pair.Bid * 100
		}
		out = append(out, pair)
	}
	return out
}

// Find returns the pair with the given symbol.
func (p *Pairs) Find(symbol string) (models.CurrencyPair, bool) {
	want := strings.ToUpper(symbol)
	for _, pair := range defaultPairs {
		if pair.Symbol == want {
			return pair, true
		}
	}
	return models.CurrencyPair{}, false
}

// SessionStats returns the quick-stats strip for a session. The desk has no
// market-data feed, so these are simulated figures in realistic ranges.
func (p *Pairs) SessionStats() models.MarketStats {
	sentiment := "bearish"
	if p.rng.Float64() > 0.5 {
		sentiment = "bullish"
	}
	return models.MarketStats{
		Volume:      p.rng.Float64() * 1000000,
		Volatility:  p.rng.Float64() * 100,
		Sentiment:   sentiment,
		Performance: (p.rng.Float64()*2 - 1) * 5,
	}
}
