package catalog

import "tradingdesk/internal/models"

// defaultInstruments is the built-in reference data. Pip values are quoted
// per standard lot; contract sizes and multipliers follow the exchanges'
// published specs.
var defaultInstruments = map[models.MarketType][]models.Instrument{
	models.MarketForex: {
		{Symbol: "EUR/USD", Name: "Euro/US Dollar", Type: models.MarketForex, MinSize: 0.01, MaxSize: 100, PipValue: 10},
		{Symbol: "GBP/USD", Name: "British Pound/US Dollar", Type: models.MarketForex, MinSize: 0.01, MaxSize: 100, PipValue: 10},
		{Symbol: "USD/JPY", Name: "US Dollar/Japanese Yen", Type: models.MarketForex, MinSize: 0.01, MaxSize: 100, PipValue: 9.30},
	},
	models.MarketStocks: {
		{Symbol: "AAPL", Name: "Apple Inc.", Type: models.MarketStocks, MinSize: 1, MaxSize: 100000},
		{Symbol: "MSFT", Name: "Microsoft Corporation", Type: models.MarketStocks, MinSize: 1, MaxSize: 100000},
		{Symbol: "GOOGL", Name: "Alphabet Inc.", Type: models.MarketStocks, MinSize: 1, MaxSize: 100000},
	},
	models.MarketCrypto: {
		{Symbol: "BTC/USD", Name: "Bitcoin/US Dollar", Type: models.MarketCrypto, MinSize: 0.001, MaxSize: 100},
		{Symbol: "ETH/USD", Name: "Ethereum/US Dollar", Type: models.MarketCrypto, MinSize: 0.01, MaxSize: 1000},
	},
	models.MarketFutures: {
		{Symbol: "ES", Name: "E-mini S&P 500", Type: models.MarketFutures, MinSize: 1, MaxSize: 100, ContractSize: 50},
		{Symbol: "NQ", Name: "E-mini NASDAQ 100", Type: models.MarketFutures, MinSize: 1, MaxSize: 100, ContractSize: 20},
	},
	models.MarketOptions: {
		{Symbol: "SPY", Name: "SPDR S&P 500 ETF", Type: models.MarketOptions, MinSize: 1, MaxSize: 1000, Multiplier: 100},
		{Symbol: "QQQ", Name: "Invesco QQQ Trust", Type: models.MarketOptions, MinSize: 1, MaxSize: 1000, Multiplier: 100},
	},
}
