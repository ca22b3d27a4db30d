package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
)

func TestFind(t *testing.T) {
	cat := NewDefault()

	inst, ok := cat.Find("EUR/USD", models.MarketForex)
	require.True(t, ok)
	assert.Equal(t, "Euro/US Dollar", inst.Name)
	assert.Equal(t, 10.0, inst.PipValue)

	// Symbol lookup is scoped to the market.
	_, ok = cat.Find("EUR/USD", models.MarketStocks)
	assert.False(t, ok)

	_, ok = cat.Find("XXX/YYY", models.MarketForex)
	assert.False(t, ok)
}

func TestListReturnsCopy(t *testing.T) {
	cat := NewDefault()

	list := cat.List(models.MarketForex)
	require.NotEmpty(t, list)
	list[0].Symbol = "MUTATED"

	again := cat.List(models.MarketForex)
	assert.NotEqual(t, "MUTATED", again[0].Symbol)
}

func TestSearch(t *testing.T) {
	cat := NewDefault()

	t.Run("by symbol fragment", func(t *testing.T) {
		got := cat.Search(models.MarketForex, "jpy")
		require.Len(t, got, 1)
		assert.Equal(t, "USD/JPY", got[0].Symbol)
	})

	t.Run("by name fragment", func(t *testing.T) {
		got := cat.Search(models.MarketStocks, "apple")
		require.Len(t, got, 1)
		assert.Equal(t, "AAPL", got[0].Symbol)
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, cat.Search(models.MarketCrypto, "BTC"), cat.Search(models.MarketCrypto, "btc"))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, cat.Search(models.MarketForex, "zzz"))
	})
}

func TestDefaultCatalogMetadata(t *testing.T) {
	cat := NewDefault()

	es, ok := cat.Find("ES", models.MarketFutures)
	require.True(t, ok)
	assert.Equal(t, 50.0, es.ContractSize)

	spy, ok := cat.Find("SPY", models.MarketOptions)
	require.True(t, ok)
	assert.Equal(t, 100.0, spy.Multiplier)

	jpy, ok := cat.Find("USD/JPY", models.MarketForex)
	require.True(t, ok)
	assert.Equal(t, 9.30, jpy.PipValue)

	for _, mt := range models.MarketTypes {
		assert.NotEmpty(t, cat.List(mt), "market %s has no instruments", mt)
	}
}
