package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
)

func TestAddStrategyDefaults(t *testing.T) {
	l := NewLog(store.NewMemoryKV())

	s, err := l.AddStrategy(models.Strategy{Name: "orb", Timeframe: "5m"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, models.StrategyTesting, s.Status)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestUpdateResults(t *testing.T) {
	l := NewLog(store.NewMemoryKV())
	s, err := l.AddStrategy(models.Strategy{Name: "orb"})
	require.NoError(t, err)

	trades := 120
	winRate := 54.0
	completed := models.StrategyCompleted
	require.NoError(t, l.UpdateResults(s.ID, StrategyResults{
		TradesCount: &trades,
		WinRate:     &winRate,
		Strengths:   []string{"works in trends"},
		Status:      &completed,
	}))

	got := l.Strategies()[0]
	assert.Equal(t, 120, got.TradesCount)
	assert.Equal(t, 54.0, got.WinRate)
	assert.Equal(t, []string{"works in trends"}, got.Strengths)
	assert.Equal(t, models.StrategyCompleted, got.Status)
	// Fields not named in the update keep their values.
	assert.Equal(t, "orb", got.Name)

	assert.NoError(t, l.UpdateResults("missing", StrategyResults{TradesCount: &trades}))
}

func TestRemoveStrategy(t *testing.T) {
	l := NewLog(store.NewMemoryKV())
	s, err := l.AddStrategy(models.Strategy{Name: "orb"})
	require.NoError(t, err)

	require.NoError(t, l.RemoveStrategy(s.ID))
	assert.Empty(t, l.Strategies())
	assert.NoError(t, l.RemoveStrategy("missing"))
}

func TestIdeaLifecycle(t *testing.T) {
	l := NewLog(store.NewMemoryKV())

	idea, err := l.AddIdea(models.StrategyIdea{
		Name:       "vwap fade",
		Concept:    "fade extensions from vwap",
		Hypothesis: "mean reversion intraday",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, idea.ID)

	s, ok, err := l.PromoteIdea(idea.ID, "15m")
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "vwap fade", s.Name)
	assert.Equal(t, "15m", s.Timeframe)
	assert.Equal(t, models.StrategyTesting, s.Status)
	assert.Contains(t, s.Notes, "fade extensions from vwap")
	assert.Contains(t, s.Notes, "mean reversion intraday")

	// The idea is consumed by promotion.
	assert.Empty(t, l.Ideas())

	_, ok, err = l.PromoteIdea("missing", "1h")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPersistenceAcrossReload(t *testing.T) {
	kv := store.NewMemoryKV()

	l := NewLog(kv)
	s, err := l.AddStrategy(models.Strategy{Name: "orb"})
	require.NoError(t, err)
	idea, err := l.AddIdea(models.StrategyIdea{Name: "vwap fade"})
	require.NoError(t, err)

	reloaded := NewLog(kv)
	require.Len(t, reloaded.Strategies(), 1)
	assert.Equal(t, s.ID, reloaded.Strategies()[0].ID)
	require.Len(t, reloaded.Ideas(), 1)
	assert.Equal(t, idea.ID, reloaded.Ideas()[0].ID)
}

func TestMalformedStoredDataLoadsEmpty(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(store.KeyStrategies, "oops"))
	require.NoError(t, kv.Set(store.KeyStrategyIdeas, "oops"))

	l := NewLog(kv)
	assert.Empty(t, l.Strategies())
	assert.Empty(t, l.Ideas())
}
