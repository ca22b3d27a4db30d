package psychology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
)

func TestAddAndRemove(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	entry, err := s.Add(models.PsychologyEntry{
		Mood:        models.MoodAnxious,
		Phase:       models.PhasePre,
		StressLevel: 7,
		Notes:       "news spike",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())

	require.NoError(t, s.Remove(entry.ID))
	assert.Empty(t, s.All())

	assert.NoError(t, s.Remove("missing"))
}

func TestByMood(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	_, err := s.Add(models.PsychologyEntry{Mood: models.MoodCalm, Phase: models.PhasePre, StressLevel: 2})
	require.NoError(t, err)
	_, err = s.Add(models.PsychologyEntry{Mood: models.MoodGreedy, Phase: models.PhasePost, StressLevel: 8})
	require.NoError(t, err)

	calm := s.ByMood(models.MoodCalm)
	require.Len(t, calm, 1)
	assert.Equal(t, models.MoodCalm, calm[0].Mood)
}

func TestMoodPatterns(t *testing.T) {
	s := NewStore(store.NewMemoryKV())

	trades := []models.TradeEntry{
		{ID: "t-win", Status: models.StatusClosed, PnL: 200},
		{ID: "t-loss", Status: models.StatusClosed, PnL: -100},
		{ID: "t-open", Status: models.StatusOpen, PnL: 0},
	}

	for _, e := range []models.PsychologyEntry{
		{Mood: models.MoodFocused, Phase: models.PhasePre, StressLevel: 3, TradeID: "t-win"},
		{Mood: models.MoodFocused, Phase: models.PhasePre, StressLevel: 4, TradeID: "t-loss"},
		{Mood: models.MoodAnxious, Phase: models.PhasePre, StressLevel: 8, TradeID: "t-open"},
		{Mood: models.MoodAnxious, Phase: models.PhasePost, StressLevel: 9},
	} {
		_, err := s.Add(e)
		require.NoError(t, err)
	}

	patterns := s.MoodPatterns(trades)
	require.Len(t, patterns, 2)

	focused := patterns[0]
	assert.Equal(t, models.MoodFocused, focused.Mood)
	assert.Equal(t, 2, focused.TotalTrades)
	assert.InDelta(t, 50.0, focused.WinRate, 1e-9)
	assert.InDelta(t, 50.0, focused.AverageProfit, 1e-9)

	// Entries linked to open trades or nothing count toward the bucket
	// total but carry no outcome.
	anxious := patterns[1]
	assert.Equal(t, models.MoodAnxious, anxious.Mood)
	assert.Equal(t, 2, anxious.TotalTrades)
	assert.Zero(t, anxious.WinRate)
	assert.Zero(t, anxious.AverageProfit)
}

func TestPersistenceAcrossReload(t *testing.T) {
	kv := store.NewMemoryKV()

	s := NewStore(kv)
	entry, err := s.Add(models.PsychologyEntry{Mood: models.MoodConfident, Phase: models.PhasePre, StressLevel: 2})
	require.NoError(t, err)

	reloaded := NewStore(kv)
	all := reloaded.All()
	require.Len(t, all, 1)
	assert.Equal(t, entry.ID, all[0].ID)
}
