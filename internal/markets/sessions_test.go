package markets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdesk/internal/models"
)

func fixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

func TestSessionStatusDuringTradingHours(t *testing.T) {
	// Wednesday 12:00 UTC: 13:00 in London (BST), inside 08:00-16:30.
	now := time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
	s := NewSessionsWithClock(fixedClock(now))

	europe, ok := s.Get(models.SessionEurope)
	require.True(t, ok)
	assert.Equal(t, models.SessionOpen, europe.Status)
}

func TestSessionStatusOutsideTradingHours(t *testing.T) {
	// Wednesday 22:00 UTC is 17:00 in New York, after the 16:00 close.
	now := time.Date(2026, 6, 10, 22, 0, 0, 0, time.UTC)
	s := NewSessionsWithClock(fixedClock(now))

	us, ok := s.Get(models.SessionUS)
	require.True(t, ok)
	assert.Equal(t, models.SessionClosed, us.Status)
}

func TestSessionStatusUsesLocalWallClock(t *testing.T) {
	// Wednesday 01:00 UTC is 10:00 in Tokyo: Asia open, Europe closed.
	now := time.Date(2026, 6, 10, 1, 0, 0, 0, time.UTC)
	s := NewSessionsWithClock(fixedClock(now))

	asia, ok := s.Get(models.SessionAsia)
	require.True(t, ok)
	assert.Equal(t, models.SessionOpen, asia.Status)

	europe, ok := s.Get(models.SessionEurope)
	require.True(t, ok)
	assert.Equal(t, models.SessionClosed, europe.Status)
}

func TestWeekendClosesEquitySessions(t *testing.T) {
	// Saturday midday.
	now := time.Date(2026, 6, 13, 12, 0, 0, 0, time.UTC)
	s := NewSessionsWithClock(fixedClock(now))

	for _, id := range []models.MarketSession{models.SessionAsia, models.SessionEurope, models.SessionUS} {
		info, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, models.SessionClosed, info.Status, "session %s", id)
	}
}

func TestCryptoAndCommoditiesAlwaysOpen(t *testing.T) {
	// Sunday 03:00 UTC, everything else shut.
	now := time.Date(2026, 6, 14, 3, 0, 0, 0, time.UTC)
	s := NewSessionsWithClock(fixedClock(now))

	for _, id := range []models.MarketSession{models.SessionCrypto, models.SessionCommodities} {
		info, ok := s.Get(id)
		require.True(t, ok)
		assert.Equal(t, models.SessionOpen, info.Status, "session %s", id)
	}
}

func TestAllReturnsEverySession(t *testing.T) {
	s := NewSessions()

	all := s.All()
	assert.Len(t, all, 5)
	for _, info := range all {
		assert.NotEmpty(t, info.Status, "session %s has no status", info.ID)
	}
}

func TestGetUnknownSession(t *testing.T) {
	s := NewSessions()
	_, ok := s.Get("mars")
	assert.False(t, ok)
}

func TestParseClock(t *testing.T) {
	m, err := parseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, m)

	for _, bad := range []string{"930", "25:00", "09:75", "ab:cd"} {
		_, err := parseClock(bad)
		assert.Error(t, err, "value %q", bad)
	}
}
