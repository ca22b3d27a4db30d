// Package markets provides the market-session clocks and the currency-pair
// board. Both are reference/mock data surfaces: session schedules are static,
// pair quotes are canned, and only the open/closed status is computed live.
package markets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tradingdesk/internal/models"
)

// defaultSessions is the tracked session set with schedules local to each
// session's exchange timezone.
var defaultSessions = []models.SessionInfo{
	{
		ID:          models.SessionAsia,
		Name:        "Asian Session",
		Description: "Tokyo, Hong Kong, Singapore markets",
		Timezone:    "Asia/Tokyo",
		OpenTime:    "09:00",
		CloseTime:   "18:00",
		MainIndices: []string{"Nikkei 225", "Hang Seng", "ASX 200"},
		KeyPairs:    []string{"USD/JPY", "AUD/USD", "NZD/USD"},
	},
	{
		ID:          models.SessionEurope,
		Name:        "European Session",
		Description: "London, Frankfurt, Paris markets",
		Timezone:    "Europe/London",
		OpenTime:    "08:00",
		CloseTime:   "16:30",
		MainIndices: []string{"FTSE 100", "DAX", "CAC 40"},
		KeyPairs:    []string{"EUR/USD", "GBP/USD", "EUR/GBP"},
	},
	{
		ID:          models.SessionUS,
		Name:        "US Session",
		Description: "New York, Chicago markets",
		Timezone:    "America/New_York",
		OpenTime:    "09:30",
		CloseTime:   "16:00",
		MainIndices: []string{"S&P 500", "Dow Jones", "NASDAQ"},
		KeyPairs:    []string{"USD/CAD", "USD/MXN", "USD/BRL"},
	},
	{
		ID:          models.SessionCrypto,
		Name:        "Crypto Markets",
		Description: "24/7 cryptocurrency trading",
		Timezone:    "UTC",
		OpenTime:    "00:00",
		CloseTime:   "23:59",
		MainIndices: []string{"BTC/USD", "ETH/USD", "BNB/USD"},
		KeyPairs:    []string{"BTC/USDT", "ETH/USDT", "SOL/USDT"},
	},
	{
		ID:          models.SessionCommodities,
		Name:        "Commodities",
		Description: "Global commodities markets",
		Timezone:    "UTC",
		OpenTime:    "00:00",
		CloseTime:   "23:59",
		MainIndices: []string{"Gold", "Silver", "Oil"},
		KeyPairs:    []string{"XAU/USD", "XAG/USD", "USOIL"},
	},
}

// alwaysOpen marks sessions that never close.
func alwaysOpen(id models.MarketSession) bool {
	return id == models.SessionCrypto || id == models.SessionCommodities
}

// Clock supplies the current time; tests substitute a fixed one.
type Clock func() time.Time

// Sessions answers session-clock queries against a clock.
type Sessions struct {
	now Clock
}

// NewSessions returns a session tracker on the real clock.
func NewSessions() *Sessions {
	return NewSessionsWithClock(time.Now)
}

// NewSessionsWithClock returns a session tracker on the supplied clock.
func NewSessionsWithClock(now Clock) *Sessions {
	return &Sessions{now: now}
}

// All returns every tracked session with its current status filled in.
func (s *Sessions) All() []models.SessionInfo {
	out := make([]models.SessionInfo, len(defaultSessions))
	for i, info := range defaultSessions {
		info.Status = s.status(info)
		out[i] = info
	}
	return out
}

// Get returns one session by id with its current status.
func (s *Sessions) Get(sessionID models.MarketSession) (models.SessionInfo, bool) {
	for _, info := range defaultSessions {
		if info.ID == sessionID {
			info.Status = s.status(info)
			return info, true
		}
	}
	return models.SessionInfo{}, false
}

// status computes open/closed by the session's local wall clock.
func (s *Sessions) status(info models.SessionInfo) models.SessionStatus {
	if alwaysOpen(info.ID) {
		return models.SessionOpen
	}

	loc, err := time.LoadLocation(info.Timezone)
	if err != nil {
		return models.SessionClosed
	}
	local := s.now().In(loc)

	openMin, err := parseClock(info.OpenTime)
	if err != nil {
		return models.SessionClosed
	}
	closeMin, err := parseClock(info.CloseTime)
	if err != nil {
		return models.SessionClosed
	}

	// Weekend: the equity/forex sessions are closed.
	if wd := local.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return models.SessionClosed
	}

	minutes := local.Hour()*60 + local.Minute()
	if minutes >= openMin && minutes < closeMin {
		return models.SessionOpen
	}
	return models.SessionClosed
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(hhmm string) (int, error) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad clock value %q", hhmm)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("bad clock value %q", hhmm)
	}
	return h*60 + m, nil
}
