package models

import "time"

// Mood is a tagged emotional state for a psychology entry.
type Mood string

const (
	MoodConfident Mood = "confident"
	MoodAnxious   Mood = "anxious"
	MoodHesitant  Mood = "hesitant"
	MoodGreedy    Mood = "greedy"
	MoodFearful   Mood = "fearful"
	MoodFocused   Mood = "focused"
	MoodCalm      Mood = "calm"
	MoodOther     Mood = "other"
)

// EntryPhase is whether a psychology entry was written before or after the
// linked trade.
type EntryPhase string

const (
	PhasePre  EntryPhase = "pre"
	PhasePost EntryPhase = "post"
)

// PsychologyEntry is one record in the psychology tracker. TradeID optionally
// links the entry to a journal trade for pattern aggregation.
type PsychologyEntry struct {
	ID              string     `json:"id"`
	TradeID         string     `json:"tradeId,omitempty"`
	Mood            Mood       `json:"mood"`
	CustomMood      string     `json:"customMood,omitempty"`
	Notes           string     `json:"notes"`
	Timestamp       time.Time  `json:"timestamp"`
	Phase           EntryPhase `json:"type"`
	StressLevel     int        `json:"stressLevel"` // 1-10
	ExternalFactors []string   `json:"externalFactors"`
}

// MoodPattern aggregates journal outcomes for trades taken under one mood.
type MoodPattern struct {
	Mood          Mood    `json:"mood"`
	WinRate       float64 `json:"winRate"`
	TotalTrades   int     `json:"totalTrades"`
	AverageProfit float64 `json:"averageProfit"`
}
