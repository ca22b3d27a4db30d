// Package backtest keeps the backtesting log: strategies under test with
// their recorded results, and raw strategy ideas awaiting promotion.
package backtest

import (
	"encoding/json"
	"time"

	"tradingdesk/internal/models"
	"tradingdesk/internal/store"
	"tradingdesk/pkg/id"
)

// Log owns the strategy and idea collections. Each collection persists in
// full under its own key on every mutation.
type Log struct {
	kv         store.KeyValue
	strategies []models.Strategy
	ideas      []models.StrategyIdea
}

// NewLog loads the backtesting log from kv.
func NewLog(kv store.KeyValue) *Log {
	l := &Log{kv: kv}
	if raw, ok := kv.Get(store.KeyStrategies); ok {
		if err := json.Unmarshal([]byte(raw), &l.strategies); err != nil {
			l.strategies = nil
		}
	}
	if raw, ok := kv.Get(store.KeyStrategyIdeas); ok {
		if err := json.Unmarshal([]byte(raw), &l.ideas); err != nil {
			l.ideas = nil
		}
	}
	return l
}

// Strategies returns all logged strategies in insertion order.
func (l *Log) Strategies() []models.Strategy {
	out := make([]models.Strategy, len(l.strategies))
	copy(out, l.strategies)
	return out
}

// Ideas returns all raw ideas in insertion order.
func (l *Log) Ideas() []models.StrategyIdea {
	out := make([]models.StrategyIdea, len(l.ideas))
	copy(out, l.ideas)
	return out
}

// AddStrategy records a new strategy; ID and timestamps are assigned here.
func (l *Log) AddStrategy(s models.Strategy) (models.Strategy, error) {
	now := time.Now().UTC()
	s.ID = id.New()
	s.CreatedAt = now
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = models.StrategyTesting
	}
	l.strategies = append(l.strategies, s)
	if err := l.persistStrategies(); err != nil {
		return models.Strategy{}, err
	}
	return s, nil
}

// StrategyResults names the result fields UpdateResults may change.
type StrategyResults struct {
	TradesCount     *int
	WinRate         *float64
	ProfitFactor    *float64
	RiskRewardRatio *float64
	Strengths       []string
	Weaknesses      []string
	Notes           *string
	Status          *models.StrategyStatus
}

// UpdateResults applies recorded backtest results to a strategy. Unknown ids
// are a silent no-op.
func (l *Log) UpdateResults(strategyID string, res StrategyResults) error {
	for i := range l.strategies {
		if l.strategies[i].ID != strategyID {
			continue
		}
		s := &l.strategies[i]
		if res.TradesCount != nil {
			s.TradesCount = *res.TradesCount
		}
		if res.WinRate != nil {
			s.WinRate = *res.WinRate
		}
		if res.ProfitFactor != nil {
			s.ProfitFactor = *res.ProfitFactor
		}
		if res.RiskRewardRatio != nil {
			s.RiskRewardRatio = *res.RiskRewardRatio
		}
		if res.Strengths != nil {
			s.Strengths = append([]string(nil), res.Strengths...)
		}
		if res.Weaknesses != nil {
			s.Weaknesses = append([]string(nil), res.Weaknesses...)
		}
		if res.Notes != nil {
			s.Notes = *res.Notes
		}
		if res.Status != nil {
			s.Status = *res.Status
		}
		s.UpdatedAt = time.Now().UTC()
		return l.persistStrategies()
	}
	return nil
}

// RemoveStrategy deletes a strategy by id. Unknown ids are a silent no-op.
func (l *Log) RemoveStrategy(strategyID string) error {
	for i, s := range l.strategies {
		if s.ID == strategyID {
			l.strategies = append(l.strategies[:i], l.strategies[i+1:]...)
			return l.persistStrategies()
		}
	}
	return nil
}

// AddIdea records a raw strategy idea.
func (l *Log) AddIdea(idea models.StrategyIdea) (models.StrategyIdea, error) {
	idea.ID = id.New()
	idea.CreatedAt = time.Now().UTC()
	l.ideas = append(l.ideas, idea)
	if err := l.persistIdeas(); err != nil {
		return models.StrategyIdea{}, err
	}
	return idea, nil
}

// RemoveIdea deletes an idea by id. Unknown ids are a silent no-op.
func (l *Log) RemoveIdea(ideaID string) error {
	for i, idea := range l.ideas {
		if idea.ID == ideaID {
			l.ideas = append(l.ideas[:i], l.ideas[i+1:]...)
			return l.persistIdeas()
		}
	}
	return nil
}

// PromoteIdea turns an idea into a strategy in testing state and removes the
// idea. The idea's concept and hypothesis land in the strategy notes.
func (l *Log) PromoteIdea(ideaID, timeframe string) (models.Strategy, bool, error) {
	for i, idea := range l.ideas {
		if idea.ID != ideaID {
			continue
		}

		s, err := l.AddStrategy(models.Strategy{
			Name:      idea.Name,
			Timeframe: timeframe,
			Notes:     idea.Concept + "\n\n" + idea.Hypothesis,
			Status:    models.StrategyTesting,
		})
		if err != nil {
			return models.Strategy{}, false, err
		}

		l.ideas = append(l.ideas[:i], l.ideas[i+1:]...)
		if err := l.persistIdeas(); err != nil {
			return models.Strategy{}, false, err
		}
		return s, true, nil
	}
	return models.Strategy{}, false, nil
}

func (l *Log) persistStrategies() error {
	data, err := json.Marshal(l.strategies)
	if err != nil {
		return err
	}
	return l.kv.Set(store.KeyStrategies, string(data))
}

func (l *Log) persistIdeas() error {
	data, err := json.Marshal(l.ideas)
	if err != nil {
		return err
	}
	return l.kv.Set(store.KeyStrategyIdeas, string(data))
}
