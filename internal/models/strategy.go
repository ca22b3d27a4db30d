package models

import "time"

// StrategyStatus is the lifecycle stage of a backtested strategy.
type StrategyStatus string

const (
	StrategyIdeaStage StrategyStatus = "idea"
	StrategyTesting   StrategyStatus = "testing"
	StrategyCompleted StrategyStatus = "completed"
)

// Strategy is one row of the backtesting log.
type Strategy struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Timeframe       string         `json:"timeframe"`
	TradesCount     int            `json:"tradesCount"`
	WinRate         float64        `json:"winRate"`
	ProfitFactor    float64        `json:"profitFactor"`
	RiskRewardRatio float64        `json:"riskRewardRatio"`
	Strengths       []string       `json:"strengths"`
	Weaknesses      []string       `json:"weaknesses"`
	Notes           string         `json:"notes"`
	Status          StrategyStatus `json:"status"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
}

// StrategyIdea is a raw concept not yet promoted to a testable strategy.
type StrategyIdea struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Concept    string    `json:"concept"`
	Hypothesis string    `json:"hypothesis"`
	CreatedAt  time.Time `json:"createdAt"`
}
