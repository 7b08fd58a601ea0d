package dto

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertMonthlyGoalRequest sets some or all of a month's targets.
// Omitted targets keep their saved value, or the configured default if nothing is saved yet.
type UpsertMonthlyGoalRequest struct {
	IncomeGoal     *decimal.Decimal `json:"incomeGoal"`
	GoldGoal       *decimal.Decimal `json:"goldGoal"`
	SilverGoal     *decimal.Decimal `json:"silverGoal"`
	InvestmentGoal *decimal.Decimal `json:"investmentGoal"`
}

// MonthlyGoalResponse defines the data returned for a monthly goal.
// IsDefault is true when no goal is saved and the targets come from configuration.
type MonthlyGoalResponse struct {
	GoalID         string          `json:"goalID,omitempty"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	IncomeGoal     decimal.Decimal `json:"incomeGoal"`
	GoldGoal       decimal.Decimal `json:"goldGoal"`
	SilverGoal     decimal.Decimal `json:"silverGoal"`
	InvestmentGoal decimal.Decimal `json:"investmentGoal"`
	IsDefault      bool            `json:"isDefault"`
}

// YearlyGoalsResponse lists the saved goals of a year.
type YearlyGoalsResponse struct {
	Year  int                   `json:"year"`
	Goals []MonthlyGoalResponse `json:"goals"`
}

// ToMonthlyGoalResponse converts a domain.MonthlyGoal to MonthlyGoalResponse DTO
func ToMonthlyGoalResponse(g *domain.MonthlyGoal) MonthlyGoalResponse {
	return MonthlyGoalResponse{
		GoalID:         g.GoalID,
		Year:           g.Year,
		Month:          g.Month,
		IncomeGoal:     g.IncomeGoal,
		GoldGoal:       g.GoldGoal,
		SilverGoal:     g.SilverGoal,
		InvestmentGoal: g.InvestmentGoal,
		IsDefault:      g.GoalID == "",
	}
}

// ToYearlyGoalsResponse converts the saved goals of a year.
func ToYearlyGoalsResponse(year int, goals []domain.MonthlyGoal) YearlyGoalsResponse {
	res := make([]MonthlyGoalResponse, len(goals))
	for i := range goals {
		res[i] = ToMonthlyGoalResponse(&goals[i])
	}
	return YearlyGoalsResponse{Year: year, Goals: res}
}
