package domain

import "github.com/shopspring/decimal"

// MonthlyGoal holds a user's targets for one calendar month.
// A zero target means no target is set for that dimension.
type MonthlyGoal struct {
	GoalID         string          `json:"goalID"`
	UserID         string          `json:"userID"`
	Year           int             `json:"year"`
	Month          int             `json:"month"` // 1-12
	IncomeGoal     decimal.Decimal `json:"incomeGoal"`
	GoldGoal       decimal.Decimal `json:"goldGoal"`     // grams
	SilverGoal     decimal.Decimal `json:"silverGoal"`   // grams
	InvestmentGoal decimal.Decimal `json:"investmentGoal"`
	AuditFields
}

// GoalDefaults are the targets used for a month that has no persisted goal.
type GoalDefaults struct {
	IncomeGoal     decimal.Decimal
	GoldGoal       decimal.Decimal
	SilverGoal     decimal.Decimal
	InvestmentGoal decimal.Decimal
}
