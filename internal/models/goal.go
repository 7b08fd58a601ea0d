package models

import "github.com/shopspring/decimal"

// MonthlyGoal is a row of the monthly_goals table, unique per (user_id, year, month).
type MonthlyGoal struct {
	GoalID         string          `db:"goal_id"`
	UserID         string          `db:"user_id"`
	Year           int             `db:"year"`
	Month          int             `db:"month"`
	IncomeGoal     decimal.Decimal `db:"income_goal"`
	GoldGoal       decimal.Decimal `db:"gold_goal"`
	SilverGoal     decimal.Decimal `db:"silver_goal"`
	InvestmentGoal decimal.Decimal `db:"investment_goal"`
	AuditFields
}
