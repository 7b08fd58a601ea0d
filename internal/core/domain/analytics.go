package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBreakdown is the expense total of one category within a period.
// Percentage is relative to the period's overall expense, including uncategorized expense.
type CategoryBreakdown struct {
	Category   ExpenseCategory `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// GoalProgress holds actual/goal percentages for the goal-tracked dimensions.
type GoalProgress struct {
	IncomeProgress decimal.Decimal `json:"incomeProgress"`
	GoldProgress   decimal.Decimal `json:"goldProgress"`
	SilverProgress decimal.Decimal `json:"silverProgress"`
}

// MonthlyAnalytics summarises one calendar month.
// GoalProgress carries the persisted goal itself, not percentages.
type MonthlyAnalytics struct {
	Year              int                 `json:"year"`
	Month             int                 `json:"month"`
	TotalIncome       decimal.Decimal     `json:"totalIncome"`
	TotalExpense      decimal.Decimal     `json:"totalExpense"`
	NetIncome         decimal.Decimal     `json:"netIncome"`
	TotalGold         decimal.Decimal     `json:"totalGold"`
	TotalSilver       decimal.Decimal     `json:"totalSilver"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	GoalProgress      *MonthlyGoal        `json:"goalProgress"`
}

// AnnualAnalytics summarises a calendar year. MonthlyBreakdown always has 12 elements, January first.
type AnnualAnalytics struct {
	Year             int                `json:"year"`
	TotalIncome      decimal.Decimal    `json:"totalIncome"`
	TotalExpense     decimal.Decimal    `json:"totalExpense"`
	NetIncome        decimal.Decimal    `json:"netIncome"`
	TotalGold        decimal.Decimal    `json:"totalGold"`
	TotalSilver      decimal.Decimal    `json:"totalSilver"`
	TotalInvestments decimal.Decimal    `json:"totalInvestments"`
	MonthlyBreakdown []MonthlyAnalytics `json:"monthlyBreakdown"`
}

// DashboardStats is the current-month snapshot shown on the dashboard.
type DashboardStats struct {
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	CurrentMonthIncome    decimal.Decimal `json:"currentMonthIncome"`
	CurrentMonthExpense   decimal.Decimal `json:"currentMonthExpense"`
	CurrentMonthNet       decimal.Decimal `json:"currentMonthNet"`
	TotalInvestmentsValue decimal.Decimal `json:"totalInvestmentsValue"`
	TotalGold             decimal.Decimal `json:"totalGold"`
	TotalSilver           decimal.Decimal `json:"totalSilver"`
	MonthlyGoalProgress   *GoalProgress   `json:"monthlyGoalProgress"`
	RecentEntriesCount    int             `json:"recentEntriesCount"`
}

// PeriodAnalytics summarises an arbitrary inclusive date range.
type PeriodAnalytics struct {
	From              time.Time           `json:"from"`
	To                time.Time           `json:"to"`
	TotalIncome       decimal.Decimal     `json:"totalIncome"`
	TotalExpense      decimal.Decimal     `json:"totalExpense"`
	NetIncome         decimal.Decimal     `json:"netIncome"`
	TotalGold         decimal.Decimal     `json:"totalGold"`
	TotalSilver       decimal.Decimal     `json:"totalSilver"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	EntryCount        int                 `json:"entryCount"`
}
