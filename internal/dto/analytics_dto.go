package dto

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryBreakdownResponse is one expense category's share of a period.
type CategoryBreakdownResponse struct {
	Category   domain.ExpenseCategory `json:"category"`
	Amount     decimal.Decimal        `json:"amount"`
	Percentage decimal.Decimal        `json:"percentage"`
}

// GoalProgressResponse holds actual/goal percentages.
type GoalProgressResponse struct {
	IncomeProgress decimal.Decimal `json:"incomeProgress"`
	GoldProgress   decimal.Decimal `json:"goldProgress"`
	SilverProgress decimal.Decimal `json:"silverProgress"`
}

// MonthlyAnalyticsResponse represents the monthly analytics response.
// GoalProgress is the saved goal for the month, or null when none is saved.
type MonthlyAnalyticsResponse struct {
	Year              int                         `json:"year"`
	Month             int                         `json:"month"`
	TotalIncome       decimal.Decimal             `json:"totalIncome"`
	TotalExpense      decimal.Decimal             `json:"totalExpense"`
	NetIncome         decimal.Decimal             `json:"netIncome"`
	TotalGold         decimal.Decimal             `json:"totalGold"`
	TotalSilver       decimal.Decimal             `json:"totalSilver"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	GoalProgress      *MonthlyGoalResponse        `json:"goalProgress"`
}

// AnnualAnalyticsResponse represents the annual analytics response.
type AnnualAnalyticsResponse struct {
	Year             int                        `json:"year"`
	TotalIncome      decimal.Decimal            `json:"totalIncome"`
	TotalExpense     decimal.Decimal            `json:"totalExpense"`
	NetIncome        decimal.Decimal            `json:"netIncome"`
	TotalGold        decimal.Decimal            `json:"totalGold"`
	TotalSilver      decimal.Decimal            `json:"totalSilver"`
	TotalInvestments decimal.Decimal            `json:"totalInvestments"`
	MonthlyBreakdown []MonthlyAnalyticsResponse `json:"monthlyBreakdown"`
}

// DashboardStatsResponse represents the dashboard snapshot.
type DashboardStatsResponse struct {
	Year                  int                   `json:"year"`
	Month                 int                   `json:"month"`
	CurrentMonthIncome    decimal.Decimal       `json:"currentMonthIncome"`
	CurrentMonthExpense   decimal.Decimal       `json:"currentMonthExpense"`
	CurrentMonthNet       decimal.Decimal       `json:"currentMonthNet"`
	TotalInvestmentsValue decimal.Decimal       `json:"totalInvestmentsValue"`
	TotalGold             decimal.Decimal       `json:"totalGold"`
	TotalSilver           decimal.Decimal       `json:"totalSilver"`
	MonthlyGoalProgress   *GoalProgressResponse `json:"monthlyGoalProgress"`
	RecentEntriesCount    int                   `json:"recentEntriesCount"`
}

// PeriodAnalyticsResponse represents analytics over an inclusive date range.
type PeriodAnalyticsResponse struct {
	FromDate          string                      `json:"fromDate"`
	ToDate            string                      `json:"toDate"`
	TotalIncome       decimal.Decimal             `json:"totalIncome"`
	TotalExpense      decimal.Decimal             `json:"totalExpense"`
	NetIncome         decimal.Decimal             `json:"netIncome"`
	TotalGold         decimal.Decimal             `json:"totalGold"`
	TotalSilver       decimal.Decimal             `json:"totalSilver"`
	CategoryBreakdown []CategoryBreakdownResponse `json:"categoryBreakdown"`
	EntryCount        int                         `json:"entryCount"`
}

func toCategoryBreakdownResponse(rows []domain.CategoryBreakdown) []CategoryBreakdownResponse {
	res := make([]CategoryBreakdownResponse, len(rows))
	for i, r := range rows {
		res[i] = CategoryBreakdownResponse{
			Category:   r.Category,
			Amount:     r.Amount,
			Percentage: r.Percentage,
		}
	}
	return res
}

// ToMonthlyAnalyticsResponse converts domain monthly analytics to a DTO response
func ToMonthlyAnalyticsResponse(m *domain.MonthlyAnalytics) MonthlyAnalyticsResponse {
	res := MonthlyAnalyticsResponse{
		Year:              m.Year,
		Month:             m.Month,
		TotalIncome:       m.TotalIncome,
		TotalExpense:      m.TotalExpense,
		NetIncome:         m.NetIncome,
		TotalGold:         m.TotalGold,
		TotalSilver:       m.TotalSilver,
		CategoryBreakdown: toCategoryBreakdownResponse(m.CategoryBreakdown),
	}
	if m.GoalProgress != nil {
		goal := ToMonthlyGoalResponse(m.GoalProgress)
		res.GoalProgress = &goal
	}
	return res
}

// ToAnnualAnalyticsResponse converts domain annual analytics to a DTO response
func ToAnnualAnalyticsResponse(a *domain.AnnualAnalytics) AnnualAnalyticsResponse {
	months := make([]MonthlyAnalyticsResponse, len(a.MonthlyBreakdown))
	for i := range a.MonthlyBreakdown {
		months[i] = ToMonthlyAnalyticsResponse(&a.MonthlyBreakdown[i])
	}
	return AnnualAnalyticsResponse{
		Year:             a.Year,
		TotalIncome:      a.TotalIncome,
		TotalExpense:     a.TotalExpense,
		NetIncome:        a.NetIncome,
		TotalGold:        a.TotalGold,
		TotalSilver:      a.TotalSilver,
		TotalInvestments: a.TotalInvestments,
		MonthlyBreakdown: months,
	}
}

// ToDashboardStatsResponse converts domain dashboard stats to a DTO response
func ToDashboardStatsResponse(d *domain.DashboardStats) DashboardStatsResponse {
	res := DashboardStatsResponse{
		Year:                  d.Year,
		Month:                 d.Month,
		CurrentMonthIncome:    d.CurrentMonthIncome,
		CurrentMonthExpense:   d.CurrentMonthExpense,
		CurrentMonthNet:       d.CurrentMonthNet,
		TotalInvestmentsValue: d.TotalInvestmentsValue,
		TotalGold:             d.TotalGold,
		TotalSilver:           d.TotalSilver,
		RecentEntriesCount:    d.RecentEntriesCount,
	}
	if d.MonthlyGoalProgress != nil {
		res.MonthlyGoalProgress = &GoalProgressResponse{
			IncomeProgress: d.MonthlyGoalProgress.IncomeProgress,
			GoldProgress:   d.MonthlyGoalProgress.GoldProgress,
			SilverProgress: d.MonthlyGoalProgress.SilverProgress,
		}
	}
	return res
}

// ToPeriodAnalyticsResponse converts domain period analytics to a DTO response
func ToPeriodAnalyticsResponse(p *domain.PeriodAnalytics) PeriodAnalyticsResponse {
	return PeriodAnalyticsResponse{
		FromDate:          p.From.Format(DateLayout),
		ToDate:            p.To.Format(DateLayout),
		TotalIncome:       p.TotalIncome,
		TotalExpense:      p.TotalExpense,
		NetIncome:         p.NetIncome,
		TotalGold:         p.TotalGold,
		TotalSilver:       p.TotalSilver,
		CategoryBreakdown: toCategoryBreakdownResponse(p.CategoryBreakdown),
		EntryCount:        p.EntryCount,
	}
}
