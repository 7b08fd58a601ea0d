// Package aggregation rolls daily entries and investments up into totals, category
// breakdowns and goal-progress ratios. Every function is pure and works on in-memory slices.
package aggregation

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EntryTotals holds the field-wise sums of a set of daily entries.
type EntryTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	TotalGold    decimal.Decimal
	TotalSilver  decimal.Decimal
}

// Add returns the field-wise sum of t and other.
func (t EntryTotals) Add(other EntryTotals) EntryTotals {
	return EntryTotals{
		TotalIncome:  t.TotalIncome.Add(other.TotalIncome),
		TotalExpense: t.TotalExpense.Add(other.TotalExpense),
		TotalGold:    t.TotalGold.Add(other.TotalGold),
		TotalSilver:  t.TotalSilver.Add(other.TotalSilver),
	}
}

// NetIncome is income minus expense.
func (t EntryTotals) NetIncome() decimal.Decimal {
	return t.TotalIncome.Sub(t.TotalExpense)
}

// Equal reports whether every field of t equals the matching field of other.
func (t EntryTotals) Equal(other EntryTotals) bool {
	return t.TotalIncome.Equal(other.TotalIncome) &&
		t.TotalExpense.Equal(other.TotalExpense) &&
		t.TotalGold.Equal(other.TotalGold) &&
		t.TotalSilver.Equal(other.TotalSilver)
}

// SumEntryTotals sums income, expense, gold and silver across entries. An empty slice yields zeros.
func SumEntryTotals(entries []domain.DailyEntry) EntryTotals {
	totals := EntryTotals{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		TotalGold:    decimal.Zero,
		TotalSilver:  decimal.Zero,
	}
	for _, e := range entries {
		totals.TotalIncome = totals.TotalIncome.Add(e.Income)
		totals.TotalExpense = totals.TotalExpense.Add(e.Expense)
		totals.TotalGold = totals.TotalGold.Add(e.GoldGrams)
		totals.TotalSilver = totals.TotalSilver.Add(e.SilverGrams)
	}
	return totals
}

// Percentage returns part / whole * 100, or zero when whole is zero.
func Percentage(part, whole decimal.Decimal) decimal.Decimal {
	if whole.IsZero() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// CategoryBreakdown groups categorized expenses by category, in the order categories first appear in entries.
// Entries without a category or with a zero expense are skipped, but percentages are still taken
// against totalExpense, so the breakdown can sum to less than 100.
func CategoryBreakdown(entries []domain.DailyEntry, totalExpense decimal.Decimal) []domain.CategoryBreakdown {
	perCategory := NewOrderedMap[domain.ExpenseCategory, decimal.Decimal]()
	for _, e := range entries {
		if !e.Expense.IsPositive() || e.ExpenseCategory == nil {
			continue
		}
		amount := e.Expense
		perCategory.Update(*e.ExpenseCategory, func(acc decimal.Decimal) decimal.Decimal {
			return acc.Add(amount)
		})
	}

	breakdown := make([]domain.CategoryBreakdown, 0, perCategory.Len())
	perCategory.Each(func(category domain.ExpenseCategory, amount decimal.Decimal) {
		percentage := decimal.Zero
		if totalExpense.IsPositive() {
			percentage = Percentage(amount, totalExpense)
		}
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	})
	return breakdown
}

// ValueInvestment returns the current value of inv when known, otherwise its cost basis.
func ValueInvestment(inv domain.Investment) decimal.Decimal {
	if inv.CurrentValue.Valid {
		return inv.CurrentValue.Decimal
	}
	return inv.Amount
}

// TotalInvestmentValue sums ValueInvestment over investments.
func TotalInvestmentValue(investments []domain.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(ValueInvestment(inv))
	}
	return total
}

type typeAccumulator struct {
	amount       decimal.Decimal
	currentValue decimal.Decimal
	count        int
}

// InvestmentSummaryByType groups investments by type in first-seen order.
// TotalCurrentValue adds the raw CurrentValue of each investment and counts a missing value as zero;
// it does not fall back to Amount the way ValueInvestment does.
func InvestmentSummaryByType(investments []domain.Investment) []domain.InvestmentSummary {
	perType := NewOrderedMap[domain.InvestmentType, typeAccumulator]()
	for _, inv := range investments {
		inv := inv
		perType.Update(inv.InvestmentType, func(acc typeAccumulator) typeAccumulator {
			acc.amount = acc.amount.Add(inv.Amount)
			if inv.CurrentValue.Valid {
				acc.currentValue = acc.currentValue.Add(inv.CurrentValue.Decimal)
			}
			acc.count++
			return acc
		})
	}

	summaries := make([]domain.InvestmentSummary, 0, perType.Len())
	perType.Each(func(t domain.InvestmentType, acc typeAccumulator) {
		summaries = append(summaries, domain.InvestmentSummary{
			InvestmentType:    t,
			TotalAmount:       acc.amount,
			TotalCurrentValue: acc.currentValue,
			Count:             acc.count,
		})
	})
	return summaries
}

// GoalProgress compares actual income, gold and silver with goal.
// A nil goal yields nil. A zero target yields a zero percentage for that dimension.
func GoalProgress(actualIncome, actualGold, actualSilver decimal.Decimal, goal *domain.MonthlyGoal) *domain.GoalProgress {
	if goal == nil {
		return nil
	}
	return &domain.GoalProgress{
		IncomeProgress: Percentage(actualIncome, goal.IncomeGoal),
		GoldProgress:   Percentage(actualGold, goal.GoldGoal),
		SilverProgress: Percentage(actualSilver, goal.SilverGoal),
	}
}
