package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies the expense part of a daily entry.
type ExpenseCategory string

const (
	CategoryFood          ExpenseCategory = "FOOD"
	CategoryTransport     ExpenseCategory = "TRANSPORT"
	CategoryEntertainment ExpenseCategory = "ENTERTAINMENT"
	CategoryHousing       ExpenseCategory = "HOUSING"
	CategoryUtilities     ExpenseCategory = "UTILITIES"
	CategoryHealthcare    ExpenseCategory = "HEALTHCARE"
	CategoryEducation     ExpenseCategory = "EDUCATION"
	CategoryShopping      ExpenseCategory = "SHOPPING"
	CategorySubscriptions ExpenseCategory = "SUBSCRIPTIONS"
	CategoryOther         ExpenseCategory = "OTHER"
)

// ExpenseCategories lists every valid category in declaration order.
var ExpenseCategories = []ExpenseCategory{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryHousing,
	CategoryUtilities,
	CategoryHealthcare,
	CategoryEducation,
	CategoryShopping,
	CategorySubscriptions,
	CategoryOther,
}

// IsValid reports whether c is one of the known categories.
func (c ExpenseCategory) IsValid() bool {
	for _, known := range ExpenseCategories {
		if c == known {
			return true
		}
	}
	return false
}

// DailyEntry is one day's recorded activity for one user.
type DailyEntry struct {
	EntryID            string           `json:"entryID"`
	UserID             string           `json:"userID"`
	Date               time.Time        `json:"date"`
	Income             decimal.Decimal  `json:"income"`
	IncomeDescription  string           `json:"incomeDescription"`
	Expense            decimal.Decimal  `json:"expense"`
	ExpenseCategory    *ExpenseCategory `json:"expenseCategory"` // Nullable
	ExpenseDescription string           `json:"expenseDescription"`
	GoldGrams          decimal.Decimal  `json:"goldGrams"`
	SilverGrams        decimal.Decimal  `json:"silverGrams"`
	Notes              string           `json:"notes"`
	AuditFields
}
