package dto

import (
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record a day's entry.
// Amounts default to zero when omitted.
type CreateEntryRequest struct {
	Date               string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Income             decimal.Decimal         `json:"income"`
	IncomeDescription  string                  `json:"incomeDescription" binding:"max=500"`
	Expense            decimal.Decimal         `json:"expense"`
	ExpenseCategory    *domain.ExpenseCategory `json:"expenseCategory" binding:"omitempty,expense_category"`
	ExpenseDescription string                  `json:"expenseDescription" binding:"max=500"`
	GoldGrams          decimal.Decimal         `json:"goldGrams"`
	SilverGrams        decimal.Decimal         `json:"silverGrams"`
	Notes              string                  `json:"notes" binding:"max=2000"`
}

// UpdateEntryRequest defines the fields that may be patched on an entry.
// Nil fields are left unchanged.
type UpdateEntryRequest struct {
	Income             *decimal.Decimal        `json:"income"`
	IncomeDescription  *string                 `json:"incomeDescription" binding:"omitempty,max=500"`
	Expense            *decimal.Decimal        `json:"expense"`
	ExpenseCategory    *domain.ExpenseCategory `json:"expenseCategory" binding:"omitempty,expense_category"`
	ExpenseDescription *string                 `json:"expenseDescription" binding:"omitempty,max=500"`
	GoldGrams          *decimal.Decimal        `json:"goldGrams"`
	SilverGrams        *decimal.Decimal        `json:"silverGrams"`
	Notes              *string                 `json:"notes" binding:"omitempty,max=2000"`
}

// ListEntriesParams selects entries either by an inclusive date range or by calendar month.
// The date range wins when both are given.
type ListEntriesParams struct {
	FromDate string `form:"fromDate" binding:"omitempty,datetime=2006-01-02"`
	ToDate   string `form:"toDate" binding:"omitempty,datetime=2006-01-02"`
	Year     int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month    int    `form:"month" binding:"omitempty,min=1,max=12"`
}

// EntryResponse defines the data returned for a daily entry.
type EntryResponse struct {
	EntryID            string                  `json:"entryID"`
	Date               string                  `json:"date"`
	Income             decimal.Decimal         `json:"income"`
	IncomeDescription  string                  `json:"incomeDescription"`
	Expense            decimal.Decimal         `json:"expense"`
	ExpenseCategory    *domain.ExpenseCategory `json:"expenseCategory"`
	ExpenseDescription string                  `json:"expenseDescription"`
	GoldGrams          decimal.Decimal         `json:"goldGrams"`
	SilverGrams        decimal.Decimal         `json:"silverGrams"`
	Notes              string                  `json:"notes"`
	CreatedAt          time.Time               `json:"createdAt"`
	LastUpdatedAt      time.Time               `json:"lastUpdatedAt"`
}

// ListEntriesResponse wraps a list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.DailyEntry to EntryResponse DTO
func ToEntryResponse(e *domain.DailyEntry) EntryResponse {
	return EntryResponse{
		EntryID:            e.EntryID,
		Date:               e.Date.Format(DateLayout),
		Income:             e.Income,
		IncomeDescription:  e.IncomeDescription,
		Expense:            e.Expense,
		ExpenseCategory:    e.ExpenseCategory,
		ExpenseDescription: e.ExpenseDescription,
		GoldGrams:          e.GoldGrams,
		SilverGrams:        e.SilverGrams,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
		LastUpdatedAt:      e.LastUpdatedAt,
	}
}

// ToListEntriesResponse converts a slice of domain.DailyEntry to ListEntriesResponse DTO
func ToListEntriesResponse(entries []domain.DailyEntry) ListEntriesResponse {
	res := make([]EntryResponse, len(entries))
	for i := range entries {
		res[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: res}
}
