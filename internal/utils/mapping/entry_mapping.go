package mapping

import (
	"database/sql"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/models"
)

// ToModelDailyEntry converts a domain DailyEntry to a model DailyEntry
func ToModelDailyEntry(d domain.DailyEntry) models.DailyEntry {
	var category sql.NullString
	if d.ExpenseCategory != nil {
		category = sql.NullString{String: string(*d.ExpenseCategory), Valid: true}
	}
	return models.DailyEntry{
		EntryID:            d.EntryID,
		UserID:             d.UserID,
		EntryDate:          d.Date,
		Income:             d.Income,
		IncomeDescription:  toNullString(d.IncomeDescription),
		Expense:            d.Expense,
		ExpenseCategory:    category,
		ExpenseDescription: toNullString(d.ExpenseDescription),
		GoldGrams:          d.GoldGrams,
		SilverGrams:        d.SilverGrams,
		Notes:              toNullString(d.Notes),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDailyEntry converts a model DailyEntry to a domain DailyEntry
func ToDomainDailyEntry(m models.DailyEntry) domain.DailyEntry {
	var category *domain.ExpenseCategory
	if m.ExpenseCategory.Valid {
		c := domain.ExpenseCategory(m.ExpenseCategory.String)
		category = &c
	}
	return domain.DailyEntry{
		EntryID:            m.EntryID,
		UserID:             m.UserID,
		Date:               m.EntryDate,
		Income:             m.Income,
		IncomeDescription:  m.IncomeDescription.String,
		Expense:            m.Expense,
		ExpenseCategory:    category,
		ExpenseDescription: m.ExpenseDescription.String,
		GoldGrams:          m.GoldGrams,
		SilverGrams:        m.SilverGrams,
		Notes:              m.Notes.String,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDailyEntrySlice converts a slice of model DailyEntries, never returning nil
func ToDomainDailyEntrySlice(ms []models.DailyEntry) []domain.DailyEntry {
	ds := make([]domain.DailyEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDailyEntry(m)
	}
	return ds
}
