package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// DailyEntry is a row of the daily_entries table. (user_id, entry_date) is unique among live rows.
type DailyEntry struct {
	EntryID            string          `db:"entry_id"`
	UserID             string          `db:"user_id"`
	EntryDate          time.Time       `db:"entry_date"`
	Income             decimal.Decimal `db:"income"`
	IncomeDescription  sql.NullString  `db:"income_description"`
	Expense            decimal.Decimal `db:"expense"`
	ExpenseCategory    sql.NullString  `db:"expense_category"`
	ExpenseDescription sql.NullString  `db:"expense_description"`
	GoldGrams          decimal.Decimal `db:"gold_grams"`
	SilverGrams        decimal.Decimal `db:"silver_grams"`
	Notes              sql.NullString  `db:"notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
