package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a row of the investments table.
type Investment struct {
	InvestmentID   string              `db:"investment_id"`
	UserID         string              `db:"user_id"`
	InvestmentType string              `db:"investment_type"`
	Name           string              `db:"name"`
	Amount         decimal.Decimal     `db:"amount"`
	Quantity       decimal.NullDecimal `db:"quantity"`
	PurchaseDate   time.Time           `db:"purchase_date"`
	CurrentValue   decimal.NullDecimal `db:"current_value"`
	Notes          sql.NullString      `db:"notes"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
