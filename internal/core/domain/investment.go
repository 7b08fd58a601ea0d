package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvestmentType identifies the asset class of an investment.
type InvestmentType string

const (
	InvestmentGold       InvestmentType = "GOLD"
	InvestmentSilver     InvestmentType = "SILVER"
	InvestmentStocks     InvestmentType = "STOCKS"
	InvestmentBonds      InvestmentType = "BONDS"
	InvestmentCrypto     InvestmentType = "CRYPTO"
	InvestmentETF        InvestmentType = "ETF"
	InvestmentRealEstate InvestmentType = "REAL_ESTATE"
	InvestmentSavings    InvestmentType = "SAVINGS"
	InvestmentOther      InvestmentType = "OTHER"
)

// InvestmentTypes lists every valid investment type in declaration order.
var InvestmentTypes = []InvestmentType{
	InvestmentGold,
	InvestmentSilver,
	InvestmentStocks,
	InvestmentBonds,
	InvestmentCrypto,
	InvestmentETF,
	InvestmentRealEstate,
	InvestmentSavings,
	InvestmentOther,
}

// IsValid reports whether t is one of the known investment types.
func (t InvestmentType) IsValid() bool {
	for _, known := range InvestmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Investment is a single holding. Amount is the cost basis; CurrentValue is optional.
type Investment struct {
	InvestmentID   string              `json:"investmentID"`
	UserID         string              `json:"userID"`
	InvestmentType InvestmentType      `json:"investmentType"`
	Name           string              `json:"name"`
	Amount         decimal.Decimal     `json:"amount"`
	Quantity       decimal.NullDecimal `json:"quantity"`
	PurchaseDate   time.Time           `json:"purchaseDate"`
	CurrentValue   decimal.NullDecimal `json:"currentValue"`
	Notes          string              `json:"notes"`
	AuditFields
}

// InvestmentSummary aggregates the investments of one type.
// TotalCurrentValue sums the raw CurrentValue column; missing values count as zero.
type InvestmentSummary struct {
	InvestmentType    InvestmentType  `json:"investmentType"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	TotalCurrentValue decimal.Decimal `json:"totalCurrentValue"`
	Count             int             `json:"count"`
}
