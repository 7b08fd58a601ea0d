package dto

import (
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvestmentRequest defines the data needed to record an investment.
type CreateInvestmentRequest struct {
	InvestmentType domain.InvestmentType `json:"investmentType" binding:"required,investment_type"`
	Name           string                `json:"name" binding:"required,max=200"`
	Amount         decimal.Decimal       `json:"amount"`
	Quantity       *decimal.Decimal      `json:"quantity"`
	PurchaseDate   string                `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	CurrentValue   *decimal.Decimal      `json:"currentValue"`
	Notes          string                `json:"notes" binding:"max=2000"`
}

// UpdateInvestmentRequest defines the fields that may be patched on an investment.
// Nil fields are left unchanged.
type UpdateInvestmentRequest struct {
	InvestmentType *domain.InvestmentType `json:"investmentType" binding:"omitempty,investment_type"`
	Name           *string                `json:"name" binding:"omitempty,max=200"`
	Amount         *decimal.Decimal       `json:"amount"`
	Quantity       *decimal.Decimal       `json:"quantity"`
	PurchaseDate   *string                `json:"purchaseDate" binding:"omitempty,datetime=2006-01-02"`
	CurrentValue   *decimal.Decimal       `json:"currentValue"`
	Notes          *string                `json:"notes" binding:"omitempty,max=2000"`
}

// InvestmentResponse defines the data returned for an investment.
type InvestmentResponse struct {
	InvestmentID   string                `json:"investmentID"`
	InvestmentType domain.InvestmentType `json:"investmentType"`
	Name           string                `json:"name"`
	Amount         decimal.Decimal       `json:"amount"`
	Quantity       *decimal.Decimal      `json:"quantity"`
	PurchaseDate   string                `json:"purchaseDate"`
	CurrentValue   *decimal.Decimal      `json:"currentValue"`
	Notes          string                `json:"notes"`
	CreatedAt      time.Time             `json:"createdAt"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
}

// ListInvestmentsResponse wraps a list of investments.
type ListInvestmentsResponse struct {
	Investments []InvestmentResponse `json:"investments"`
}

// InvestmentSummaryResponse is one per-type row of the investment summary.
type InvestmentSummaryResponse struct {
	InvestmentType    domain.InvestmentType `json:"investmentType"`
	TotalAmount       decimal.Decimal       `json:"totalAmount"`
	TotalCurrentValue decimal.Decimal       `json:"totalCurrentValue"`
	Count             int                   `json:"count"`
}

// NullQuantity returns the request quantity as a nullable decimal.
func (r CreateInvestmentRequest) NullQuantity() decimal.NullDecimal {
	return toNullDecimal(r.Quantity)
}

// NullCurrentValue returns the request current value as a nullable decimal.
func (r CreateInvestmentRequest) NullCurrentValue() decimal.NullDecimal {
	return toNullDecimal(r.CurrentValue)
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:   inv.InvestmentID,
		InvestmentType: inv.InvestmentType,
		Name:           inv.Name,
		Amount:         inv.Amount,
		Quantity:       nullableDecimal(inv.Quantity),
		PurchaseDate:   inv.PurchaseDate.Format(DateLayout),
		CurrentValue:   nullableDecimal(inv.CurrentValue),
		Notes:          inv.Notes,
		CreatedAt:      inv.CreatedAt,
		LastUpdatedAt:  inv.LastUpdatedAt,
	}
}

// ToListInvestmentsResponse converts a slice of domain.Investment to ListInvestmentsResponse DTO
func ToListInvestmentsResponse(investments []domain.Investment) ListInvestmentsResponse {
	res := make([]InvestmentResponse, len(investments))
	for i := range investments {
		res[i] = ToInvestmentResponse(&investments[i])
	}
	return ListInvestmentsResponse{Investments: res}
}

// ToInvestmentSummaryResponse converts per-type summaries, keeping their order.
func ToInvestmentSummaryResponse(summaries []domain.InvestmentSummary) []InvestmentSummaryResponse {
	res := make([]InvestmentSummaryResponse, len(summaries))
	for i, s := range summaries {
		res[i] = InvestmentSummaryResponse{
			InvestmentType:    s.InvestmentType,
			TotalAmount:       s.TotalAmount,
			TotalCurrentValue: s.TotalCurrentValue,
			Count:             s.Count,
		}
	}
	return res
}
