package mapping

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/models"
)

// ToModelInvestment converts a domain Investment to a model Investment
func ToModelInvestment(d domain.Investment) models.Investment {
	return models.Investment{
		InvestmentID:   d.InvestmentID,
		UserID:         d.UserID,
		InvestmentType: string(d.InvestmentType),
		Name:           d.Name,
		Amount:         d.Amount,
		Quantity:       d.Quantity,
		PurchaseDate:   d.PurchaseDate,
		CurrentValue:   d.CurrentValue,
		Notes:          toNullString(d.Notes),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvestment converts a model Investment to a domain Investment
func ToDomainInvestment(m models.Investment) domain.Investment {
	return domain.Investment{
		InvestmentID:   m.InvestmentID,
		UserID:         m.UserID,
		InvestmentType: domain.InvestmentType(m.InvestmentType),
		Name:           m.Name,
		Amount:         m.Amount,
		Quantity:       m.Quantity,
		PurchaseDate:   m.PurchaseDate,
		CurrentValue:   m.CurrentValue,
		Notes:          m.Notes.String,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvestmentSlice converts a slice of model Investments
func ToDomainInvestmentSlice(ms []models.Investment) []domain.Investment {
	ds := make([]domain.Investment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvestment(m)
	}
	return ds
}
