package mapping

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/models"
)

// ToModelMonthlyGoal converts a domain MonthlyGoal to a model MonthlyGoal
func ToModelMonthlyGoal(d domain.MonthlyGoal) models.MonthlyGoal {
	return models.MonthlyGoal{
		GoalID:         d.GoalID,
		UserID:         d.UserID,
		Year:           d.Year,
		Month:          d.Month,
		IncomeGoal:     d.IncomeGoal,
		GoldGoal:       d.GoldGoal,
		SilverGoal:     d.SilverGoal,
		InvestmentGoal: d.InvestmentGoal,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMonthlyGoal converts a model MonthlyGoal to a domain MonthlyGoal
func ToDomainMonthlyGoal(m models.MonthlyGoal) domain.MonthlyGoal {
	return domain.MonthlyGoal{
		GoalID:         m.GoalID,
		UserID:         m.UserID,
		Year:           m.Year,
		Month:          m.Month,
		IncomeGoal:     m.IncomeGoal,
		GoldGoal:       m.GoldGoal,
		SilverGoal:     m.SilverGoal,
		InvestmentGoal: m.InvestmentGoal,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
