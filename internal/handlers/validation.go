package handlers

import (
	"fmt"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the domain enum tags to gin's binding validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("expense_category", validateExpenseCategory); err != nil {
		return fmt.Errorf("register expense_category: %w", err)
	}
	if err := v.RegisterValidation("investment_type", validateInvestmentType); err != nil {
		return fmt.Errorf("register investment_type: %w", err)
	}
	return nil
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return domain.ExpenseCategory(fl.Field().String()).IsValid()
}

func validateInvestmentType(fl validator.FieldLevel) bool {
	return domain.InvestmentType(fl.Field().String()).IsValid()
}
