package services

import (
	"context"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
)

// InvestmentReaderSvc defines read operations for investments.
type InvestmentReaderSvc interface {
	GetInvestment(ctx context.Context, userID, investmentID string) (*domain.Investment, error)
	ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentWriterSvc defines write operations for investments.
type InvestmentWriterSvc interface {
	CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error)
	UpdateInvestment(ctx context.Context, userID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error)
	DeleteInvestment(ctx context.Context, userID, investmentID string) error
}

// InvestmentSvcFacade combines all investment-related service interfaces.
type InvestmentSvcFacade interface {
	InvestmentReaderSvc
	InvestmentWriterSvc
}
