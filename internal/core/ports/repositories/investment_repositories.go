package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// InvestmentReader defines the bulk read used by analytics.
type InvestmentReader interface {
	// InvestmentsByUser retrieves every non-deleted investment of userID.
	InvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error)
}

// InvestmentLookup finds single investments.
type InvestmentLookup interface {
	// FindInvestmentByID retrieves an investment owned by userID. Returns apperrors.ErrNotFound if absent.
	FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error)
}

// InvestmentWriter defines write operations for investments.
type InvestmentWriter interface {
	SaveInvestment(ctx context.Context, investment domain.Investment) error
	UpdateInvestment(ctx context.Context, investment domain.Investment) error
	MarkInvestmentDeleted(ctx context.Context, userID, investmentID string, deletedAt time.Time) error
}

// InvestmentRepositoryFacade combines all investment-related repository interfaces.
type InvestmentRepositoryFacade interface {
	InvestmentReader
	InvestmentLookup
	InvestmentWriter
}
