package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type investmentService struct {
	BaseService
	investmentRepo portsrepo.InvestmentRepositoryFacade
	now            func() time.Time
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(repo portsrepo.InvestmentRepositoryFacade) portssvc.InvestmentSvcFacade {
	return &investmentService{
		investmentRepo: repo,
		now:            time.Now,
	}
}

var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func validateInvestment(inv *domain.Investment) error {
	if !inv.InvestmentType.IsValid() {
		return apperrors.Validationf("unknown investment type %q", inv.InvestmentType)
	}
	if inv.Name == "" {
		return apperrors.Validationf("name is required")
	}
	if !inv.Amount.IsPositive() {
		return apperrors.Validationf("amount must be greater than zero")
	}
	if inv.Quantity.Valid && inv.Quantity.Decimal.IsNegative() {
		return apperrors.Validationf("quantity must not be negative")
	}
	if inv.CurrentValue.Valid && inv.CurrentValue.Decimal.IsNegative() {
		return apperrors.Validationf("currentValue must not be negative")
	}
	return nil
}

// CreateInvestment records a new investment for userID.
func (s *investmentService) CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	purchaseDate, err := dto.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, apperrors.Validationf("invalid purchaseDate %q, use YYYY-MM-DD", req.PurchaseDate)
	}

	inv := domain.Investment{
		InvestmentID:   uuid.NewString(),
		UserID:         userID,
		InvestmentType: req.InvestmentType,
		Name:           req.Name,
		Amount:         req.Amount,
		Quantity:       req.NullQuantity(),
		PurchaseDate:   purchaseDate,
		CurrentValue:   req.NullCurrentValue(),
		Notes:          req.Notes,
		AuditFields:    domain.NewAuditFields(userID, s.now()),
	}
	if err := validateInvestment(&inv); err != nil {
		return nil, err
	}

	if err := s.investmentRepo.SaveInvestment(ctx, inv); err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.LogInfo(ctx, "Investment created",
		slog.String("investment_id", inv.InvestmentID),
		slog.String("investment_type", string(inv.InvestmentType)))
	return &inv, nil
}

// GetInvestment retrieves one of userID's investments.
func (s *investmentService) GetInvestment(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	inv, err := s.investmentRepo.FindInvestmentByID(ctx, userID, investmentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get investment", slog.String("investment_id", investmentID))
		}
		return nil, fmt.Errorf("failed to get investment %s: %w", investmentID, err)
	}
	return inv, nil
}

// ListInvestments lists all of userID's investments, most recent purchase first.
func (s *investmentService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	investments, err := s.investmentRepo.InvestmentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

// UpdateInvestment applies the non-nil fields of req to an existing investment.
func (s *investmentService) UpdateInvestment(ctx context.Context, userID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	inv, err := s.GetInvestment(ctx, userID, investmentID)
	if err != nil {
		return nil, err
	}

	if req.InvestmentType != nil {
		inv.InvestmentType = *req.InvestmentType
	}
	if req.Name != nil {
		inv.Name = *req.Name
	}
	if req.Amount != nil {
		inv.Amount = *req.Amount
	}
	if req.Quantity != nil {
		inv.Quantity = decimal.NewNullDecimal(*req.Quantity)
	}
	if req.PurchaseDate != nil {
		purchaseDate, err := dto.ParseDate(*req.PurchaseDate)
		if err != nil {
			return nil, apperrors.Validationf("invalid purchaseDate %q, use YYYY-MM-DD", *req.PurchaseDate)
		}
		inv.PurchaseDate = purchaseDate
	}
	if req.CurrentValue != nil {
		inv.CurrentValue = decimal.NewNullDecimal(*req.CurrentValue)
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
	}
	if err := validateInvestment(inv); err != nil {
		return nil, err
	}

	inv.Touch(userID, s.now())
	if err := s.investmentRepo.UpdateInvestment(ctx, *inv); err != nil {
		s.LogError(ctx, err, "Failed to update investment", slog.String("investment_id", investmentID))
		return nil, fmt.Errorf("failed to update investment %s: %w", investmentID, err)
	}

	s.LogInfo(ctx, "Investment updated", slog.String("investment_id", investmentID))
	return inv, nil
}

// DeleteInvestment soft-deletes one of userID's investments.
func (s *investmentService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	if err := s.investmentRepo.MarkInvestmentDeleted(ctx, userID, investmentID, s.now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete investment", slog.String("investment_id", investmentID))
		}
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	s.LogInfo(ctx, "Investment deleted", slog.String("investment_id", investmentID))
	return nil
}
