package services

import (
	"context"
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

type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepositoryFacade
	defaults domain.GoalDefaults
	now      func() time.Time
}

// NewGoalService creates a goal service. defaults fill in months with no saved goal.
func NewGoalService(repo portsrepo.GoalRepositoryFacade, defaults domain.GoalDefaults) portssvc.GoalSvcFacade {
	return &goalService{
		goalRepo: repo,
		defaults: defaults,
		now:      time.Now,
	}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) defaultGoal(userID string, year, month int) *domain.MonthlyGoal {
	return &domain.MonthlyGoal{
		UserID:         userID,
		Year:           year,
		Month:          month,
		IncomeGoal:     s.defaults.IncomeGoal,
		GoldGoal:       s.defaults.GoldGoal,
		SilverGoal:     s.defaults.SilverGoal,
		InvestmentGoal: s.defaults.InvestmentGoal,
	}
}

// GetMonthlyGoal returns the saved goal or an unsaved default goal (empty GoalID).
func (s *goalService) GetMonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	goal, err := s.goalRepo.MonthlyGoal(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to get monthly goal", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to get monthly goal: %w", err)
	}
	if goal == nil {
		s.LogDebug(ctx, "No saved goal, returning defaults", slog.Int("year", year), slog.Int("month", month))
		return s.defaultGoal(userID, year, month), nil
	}
	return goal, nil
}

// UpsertMonthlyGoal merges req onto the saved goal (or defaults) and saves the result.
func (s *goalService) UpsertMonthlyGoal(ctx context.Context, userID string, year, month int, req dto.UpsertMonthlyGoalRequest) (*domain.MonthlyGoal, error) {
	goal, err := s.GetMonthlyGoal(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	targets := []struct {
		name  string
		value *decimal.Decimal
		field *decimal.Decimal
	}{
		{"incomeGoal", req.IncomeGoal, &goal.IncomeGoal},
		{"goldGoal", req.GoldGoal, &goal.GoldGoal},
		{"silverGoal", req.SilverGoal, &goal.SilverGoal},
		{"investmentGoal", req.InvestmentGoal, &goal.InvestmentGoal},
	}
	for _, t := range targets {
		if t.value == nil {
			continue
		}
		if t.value.IsNegative() {
			return nil, apperrors.Validationf("%s must not be negative", t.name)
		}
		*t.field = *t.value
	}

	now := s.now()
	if goal.GoalID == "" {
		goal.GoalID = uuid.NewString()
		goal.AuditFields = domain.NewAuditFields(userID, now)
	} else {
		goal.Touch(userID, now)
	}

	saved, err := s.goalRepo.UpsertMonthlyGoal(ctx, *goal)
	if err != nil {
		s.LogError(ctx, err, "Failed to save monthly goal", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to save monthly goal: %w", err)
	}

	s.LogInfo(ctx, "Monthly goal saved", slog.String("goal_id", saved.GoalID), slog.Int("year", year), slog.Int("month", month))
	return saved, nil
}

// ListYearlyGoals returns the saved goals of year, ordered by month.
func (s *goalService) ListYearlyGoals(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error) {
	goals, err := s.goalRepo.GoalsByYear(ctx, userID, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to list yearly goals", slog.Int("year", year))
		return nil, fmt.Errorf("failed to list goals for %d: %w", year, err)
	}
	return goals, nil
}
