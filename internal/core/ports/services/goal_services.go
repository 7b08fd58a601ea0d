package services

import (
	"context"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
)

// GoalSvcFacade defines operations on monthly goals.
type GoalSvcFacade interface {
	// GetMonthlyGoal returns the saved goal, or an unsaved goal built from the configured defaults.
	// It never writes.
	GetMonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error)

	// UpsertMonthlyGoal merges the provided targets onto the saved goal (or the defaults) and saves it.
	UpsertMonthlyGoal(ctx context.Context, userID string, year, month int, req dto.UpsertMonthlyGoalRequest) (*domain.MonthlyGoal, error)

	// ListYearlyGoals returns the saved goals of a year.
	ListYearlyGoals(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error)
}
