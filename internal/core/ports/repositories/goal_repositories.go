package repositories

import (
	"context"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// GoalReader defines the single-month goal lookup used by analytics.
type GoalReader interface {
	// MonthlyGoal retrieves the goal for (userID, year, month).
	// A missing goal is not an error: it returns nil, nil.
	MonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error)
}

// GoalLister lists goals over a year.
type GoalLister interface {
	// GoalsByYear retrieves the saved goals of userID for year, ordered by month.
	GoalsByYear(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error)
}

// GoalWriter defines write operations for monthly goals.
type GoalWriter interface {
	// UpsertMonthlyGoal inserts the goal or replaces the targets of the existing goal for the same month.
	UpsertMonthlyGoal(ctx context.Context, goal domain.MonthlyGoal) (*domain.MonthlyGoal, error)
}

// GoalRepositoryFacade combines all goal-related repository interfaces.
type GoalRepositoryFacade interface {
	GoalReader
	GoalLister
	GoalWriter
}
