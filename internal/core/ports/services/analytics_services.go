package services

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// AnalyticsService computes read-only aggregates over a user's entries, investments and goals.
// Nothing is cached; every call reads the store again.
type AnalyticsService interface {
	// DashboardStats summarises the calendar month containing asOf.
	DashboardStats(ctx context.Context, userID string, asOf time.Time) (*domain.DashboardStats, error)

	// MonthlyAnalytics summarises one calendar month. A month outside 1..12 yields apperrors.ErrInvalidArgument.
	MonthlyAnalytics(ctx context.Context, userID string, year, month int) (*domain.MonthlyAnalytics, error)

	// AnnualAnalytics summarises all twelve months of year. Any failing month fails the whole call.
	AnnualAnalytics(ctx context.Context, userID string, year int) (*domain.AnnualAnalytics, error)

	// PeriodAnalytics summarises an inclusive date range. from after to yields apperrors.ErrInvalidArgument.
	PeriodAnalytics(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodAnalytics, error)

	// InvestmentSummary groups the user's investments by type.
	InvestmentSummary(ctx context.Context, userID string) ([]domain.InvestmentSummary, error)
}
