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
	"github.com/SscSPs/portfel_tracker/internal/utils/aggregation"
	"golang.org/x/sync/errgroup"
)

const (
	monthsPerYear                  = 12
	defaultAnnualAnalyticsParallel = 4
)

// analyticsService implements the AnalyticsService interface
type analyticsService struct {
	BaseService
	reader            portsrepo.AnalyticsDataReader
	annualConcurrency int
}

// AnalyticsServiceOption is a functional option for configuring the analytics service
type AnalyticsServiceOption func(*analyticsService)

// WithAnnualConcurrency bounds how many months of an annual report are computed at once.
// 1 computes the months strictly one after another. Values below 1 are ignored.
func WithAnnualConcurrency(n int) AnalyticsServiceOption {
	return func(s *analyticsService) {
		if n >= 1 {
			s.annualConcurrency = n
		}
	}
}

// NewAnalyticsService creates a new analytics service with the provided options
func NewAnalyticsService(reader portsrepo.AnalyticsDataReader, options ...AnalyticsServiceOption) portssvc.AnalyticsService {
	svc := &analyticsService{
		reader:            reader,
		annualConcurrency: defaultAnnualAnalyticsParallel,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure analyticsService implements the AnalyticsService interface
var _ portssvc.AnalyticsService = (*analyticsService)(nil)

func validateMonth(month int) error {
	if month < 1 || month > monthsPerYear {
		return apperrors.InvalidArgumentf("month must be between 1 and 12, got %d", month)
	}
	return nil
}

// DashboardStats summarises the calendar month containing asOf.
func (s *analyticsService) DashboardStats(ctx context.Context, userID string, asOf time.Time) (*domain.DashboardStats, error) {
	year, month := asOf.Year(), int(asOf.Month())

	entries, err := s.reader.EntriesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve entries for dashboard",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve entries for dashboard: %w", err)
	}

	investments, err := s.reader.InvestmentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve investments for dashboard", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve investments for dashboard: %w", err)
	}

	goal, err := s.reader.MonthlyGoal(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly goal for dashboard",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve monthly goal for dashboard: %w", err)
	}

	totals := aggregation.SumEntryTotals(entries)
	stats := &domain.DashboardStats{
		Year:                  year,
		Month:                 month,
		CurrentMonthIncome:    totals.TotalIncome,
		CurrentMonthExpense:   totals.TotalExpense,
		CurrentMonthNet:       totals.NetIncome(),
		TotalInvestmentsValue: aggregation.TotalInvestmentValue(investments),
		TotalGold:             totals.TotalGold,
		TotalSilver:           totals.TotalSilver,
		MonthlyGoalProgress:   aggregation.GoalProgress(totals.TotalIncome, totals.TotalGold, totals.TotalSilver, goal),
		RecentEntriesCount:    len(entries),
	}

	s.LogInfo(ctx, "Dashboard stats generated successfully",
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("entry_count", len(entries)),
		slog.Int("investment_count", len(investments)),
		slog.Bool("has_goal", goal != nil))
	return stats, nil
}

// MonthlyAnalytics summarises one calendar month.
func (s *analyticsService) MonthlyAnalytics(ctx context.Context, userID string, year, month int) (*domain.MonthlyAnalytics, error) {
	if err := validateMonth(month); err != nil {
		s.LogWarn(ctx, "Rejected monthly analytics request",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}

	monthly, err := s.computeMonth(ctx, userID, year, month)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Monthly analytics generated successfully",
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int("month", month),
		slog.Int("category_count", len(monthly.CategoryBreakdown)))
	return monthly, nil
}

// computeMonth builds the analytics of one month. month must already be validated.
func (s *analyticsService) computeMonth(ctx context.Context, userID string, year, month int) (*domain.MonthlyAnalytics, error) {
	entries, err := s.reader.EntriesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve entries for month",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve entries for %04d-%02d: %w", year, month, err)
	}

	totals := aggregation.SumEntryTotals(entries)
	breakdown := aggregation.CategoryBreakdown(entries, totals.TotalExpense)

	goal, err := s.reader.MonthlyGoal(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly goal",
			slog.String("user_id", userID),
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, fmt.Errorf("failed to retrieve goal for %04d-%02d: %w", year, month, err)
	}

	return &domain.MonthlyAnalytics{
		Year:              year,
		Month:             month,
		TotalIncome:       totals.TotalIncome,
		TotalExpense:      totals.TotalExpense,
		NetIncome:         totals.NetIncome(),
		TotalGold:         totals.TotalGold,
		TotalSilver:       totals.TotalSilver,
		CategoryBreakdown: breakdown,
		GoalProgress:      goal,
	}, nil
}

// AnnualAnalytics summarises all twelve months of year.
// Months are computed concurrently up to annualConcurrency and stored by index,
// so the breakdown is always in calendar order. The first failure cancels the rest.
func (s *analyticsService) AnnualAnalytics(ctx context.Context, userID string, year int) (*domain.AnnualAnalytics, error) {
	months := make([]domain.MonthlyAnalytics, monthsPerYear)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.annualConcurrency)
	for i := range months {
		month := i + 1
		g.Go(func() error {
			monthly, err := s.computeMonth(gctx, userID, year, month)
			if err != nil {
				return err
			}
			months[i] = *monthly
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to compute annual analytics",
			slog.String("user_id", userID),
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to compute annual analytics for %d: %w", year, err)
	}

	investments, err := s.reader.InvestmentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve investments for annual analytics", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve investments for annual analytics: %w", err)
	}

	var annual aggregation.EntryTotals
	for _, m := range months {
		annual = annual.Add(aggregation.EntryTotals{
			TotalIncome:  m.TotalIncome,
			TotalExpense: m.TotalExpense,
			TotalGold:    m.TotalGold,
			TotalSilver:  m.TotalSilver,
		})
	}

	s.LogInfo(ctx, "Annual analytics generated successfully",
		slog.String("user_id", userID),
		slog.Int("year", year),
		slog.Int("investment_count", len(investments)))
	return &domain.AnnualAnalytics{
		Year:             year,
		TotalIncome:      annual.TotalIncome,
		TotalExpense:     annual.TotalExpense,
		NetIncome:        annual.NetIncome(),
		TotalGold:        annual.TotalGold,
		TotalSilver:      annual.TotalSilver,
		TotalInvestments: aggregation.TotalInvestmentValue(investments),
		MonthlyBreakdown: months,
	}, nil
}

// PeriodAnalytics summarises the inclusive date range [from, to].
func (s *analyticsService) PeriodAnalytics(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodAnalytics, error) {
	if from.After(to) {
		s.LogWarn(ctx, "Rejected period analytics request with inverted range",
			slog.String("user_id", userID),
			slog.String("fromDate", from.Format(dto.DateLayout)),
			slog.String("toDate", to.Format(dto.DateLayout)))
		return nil, apperrors.InvalidArgumentf("fromDate %s is after toDate %s", from.Format(dto.DateLayout), to.Format(dto.DateLayout))
	}

	entries, err := s.reader.EntriesByDateRange(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve entries for period",
			slog.String("user_id", userID),
			slog.String("fromDate", from.Format(dto.DateLayout)),
			slog.String("toDate", to.Format(dto.DateLayout)))
		return nil, fmt.Errorf("failed to retrieve entries for period: %w", err)
	}

	totals := aggregation.SumEntryTotals(entries)
	return &domain.PeriodAnalytics{
		From:              from,
		To:                to,
		TotalIncome:       totals.TotalIncome,
		TotalExpense:      totals.TotalExpense,
		NetIncome:         totals.NetIncome(),
		TotalGold:         totals.TotalGold,
		TotalSilver:       totals.TotalSilver,
		CategoryBreakdown: aggregation.CategoryBreakdown(entries, totals.TotalExpense),
		EntryCount:        len(entries),
	}, nil
}

// InvestmentSummary groups the user's investments by type.
func (s *analyticsService) InvestmentSummary(ctx context.Context, userID string) ([]domain.InvestmentSummary, error) {
	investments, err := s.reader.InvestmentsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve investments for summary", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to retrieve investments for summary: %w", err)
	}
	return aggregation.InvestmentSummaryByType(investments), nil
}
