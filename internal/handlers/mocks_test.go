package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AnalyticsService ---
type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) DashboardStats(ctx context.Context, userID string, asOf time.Time) (*domain.DashboardStats, error) {
	args := m.Called(ctx, userID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockAnalyticsService) MonthlyAnalytics(ctx context.Context, userID string, year, month int) (*domain.MonthlyAnalytics, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) AnnualAnalytics(ctx context.Context, userID string, year int) (*domain.AnnualAnalytics, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnnualAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) PeriodAnalytics(ctx context.Context, userID string, from, to time.Time) (*domain.PeriodAnalytics, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PeriodAnalytics), args.Error(1)
}

func (m *MockAnalyticsService) InvestmentSummary(ctx context.Context, userID string) ([]domain.InvestmentSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvestmentSummary), args.Error(1)
}

var _ portssvc.AnalyticsService = (*MockAnalyticsService)(nil)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) GetEntry(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyEntry), args.Error(1)
}

func (m *MockEntryService) ListEntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyEntry), args.Error(1)
}

func (m *MockEntryService) ListEntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DailyEntry), args.Error(1)
}

func (m *MockEntryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.DailyEntry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyEntry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateEntryRequest) (*domain.DailyEntry, error) {
	args := m.Called(ctx, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyEntry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

var _ portssvc.EntrySvcFacade = (*MockEntryService)(nil)

// --- Mock InvestmentService ---
type MockInvestmentService struct {
	mock.Mock
}

func (m *MockInvestmentService) GetInvestment(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) ListInvestments(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) CreateInvestment(ctx context.Context, userID string, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) UpdateInvestment(ctx context.Context, userID, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Investment), args.Error(1)
}

func (m *MockInvestmentService) DeleteInvestment(ctx context.Context, userID, investmentID string) error {
	args := m.Called(ctx, userID, investmentID)
	return args.Error(0)
}

var _ portssvc.InvestmentSvcFacade = (*MockInvestmentService)(nil)

// --- Mock GoalService ---
type MockGoalService struct {
	mock.Mock
}

func (m *MockGoalService) GetMonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error) {
	args := m.Called(ctx, userID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyGoal), args.Error(1)
}

func (m *MockGoalService) UpsertMonthlyGoal(ctx context.Context, userID string, year, month int, req dto.UpsertMonthlyGoalRequest) (*domain.MonthlyGoal, error) {
	args := m.Called(ctx, userID, year, month, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyGoal), args.Error(1)
}

func (m *MockGoalService) ListYearlyGoals(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error) {
	args := m.Called(ctx, userID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyGoal), args.Error(1)
}

var _ portssvc.GoalSvcFacade = (*MockGoalService)(nil)

// --- Mock NotificationService ---
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) CreateNotification(ctx context.Context, userID, title, message string, notificationType domain.NotificationType) (*domain.Notification, error) {
	args := m.Called(ctx, userID, title, message, notificationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string, params dto.ListNotificationsParams) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) UnreadCount(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, userID, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, userID, notificationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationService) DeleteNotification(ctx context.Context, userID, notificationID string) error {
	args := m.Called(ctx, userID, notificationID)
	return args.Error(0)
}

var _ portssvc.NotificationSvcFacade = (*MockNotificationService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, login, password string) (*domain.User, error) {
	args := m.Called(ctx, login, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

var _ portssvc.TokenSvc = (*MockTokenService)(nil)
