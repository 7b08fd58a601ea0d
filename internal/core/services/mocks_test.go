package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock EntryRepository ---
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) EntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error) {
	args := m.Called(ctx, userID, year, month)
	var entries []domain.DailyEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.DailyEntry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) EntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error) {
	args := m.Called(ctx, userID, from, to)
	var entries []domain.DailyEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.DailyEntry)
	}
	return entries, args.Error(1)
}

func (m *MockEntryRepository) FindEntryByID(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error) {
	args := m.Called(ctx, userID, entryID)
	var entry *domain.DailyEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.DailyEntry)
	}
	return entry, args.Error(1)
}

func (m *MockEntryRepository) SaveEntry(ctx context.Context, entry domain.DailyEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) UpdateEntry(ctx context.Context, entry domain.DailyEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockEntryRepository) MarkEntryDeleted(ctx context.Context, userID, entryID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, entryID, deletedAt)
	return args.Error(0)
}

// --- Mock InvestmentRepository ---
type MockInvestmentRepository struct {
	mock.Mock
}

func (m *MockInvestmentRepository) InvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	args := m.Called(ctx, userID)
	var investments []domain.Investment
	if args.Get(0) != nil {
		investments = args.Get(0).([]domain.Investment)
	}
	return investments, args.Error(1)
}

func (m *MockInvestmentRepository) FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	args := m.Called(ctx, userID, investmentID)
	var inv *domain.Investment
	if args.Get(0) != nil {
		inv = args.Get(0).(*domain.Investment)
	}
	return inv, args.Error(1)
}

func (m *MockInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	args := m.Called(ctx, investment)
	return args.Error(0)
}

func (m *MockInvestmentRepository) MarkInvestmentDeleted(ctx context.Context, userID, investmentID string, deletedAt time.Time) error {
	args := m.Called(ctx, userID, investmentID, deletedAt)
	return args.Error(0)
}

// --- Mock GoalRepository ---
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) MonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error) {
	args := m.Called(ctx, userID, year, month)
	var goal *domain.MonthlyGoal
	if args.Get(0) != nil {
		goal = args.Get(0).(*domain.MonthlyGoal)
	}
	return goal, args.Error(1)
}

func (m *MockGoalRepository) GoalsByYear(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error) {
	args := m.Called(ctx, userID, year)
	var goals []domain.MonthlyGoal
	if args.Get(0) != nil {
		goals = args.Get(0).([]domain.MonthlyGoal)
	}
	return goals, args.Error(1)
}

func (m *MockGoalRepository) UpsertMonthlyGoal(ctx context.Context, goal domain.MonthlyGoal) (*domain.MonthlyGoal, error) {
	args := m.Called(ctx, goal)
	var saved *domain.MonthlyGoal
	if fn, ok := args.Get(0).(func(context.Context, domain.MonthlyGoal) *domain.MonthlyGoal); ok {
		saved = fn(ctx, goal)
	} else if args.Get(0) != nil {
		saved = args.Get(0).(*domain.MonthlyGoal)
	}
	return saved, args.Error(1)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	var n *domain.Notification
	if args.Get(0) != nil {
		n = args.Get(0).(*domain.Notification)
	}
	return n, args.Error(1)
}

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly, limit, offset)
	var ns []domain.Notification
	if args.Get(0) != nil {
		ns = args.Get(0).([]domain.Notification)
	}
	return ns, args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllNotificationsRead(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) MarkNotificationDeleted(ctx context.Context, notificationID string, deletedAt time.Time) error {
	args := m.Called(ctx, notificationID, deletedAt)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}
