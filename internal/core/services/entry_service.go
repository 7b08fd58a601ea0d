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

type entryService struct {
	BaseService
	entryRepo portsrepo.EntryRepositoryFacade
	now       func() time.Time
}

// EntryServiceOption is a functional option for configuring the entry service
type EntryServiceOption func(*entryService)

// WithEntryClock overrides the clock used for audit timestamps.
func WithEntryClock(now func() time.Time) EntryServiceOption {
	return func(s *entryService) {
		s.now = now
	}
}

// NewEntryService creates a new entry service with the provided options
func NewEntryService(repo portsrepo.EntryRepositoryFacade, options ...EntryServiceOption) portssvc.EntrySvcFacade {
	svc := &entryService{
		entryRepo: repo,
		now:       time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EntrySvcFacade = (*entryService)(nil)

func validateEntry(e *domain.DailyEntry) error {
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"income", e.Income},
		{"expense", e.Expense},
		{"goldGrams", e.GoldGrams},
		{"silverGrams", e.SilverGrams},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			return apperrors.Validationf("%s must not be negative", a.name)
		}
	}
	if e.ExpenseCategory != nil && !e.ExpenseCategory.IsValid() {
		return apperrors.Validationf("unknown expense category %q", *e.ExpenseCategory)
	}
	return nil
}

// CreateEntry records a new daily entry for userID.
func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.DailyEntry, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, apperrors.Validationf("invalid date %q, use YYYY-MM-DD", req.Date)
	}

	entry := domain.DailyEntry{
		EntryID:            uuid.NewString(),
		UserID:             userID,
		Date:               date,
		Income:             req.Income,
		IncomeDescription:  req.IncomeDescription,
		Expense:            req.Expense,
		ExpenseCategory:    req.ExpenseCategory,
		ExpenseDescription: req.ExpenseDescription,
		GoldGrams:          req.GoldGrams,
		SilverGrams:        req.SilverGrams,
		Notes:              req.Notes,
		AuditFields:        domain.NewAuditFields(userID, s.now()),
	}
	if err := validateEntry(&entry); err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogWarn(ctx, "Entry already exists for date",
				slog.String("user_id", userID),
				slog.String("date", req.Date))
			return nil, fmt.Errorf("an entry for %s already exists: %w", req.Date, err)
		}
		s.LogError(ctx, err, "Failed to save entry", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	s.LogInfo(ctx, "Entry created", slog.String("entry_id", entry.EntryID), slog.String("date", req.Date))
	return &entry, nil
}

// GetEntry retrieves one of userID's entries.
func (s *entryService) GetEntry(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, userID, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get entry", slog.String("entry_id", entryID))
		}
		return nil, fmt.Errorf("failed to get entry %s: %w", entryID, err)
	}
	return entry, nil
}

// ListEntriesByMonth lists userID's entries in a calendar month, oldest first.
func (s *entryService) ListEntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error) {
	if err := validateMonth(month); err != nil {
		return nil, err
	}
	entries, err := s.entryRepo.EntriesByMonth(ctx, userID, year, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries by month", slog.Int("year", year), slog.Int("month", month))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// ListEntriesByDateRange lists userID's entries between from and to inclusive, oldest first.
func (s *entryService) ListEntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error) {
	if from.After(to) {
		return nil, apperrors.InvalidArgumentf("fromDate %s is after toDate %s", from.Format(dto.DateLayout), to.Format(dto.DateLayout))
	}
	entries, err := s.entryRepo.EntriesByDateRange(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list entries by date range")
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry applies the non-nil fields of req to an existing entry.
func (s *entryService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateEntryRequest) (*domain.DailyEntry, error) {
	entry, err := s.GetEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.Income != nil {
		entry.Income = *req.Income
	}
	if req.IncomeDescription != nil {
		entry.IncomeDescription = *req.IncomeDescription
	}
	if req.Expense != nil {
		entry.Expense = *req.Expense
	}
	if req.ExpenseCategory != nil {
		category := *req.ExpenseCategory
		entry.ExpenseCategory = &category
	}
	if req.ExpenseDescription != nil {
		entry.ExpenseDescription = *req.ExpenseDescription
	}
	if req.GoldGrams != nil {
		entry.GoldGrams = *req.GoldGrams
	}
	if req.SilverGrams != nil {
		entry.SilverGrams = *req.SilverGrams
	}
	if req.Notes != nil {
		entry.Notes = *req.Notes
	}
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	entry.Touch(userID, s.now())
	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		s.LogError(ctx, err, "Failed to update entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry soft-deletes one of userID's entries.
func (s *entryService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	if err := s.entryRepo.MarkEntryDeleted(ctx, userID, entryID, s.now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete entry", slog.String("entry_id", entryID))
		}
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	s.LogInfo(ctx, "Entry deleted", slog.String("entry_id", entryID))
	return nil
}
