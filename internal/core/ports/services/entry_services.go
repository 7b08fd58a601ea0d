package services

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	"github.com/SscSPs/portfel_tracker/internal/dto"
)

// EntryReaderSvc defines read operations for daily entries.
type EntryReaderSvc interface {
	GetEntry(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error)
	ListEntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error)
	ListEntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error)
}

// EntryWriterSvc defines write operations for daily entries.
type EntryWriterSvc interface {
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*domain.DailyEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateEntryRequest) (*domain.DailyEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
}

// EntrySvcFacade combines all entry-related service interfaces.
type EntrySvcFacade interface {
	EntryReaderSvc
	EntryWriterSvc
}
