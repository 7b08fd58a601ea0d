package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
)

// EntryReader defines the range queries over a user's daily entries.
// Implementations only return rows that belong to userID and are not soft-deleted.
type EntryReader interface {
	// EntriesByMonth retrieves the entries dated within the given calendar month.
	EntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error)

	// EntriesByDateRange retrieves the entries dated between from and to, both inclusive.
	EntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error)
}

// EntryLookup finds single entries.
type EntryLookup interface {
	// FindEntryByID retrieves an entry owned by userID. Returns apperrors.ErrNotFound if absent.
	FindEntryByID(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error)
}

// EntryWriter defines write operations for daily entries.
type EntryWriter interface {
	// SaveEntry persists a new entry. Returns apperrors.ErrDuplicate if the user already has an entry for that date.
	SaveEntry(ctx context.Context, entry domain.DailyEntry) error

	// UpdateEntry updates an existing entry's details.
	UpdateEntry(ctx context.Context, entry domain.DailyEntry) error

	// MarkEntryDeleted soft-deletes an entry.
	MarkEntryDeleted(ctx context.Context, userID, entryID string, deletedAt time.Time) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces.
type EntryRepositoryFacade interface {
	EntryReader
	EntryLookup
	EntryWriter
}
