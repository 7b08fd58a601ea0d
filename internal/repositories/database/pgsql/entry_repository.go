package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfel_tracker/internal/models"
	"github.com/SscSPs/portfel_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const entryColumns = `entry_id, user_id, entry_date, income, income_description, expense, expense_category,
	expense_description, gold_grams, silver_grams, notes, created_at, created_by, last_updated_at, last_updated_by`

// PgxEntryRepository stores daily entries in the daily_entries table.
type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

func scanEntry(row pgx.Row) (models.DailyEntry, error) {
	var m models.DailyEntry
	err := row.Scan(
		&m.EntryID,
		&m.UserID,
		&m.EntryDate,
		&m.Income,
		&m.IncomeDescription,
		&m.Expense,
		&m.ExpenseCategory,
		&m.ExpenseDescription,
		&m.GoldGrams,
		&m.SilverGrams,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.DailyEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	modelEntries := []models.DailyEntry{}
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return mapping.ToDomainDailyEntrySlice(modelEntries), nil
}

// EntriesByMonth retrieves the entries dated in [first day of month, first day of next month).
func (r *PgxEntryRepository) EntriesByMonth(ctx context.Context, userID string, year, month int) ([]domain.DailyEntry, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	query := `SELECT ` + entryColumns + `
		FROM daily_entries
		WHERE user_id = $1 AND deleted_at IS NULL AND entry_date >= $2 AND entry_date < $3
		ORDER BY entry_date ASC;`
	return r.queryEntries(ctx, query, userID, start, end)
}

// EntriesByDateRange retrieves the entries dated between from and to, both inclusive.
func (r *PgxEntryRepository) EntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM daily_entries
		WHERE user_id = $1 AND deleted_at IS NULL AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date ASC;`
	return r.queryEntries(ctx, query, userID, from, to)
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, userID, entryID string) (*domain.DailyEntry, error) {
	query := `SELECT ` + entryColumns + `
		FROM daily_entries
		WHERE entry_id = $1 AND user_id = $2 AND deleted_at IS NULL;`
	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	entry := mapping.ToDomainDailyEntry(m)
	return &entry, nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.DailyEntry) error {
	m := mapping.ToModelDailyEntry(entry)
	query := `
		INSERT INTO daily_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID,
		m.UserID,
		m.EntryDate,
		m.Income,
		m.IncomeDescription,
		m.Expense,
		m.ExpenseCategory,
		m.ExpenseDescription,
		m.GoldGrams,
		m.SilverGrams,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: entry for %s already exists", apperrors.ErrDuplicate, m.EntryDate.Format(time.DateOnly))
		}
		return fmt.Errorf("failed to save entry %s: %w", m.EntryID, err)
	}
	return nil
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry domain.DailyEntry) error {
	m := mapping.ToModelDailyEntry(entry)
	query := `
		UPDATE daily_entries
		SET income = $1, income_description = $2, expense = $3, expense_category = $4,
			expense_description = $5, gold_grams = $6, silver_grams = $7, notes = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE entry_id = $11 AND user_id = $12 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query,
		m.Income,
		m.IncomeDescription,
		m.Expense,
		m.ExpenseCategory,
		m.ExpenseDescription,
		m.GoldGrams,
		m.SilverGrams,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.EntryID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", m.EntryID, err)
	}
	return requireRowsAffected(tag, "entry")
}

func (r *PgxEntryRepository) MarkEntryDeleted(ctx context.Context, userID, entryID string, deletedAt time.Time) error {
	query := `
		UPDATE daily_entries
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE entry_id = $3 AND user_id = $2 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, deletedAt, userID, entryID)
	if err != nil {
		return fmt.Errorf("failed to mark entry %s deleted: %w", entryID, err)
	}
	return requireRowsAffected(tag, "entry")
}
