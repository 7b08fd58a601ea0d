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

const investmentColumns = `investment_id, user_id, investment_type, name, amount, quantity, purchase_date,
	current_value, notes, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvestmentRepository struct {
	BaseRepository
}

func newPgxInvestmentRepository(pool *pgxpool.Pool) portsrepo.InvestmentRepositoryFacade {
	return &PgxInvestmentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvestmentRepositoryFacade = (*PgxInvestmentRepository)(nil)

func scanInvestment(row pgx.Row) (models.Investment, error) {
	var m models.Investment
	err := row.Scan(
		&m.InvestmentID,
		&m.UserID,
		&m.InvestmentType,
		&m.Name,
		&m.Amount,
		&m.Quantity,
		&m.PurchaseDate,
		&m.CurrentValue,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// InvestmentsByUser retrieves every live investment of userID, most recent purchase first.
func (r *PgxInvestmentRepository) InvestmentsByUser(ctx context.Context, userID string) ([]domain.Investment, error) {
	query := `SELECT ` + investmentColumns + `
		FROM investments
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY purchase_date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query investments: %w", err)
	}
	defer rows.Close()

	modelInvestments := []models.Investment{}
	for rows.Next() {
		m, err := scanInvestment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan investment row: %w", err)
		}
		modelInvestments = append(modelInvestments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating investment rows: %w", err)
	}
	return mapping.ToDomainInvestmentSlice(modelInvestments), nil
}

func (r *PgxInvestmentRepository) FindInvestmentByID(ctx context.Context, userID, investmentID string) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + `
		FROM investments
		WHERE investment_id = $1 AND user_id = $2 AND deleted_at IS NULL;`
	m, err := scanInvestment(r.Pool.QueryRow(ctx, query, investmentID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find investment %s: %w", investmentID, err)
	}
	inv := mapping.ToDomainInvestment(m)
	return &inv, nil
}

func (r *PgxInvestmentRepository) SaveInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)
	query := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`
	_, err := r.Pool.Exec(ctx, query,
		m.InvestmentID,
		m.UserID,
		m.InvestmentType,
		m.Name,
		m.Amount,
		m.Quantity,
		m.PurchaseDate,
		m.CurrentValue,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: investment with ID %s already exists", apperrors.ErrDuplicate, m.InvestmentID)
		}
		return fmt.Errorf("failed to save investment %s: %w", m.InvestmentID, err)
	}
	return nil
}

func (r *PgxInvestmentRepository) UpdateInvestment(ctx context.Context, investment domain.Investment) error {
	m := mapping.ToModelInvestment(investment)
	query := `
		UPDATE investments
		SET investment_type = $1, name = $2, amount = $3, quantity = $4, purchase_date = $5,
			current_value = $6, notes = $7, last_updated_at = $8, last_updated_by = $9
		WHERE investment_id = $10 AND user_id = $11 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query,
		m.InvestmentType,
		m.Name,
		m.Amount,
		m.Quantity,
		m.PurchaseDate,
		m.CurrentValue,
		m.Notes,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.InvestmentID,
		m.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update investment %s: %w", m.InvestmentID, err)
	}
	return requireRowsAffected(tag, "investment")
}

func (r *PgxInvestmentRepository) MarkInvestmentDeleted(ctx context.Context, userID, investmentID string, deletedAt time.Time) error {
	query := `
		UPDATE investments
		SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE investment_id = $3 AND user_id = $2 AND deleted_at IS NULL;`
	tag, err := r.Pool.Exec(ctx, query, deletedAt, userID, investmentID)
	if err != nil {
		return fmt.Errorf("failed to mark investment %s deleted: %w", investmentID, err)
	}
	return requireRowsAffected(tag, "investment")
}
