package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/portfel_tracker/internal/models"
	"github.com/SscSPs/portfel_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const goalColumns = `goal_id, user_id, year, month, income_goal, gold_goal, silver_goal, investment_goal,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxGoalRepository struct {
	BaseRepository
}

func newPgxGoalRepository(pool *pgxpool.Pool) portsrepo.GoalRepositoryFacade {
	return &PgxGoalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.GoalRepositoryFacade = (*PgxGoalRepository)(nil)

func scanGoal(row pgx.Row) (models.MonthlyGoal, error) {
	var m models.MonthlyGoal
	err := row.Scan(
		&m.GoalID,
		&m.UserID,
		&m.Year,
		&m.Month,
		&m.IncomeGoal,
		&m.GoldGoal,
		&m.SilverGoal,
		&m.InvestmentGoal,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// MonthlyGoal returns nil, nil when no goal is saved for the month.
func (r *PgxGoalRepository) MonthlyGoal(ctx context.Context, userID string, year, month int) (*domain.MonthlyGoal, error) {
	query := `SELECT ` + goalColumns + `
		FROM monthly_goals
		WHERE user_id = $1 AND year = $2 AND month = $3;`
	m, err := scanGoal(r.Pool.QueryRow(ctx, query, userID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find goal for %04d-%02d: %w", year, month, err)
	}
	goal := mapping.ToDomainMonthlyGoal(m)
	return &goal, nil
}

func (r *PgxGoalRepository) GoalsByYear(ctx context.Context, userID string, year int) ([]domain.MonthlyGoal, error) {
	query := `SELECT ` + goalColumns + `
		FROM monthly_goals
		WHERE user_id = $1 AND year = $2
		ORDER BY month ASC;`
	rows, err := r.Pool.Query(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	goals := []domain.MonthlyGoal{}
	for rows.Next() {
		m, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal row: %w", err)
		}
		goals = append(goals, mapping.ToDomainMonthlyGoal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal rows: %w", err)
	}
	return goals, nil
}

// UpsertMonthlyGoal keeps the existing goal_id and creation audit on conflict.
func (r *PgxGoalRepository) UpsertMonthlyGoal(ctx context.Context, goal domain.MonthlyGoal) (*domain.MonthlyGoal, error) {
	m := mapping.ToModelMonthlyGoal(goal)
	query := `
		INSERT INTO monthly_goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, year, month) DO UPDATE SET
			income_goal = EXCLUDED.income_goal,
			gold_goal = EXCLUDED.gold_goal,
			silver_goal = EXCLUDED.silver_goal,
			investment_goal = EXCLUDED.investment_goal,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + goalColumns + `;`
	saved, err := scanGoal(r.Pool.QueryRow(ctx, query,
		m.GoalID,
		m.UserID,
		m.Year,
		m.Month,
		m.IncomeGoal,
		m.GoldGoal,
		m.SilverGoal,
		m.InvestmentGoal,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert goal for %04d-%02d: %w", m.Year, m.Month, err)
	}
	result := mapping.ToDomainMonthlyGoal(saved)
	return &result, nil
}
