package pgsql

import (
	"errors"
	"fmt"

	"github.com/SscSPs/portfel_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// requireRowsAffected turns an UPDATE that matched nothing into ErrNotFound.
func requireRowsAffected(tag pgconn.CommandTag, what string) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s not found or already deleted: %w", what, apperrors.ErrNotFound)
	}
	return nil
}
