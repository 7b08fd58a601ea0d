package pgsql

import (
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		EntryRepo:        newPgxEntryRepository(dbPool),
		InvestmentRepo:   newPgxInvestmentRepository(dbPool),
		GoalRepo:         newPgxGoalRepository(dbPool),
		NotificationRepo: newPgxNotificationRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
