package services

import (
	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/portfel_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Analytics = NewAnalyticsService(
		repos.AnalyticsReader(),
		WithAnnualConcurrency(cfg.AnnualAnalyticsConcurrency),
	)
	container.Entry = NewEntryService(repos.EntryRepo)
	container.Investment = NewInvestmentService(repos.InvestmentRepo)
	container.Goal = NewGoalService(repos.GoalRepo, GoalDefaultsFromConfig(cfg))
	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.User = NewUserService(repos.UserRepo, WithWelcomeNotifications(container.Notification))
	container.Token = NewTokenService(cfg)

	return container
}

// GoalDefaultsFromConfig reads the default monthly targets from cfg.
func GoalDefaultsFromConfig(cfg *config.Config) domain.GoalDefaults {
	return domain.GoalDefaults{
		IncomeGoal:     cfg.DefaultMonthlyIncomeGoal,
		GoldGoal:       cfg.DefaultMonthlyGoldGoal,
		SilverGoal:     cfg.DefaultMonthlySilverGoal,
		InvestmentGoal: cfg.DefaultMonthlyInvestmentGoal,
	}
}
