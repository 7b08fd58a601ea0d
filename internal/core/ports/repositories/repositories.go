package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	EntryRepo        EntryRepositoryFacade
	InvestmentRepo   InvestmentRepositoryFacade
	GoalRepo         GoalRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	UserRepo         UserRepositoryFacade
}

// AnalyticsReader composes the repositories the analytics service reads from.
func (p RepositoryProvider) AnalyticsReader() AnalyticsDataReader {
	return NewAnalyticsDataReader(p.EntryRepo, p.InvestmentRepo, p.GoalRepo)
}
