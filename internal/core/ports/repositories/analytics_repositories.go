package repositories

// AnalyticsDataReader is the read-only data access consumed by the analytics service.
// It is satisfied by composing the entry, investment and goal readers.
type AnalyticsDataReader interface {
	EntryReader
	InvestmentReader
	GoalReader
}

type analyticsDataReader struct {
	EntryReader
	InvestmentReader
	GoalReader
}

// NewAnalyticsDataReader composes separate readers into one AnalyticsDataReader.
func NewAnalyticsDataReader(entries EntryReader, investments InvestmentReader, goals GoalReader) AnalyticsDataReader {
	return analyticsDataReader{EntryReader: entries, InvestmentReader: investments, GoalReader: goals}
}
