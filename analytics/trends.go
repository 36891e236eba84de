// api/analytics/trends.go
package analytics

import (
	"sitelens/api/models"
)

// percentChange computes the period-over-period delta for one metric.
// Growth from zero reports a fixed +100% instead of an infinite ratio;
// zero-to-zero is flat.
func percentChange(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return round1((current - previous) / previous * 100)
}

// ComputeTrends diffs the current period against the immediately preceding
// one. A previous period with no data yields the all-zero neutral trend;
// absence of history is not an error.
func ComputeTrends(current, previous models.PeriodStats) models.Trend {
	if previous.NoData {
		return models.Trend{}
	}

	return models.Trend{
		TotalVisitors:      percentChange(float64(current.TotalVisitors), float64(previous.TotalVisitors)),
		NewVisitors:        percentChange(float64(current.NewVisitors), float64(previous.NewVisitors)),
		ReturningVisitors:  percentChange(float64(current.ReturningVisitors), float64(previous.ReturningVisitors)),
		BounceRate:         percentChange(current.BounceRate, previous.BounceRate),
		AvgSessionDuration: percentChange(current.AvgSessionDuration, previous.AvgSessionDuration),
		PagesPerVisit:      percentChange(current.PagesPerVisit, previous.PagesPerVisit),
	}
}
