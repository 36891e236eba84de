// api/analytics/aggregate.go
package analytics

import (
	"math"

	"sitelens/api/models"
)

// round1 rounds to one decimal place. All exported ratios go through this
// so identical inputs always serialize to identical bytes.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Aggregate computes the period metrics for one window of events.
// priorVisitors is the set of visitor IDs seen before the window start for
// the same site; visitors present in it count as returning. A nil set
// classifies every visitor as new.
//
// An empty window returns the zero result with NoData set, so consumers
// can tell "no traffic" from "nothing computed".
func Aggregate(events []models.TrackingEvent, priorVisitors map[string]struct{}) models.PeriodStats {
	if len(events) == 0 {
		return models.PeriodStats{NoData: true}
	}

	sessionsByVisitor := BuildSessions(events)

	stats := models.PeriodStats{
		TotalVisitors: len(sessionsByVisitor),
	}

	var (
		bounced       int
		multiDuration float64 // summed duration of multi-event sessions, seconds
		multiSessions int
	)

	for visitorID, sessions := range sessionsByVisitor {
		stats.TotalSessions += len(sessions)
		if _, seen := priorVisitors[visitorID]; seen {
			stats.ReturningVisitors++
		}
		for _, session := range sessions {
			if session.Bounced() {
				bounced++
				continue
			}
			multiDuration += session.Duration().Seconds()
			multiSessions++
		}
	}
	stats.NewVisitors = stats.TotalVisitors - stats.ReturningVisitors

	for _, event := range events {
		if event.EventType == models.EventPageView {
			stats.TotalPageViews++
		}
	}

	if stats.TotalSessions > 0 {
		stats.BounceRate = round1(float64(bounced) / float64(stats.TotalSessions) * 100)
		stats.PagesPerVisit = round1(float64(stats.TotalPageViews) / float64(stats.TotalSessions))
	}
	// Single-event sessions carry no duration signal and are excluded from
	// the mean rather than averaged in as zeros.
	if multiSessions > 0 {
		stats.AvgSessionDuration = round1(multiDuration / float64(multiSessions))
	}

	return stats
}
