// api/analytics/engine.go
package analytics

import (
	"context"
	"fmt"
	"log"
	"time"

	"sitelens/api/models"
)

// EventSource is the external event log the engine reads from. Results of
// QueryEvents are not guaranteed sorted; the engine sorts. The window is
// start-inclusive, end-exclusive.
type EventSource interface {
	QueryEvents(ctx context.Context, siteID string, start, end time.Time) ([]models.TrackingEvent, error)
	// QueryVisitorsBefore returns the distinct visitor IDs with at least
	// one event strictly before cutoff, for the same site.
	QueryVisitorsBefore(ctx context.Context, siteID string, cutoff time.Time) (map[string]struct{}, error)
}

// ResultCache memoizes dashboard results per (site, range) key. Purely an
// optimization: the engine behaves identically with a nil cache.
type ResultCache interface {
	Get(key string) (*models.DashboardStats, bool)
	Set(key string, stats *models.DashboardStats)
}

// Engine derives dashboard statistics on demand from the event log. It
// holds no mutable aggregation state, so one Engine serves concurrent
// requests.
type Engine struct {
	source EventSource
	cache  ResultCache
}

// NewEngine wires an engine to its event source. cache may be nil.
func NewEngine(source EventSource, cache ResultCache) *Engine {
	return &Engine{source: source, cache: cache}
}

// dropInvalid filters out events missing site or visitor IDs. Such events
// are treated as not-an-event rather than failing the pipeline.
func dropInvalid(events []models.TrackingEvent) []models.TrackingEvent {
	valid := events[:0:0]
	for _, event := range events {
		if event.Valid() {
			valid = append(valid, event)
		}
	}
	return valid
}

// visitorHistory wraps the historical-visitor lookup with the documented
// degradation: if the log cannot answer, every visitor counts as new
// instead of failing the whole computation.
func (e *Engine) visitorHistory(ctx context.Context, siteID string, cutoff time.Time) (map[string]struct{}, bool) {
	visitors, err := e.source.QueryVisitorsBefore(ctx, siteID, cutoff)
	if err != nil {
		log.Printf("Historical visitor lookup failed for site %s, treating all visitors as new: %v", siteID, err)
		return nil, true
	}
	return visitors, false
}

// ComputeStats computes the full dashboard for one site and symbolic
// range: current period stats, trends against the preceding window of the
// same length, exit pages, traffic sources and the conversion funnel.
//
// Only a failing current-window query is an error. Failures of the
// previous-window or history lookups degrade: neutral trends, all-new
// visitors, HistoryDegraded set.
func (e *Engine) ComputeStats(ctx context.Context, siteID string, rng Range) (*models.DashboardStats, error) {
	cacheKey := siteID + ":" + string(rng)
	if e.cache != nil {
		if cached, ok := e.cache.Get(cacheKey); ok {
			return cached, nil
		}
	}

	start, end := rng.Window(time.Now())
	prevStart := start.Add(-rng.Duration())

	events, err := e.source.QueryEvents(ctx, siteID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for site %s: %w", siteID, err)
	}
	events = dropInvalid(events)

	priorVisitors, degraded := e.visitorHistory(ctx, siteID, start)
	current := Aggregate(events, priorVisitors)

	previous := models.PeriodStats{NoData: true}
	prevEvents, err := e.source.QueryEvents(ctx, siteID, prevStart, start)
	if err != nil {
		log.Printf("Previous period query failed for site %s, reporting neutral trends: %v", siteID, err)
	} else if len(prevEvents) > 0 {
		prevPrior, prevDegraded := e.visitorHistory(ctx, siteID, prevStart)
		degraded = degraded || prevDegraded
		previous = Aggregate(dropInvalid(prevEvents), prevPrior)
	}

	stats := &models.DashboardStats{
		Current:          current,
		Trends:           ComputeTrends(current, previous),
		ExitPages:        ExitPages(events),
		TrafficSources:   TrafficSources(events),
		ConversionFunnel: ConversionFunnel(events),
		RealData:         !current.NoData,
		HistoryDegraded:  degraded,
		LastUpdated:      end,
	}

	if e.cache != nil {
		e.cache.Set(cacheKey, stats)
	}
	return stats, nil
}
