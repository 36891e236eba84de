// api/analytics/sources.go
package analytics

import (
	"net/url"
	"sort"
	"strings"

	"sitelens/api/models"
)

// directLabel is the catch-all source for visits with no referrer and no
// UTM tagging. Trackers also send it literally.
const directLabel = "direct"

// knownSources maps well-known marketing domains to display names. Matched
// by substring against the lowercased raw source.
var knownSources = []struct {
	fragment string
	label    string
}{
	{"google", "Google"},
	{"facebook", "Facebook"},
	{"instagram", "Instagram"},
	{"twitter", "Twitter"},
	{"linkedin", "LinkedIn"},
}

// normalizeSource reduces a raw utm_source or referrer value to a display
// label: known marketing domains get their canonical name, URL referrers
// are cut down to the bare hostname, anything else passes through.
func normalizeSource(raw string) string {
	if raw == "" || strings.EqualFold(raw, directLabel) {
		return directLabel
	}

	lowered := strings.ToLower(raw)
	for _, known := range knownSources {
		if strings.Contains(lowered, known.fragment) {
			return known.label
		}
	}

	if strings.HasPrefix(lowered, "http://") || strings.HasPrefix(lowered, "https://") {
		if parsed, err := url.Parse(raw); err == nil && parsed.Hostname() != "" {
			return strings.TrimPrefix(parsed.Hostname(), "www.")
		}
	}

	return raw
}

// sourceKey picks the attribution key for one event: utm_source wins over
// the referrer, and nothing at all means a direct visit.
func sourceKey(event models.TrackingEvent) string {
	if event.UTMSource != "" {
		return normalizeSource(event.UTMSource)
	}
	return normalizeSource(event.Referrer)
}

// TrafficSources rolls events up by acquisition source. A visitor's bounce
// status is site-wide for the window (total event count of one), not
// per-source. Sorted by distinct visitor count descending.
func TrafficSources(events []models.TrackingEvent) []models.TrafficSourceStat {
	if len(events) == 0 {
		return nil
	}

	eventsPerVisitor := make(map[string]int)
	for _, event := range events {
		eventsPerVisitor[event.VisitorID]++
	}

	type sourceAccum struct {
		visitors map[string]struct{}
		visits   int
	}
	accum := make(map[string]*sourceAccum)
	for _, event := range events {
		key := sourceKey(event)
		entry, ok := accum[key]
		if !ok {
			entry = &sourceAccum{visitors: make(map[string]struct{})}
			accum[key] = entry
		}
		entry.visitors[event.VisitorID] = struct{}{}
		entry.visits++
	}

	results := make([]models.TrafficSourceStat, 0, len(accum))
	for source, entry := range accum {
		stat := models.TrafficSourceStat{
			Source:   source,
			Visitors: len(entry.visitors),
			Visits:   entry.visits,
		}
		var bounced int
		for visitorID := range entry.visitors {
			if eventsPerVisitor[visitorID] == 1 {
				bounced++
			}
		}
		if stat.Visitors > 0 {
			stat.BounceRate = round1(float64(bounced) / float64(stat.Visitors) * 100)
		}
		results = append(results, stat)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Visitors == results[j].Visitors {
			return results[i].Source < results[j].Source
		}
		return results[i].Visitors > results[j].Visitors
	})

	return results
}
