// api/analytics/exitpages.go
package analytics

import (
	"math"
	"sort"

	"sitelens/api/models"
)

const maxExitPages = 10

// ExitPages ranks pages by how often visitors leave the site from them.
// A visitor's exit page is the path of their chronologically last event in
// the window; visits count every event on the path, not just exits.
// Returns at most the top 10 paths by exit rate.
func ExitPages(events []models.TrackingEvent) []models.ExitPageStat {
	if len(events) == 0 {
		return nil
	}

	exits := make(map[string]int)
	for _, visitorEvents := range groupByVisitor(events) {
		last := visitorEvents[len(visitorEvents)-1]
		exits[last.Path]++
	}

	visits := make(map[string]int)
	timeOnPage := make(map[string]float64)
	for _, event := range events {
		visits[event.Path]++
		timeOnPage[event.Path] += event.TimeOnPage
	}

	results := make([]models.ExitPageStat, 0, len(visits))
	for path, count := range visits {
		stat := models.ExitPageStat{
			URL:           path,
			Visits:        count,
			AvgTimeOnPage: int(math.Round(timeOnPage[path] / float64(count))),
		}
		if count > 0 {
			stat.ExitRate = round1(float64(exits[path]) / float64(count) * 100)
		}
		results = append(results, stat)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ExitRate == results[j].ExitRate {
			if results[i].Visits == results[j].Visits {
				return results[i].URL < results[j].URL
			}
			return results[i].Visits > results[j].Visits
		}
		return results[i].ExitRate > results[j].ExitRate
	})

	if len(results) > maxExitPages {
		results = results[:maxExitPages]
	}
	return results
}
