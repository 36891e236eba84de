// api/analytics/sessions.go
package analytics

import (
	"sort"
	"time"

	"sitelens/api/models"
)

// SessionGap is the inactivity threshold between two events of the same
// visitor. A gap strictly greater than this closes the session.
const SessionGap = 30 * time.Minute

// groupByVisitor partitions events per visitor and sorts each group by
// created_at ascending. Ties are broken by event ID so repeated runs over
// the same data produce the same ordering.
func groupByVisitor(events []models.TrackingEvent) map[string][]models.TrackingEvent {
	grouped := make(map[string][]models.TrackingEvent)
	for _, event := range events {
		grouped[event.VisitorID] = append(grouped[event.VisitorID], event)
	}
	for _, visitorEvents := range grouped {
		sort.SliceStable(visitorEvents, func(i, j int) bool {
			if visitorEvents[i].CreatedAt.Equal(visitorEvents[j].CreatedAt) {
				return visitorEvents[i].EventID < visitorEvents[j].EventID
			}
			return visitorEvents[i].CreatedAt.Before(visitorEvents[j].CreatedAt)
		})
	}
	return grouped
}

// foldSessions walks one visitor's sorted events and cuts a new session
// whenever the gap to the end of the open session exceeds SessionGap.
func foldSessions(visitorID string, sorted []models.TrackingEvent) []models.Session {
	if len(sorted) == 0 {
		return nil
	}

	sessions := make([]models.Session, 0, 1)
	current := models.Session{
		VisitorID: visitorID,
		Events:    []models.TrackingEvent{sorted[0]},
		StartTime: sorted[0].CreatedAt,
		EndTime:   sorted[0].CreatedAt,
	}

	for _, event := range sorted[1:] {
		if event.CreatedAt.Sub(current.EndTime) > SessionGap {
			sessions = append(sessions, current)
			current = models.Session{
				VisitorID: visitorID,
				Events:    []models.TrackingEvent{event},
				StartTime: event.CreatedAt,
				EndTime:   event.CreatedAt,
			}
			continue
		}
		current.Events = append(current.Events, event)
		current.EndTime = event.CreatedAt
	}

	return append(sessions, current)
}

// BuildSessions groups raw events into per-visitor sessions using the
// 30-minute inactivity rule. Events may arrive in any order; no event is
// ever dropped. An empty input yields an empty map.
func BuildSessions(events []models.TrackingEvent) map[string][]models.Session {
	grouped := groupByVisitor(events)

	sessions := make(map[string][]models.Session, len(grouped))
	for visitorID, visitorEvents := range grouped {
		sessions[visitorID] = foldSessions(visitorID, visitorEvents)
	}
	return sessions
}
