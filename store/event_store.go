// api/store/event_store.go
package store

import (
	"context"
	"fmt"
	"log"
	"time"

	"sitelens/api/database"
	"sitelens/api/models"
)

// EventStore gives the analytics engine access to the raw event log in
// ClickHouse. It satisfies analytics.EventSource.
type EventStore struct {
	DB *database.ClickHouseClient
}

func NewEventStore(chClient *database.ClickHouseClient) *EventStore {
	return &EventStore{
		DB: chClient,
	}
}

func (s *EventStore) InsertTrackingEvents(ctx context.Context, events []models.TrackingEvent) error {
	if len(events) == 0 {
		return nil
	}

	// Column names and order must exactly match the tracking_events table.
	batch, err := s.DB.Conn.PrepareBatch(ctx, `
		INSERT INTO tracking_events (
			event_id, site_id, visitor_id, event_type, path, referrer,
			utm_source, utm_medium, utm_campaign, time_on_page, ip_address, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare batch insert: %w", err)
	}

	for _, event := range events {
		err := batch.Append(
			event.EventID,
			event.SiteID,
			event.VisitorID,
			event.EventType,
			event.Path,
			event.Referrer,
			event.UTMSource,
			event.UTMMedium,
			event.UTMCampaign,
			event.TimeOnPage,
			event.IPAddress,
			event.CreatedAt,
		)
		if err != nil {
			log.Printf("Error appending event to batch (EventID: %s): %v", event.EventID, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Successfully inserted %d tracking events.", len(events))
	return nil
}

// QueryEvents returns all events for a site in [start, end). Ordering is
// not guaranteed; the analytics engine sorts per visitor itself.
func (s *EventStore) QueryEvents(ctx context.Context, siteID string, start, end time.Time) ([]models.TrackingEvent, error) {
	query := `
		SELECT event_id, site_id, visitor_id, event_type, path, referrer,
		       utm_source, utm_medium, utm_campaign, time_on_page, ip_address, created_at
		FROM tracking_events
		WHERE site_id = ? AND created_at >= ? AND created_at < ?
	`
	rows, err := s.DB.Conn.Query(ctx, query, siteID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for site %s: %w", siteID, err)
	}
	defer rows.Close()

	var events []models.TrackingEvent
	for rows.Next() {
		var event models.TrackingEvent
		if err := rows.Scan(
			&event.EventID,
			&event.SiteID,
			&event.VisitorID,
			&event.EventType,
			&event.Path,
			&event.Referrer,
			&event.UTMSource,
			&event.UTMMedium,
			&event.UTMCampaign,
			&event.TimeOnPage,
			&event.IPAddress,
			&event.CreatedAt,
		); err != nil {
			log.Printf("Error scanning tracking event row: %v", err)
			continue
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during event window query: %w", err)
	}

	return events, nil
}

// QueryVisitorsBefore returns the set of visitor IDs with at least one
// event strictly before cutoff. Used for new/returning classification;
// min(created_at) per visitor keeps this an indexed lookup rather than a
// full-history rescan.
func (s *EventStore) QueryVisitorsBefore(ctx context.Context, siteID string, cutoff time.Time) (map[string]struct{}, error) {
	query := `
		SELECT visitor_id
		FROM tracking_events
		WHERE site_id = ?
		GROUP BY visitor_id
		HAVING min(created_at) < ?
	`
	rows, err := s.DB.Conn.Query(ctx, query, siteID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query historical visitors for site %s: %w", siteID, err)
	}
	defer rows.Close()

	visitors := make(map[string]struct{})
	for rows.Next() {
		var visitorID string
		if err := rows.Scan(&visitorID); err != nil {
			log.Printf("Error scanning historical visitor row: %v", err)
			continue
		}
		visitors[visitorID] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row error during historical visitor query: %w", err)
	}

	return visitors, nil
}
