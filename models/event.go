// api/models/event.go
package models

import (
	"time"
)

// Event types accepted from the browser tracker.
const (
	EventPageView   = "pageview"
	EventPageExit   = "pageexit"
	EventEngagement = "engagement"
)

// TrackingEvent represents a single raw tracking event as emitted by the
// browser tracker and stored in the event log.
type TrackingEvent struct {
	EventID     string    `json:"eventId"`
	SiteID      string    `json:"siteId"`
	VisitorID   string    `json:"visitorId"`
	EventType   string    `json:"eventType"`
	Path        string    `json:"path"`
	Referrer    string    `json:"referrer"`
	UTMSource   string    `json:"utmSource,omitempty"`
	UTMMedium   string    `json:"utmMedium,omitempty"`
	UTMCampaign string    `json:"utmCampaign,omitempty"`
	TimeOnPage  float64   `json:"timeOnPage,omitempty"` // seconds
	IPAddress   string    `json:"ipAddress,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Valid reports whether the event carries the identifiers the pipeline
// requires. Events missing either ID are dropped at ingest and again at
// aggregation, never processed.
func (e TrackingEvent) Valid() bool {
	return e.SiteID != "" && e.VisitorID != ""
}
