// api/models/stats.go
package models

import "time"

// Session is a contiguous run of one visitor's events with no internal gap
// exceeding the inactivity threshold. Sessions are derived per request and
// never persisted.
type Session struct {
	VisitorID string          `json:"visitorId"`
	Events    []TrackingEvent `json:"events"`
	StartTime time.Time       `json:"startTime"`
	EndTime   time.Time       `json:"endTime"`
}

// Duration returns the session length.
func (s Session) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Bounced reports whether the session contains exactly one event.
func (s Session) Bounced() bool {
	return len(s.Events) == 1
}

// PeriodStats holds the aggregate metrics for one time window.
// NoData distinguishes "zero traffic" from "nothing computed yet".
type PeriodStats struct {
	TotalVisitors      int     `json:"totalVisitors"`
	NewVisitors        int     `json:"newVisitors"`
	ReturningVisitors  int     `json:"returningVisitors"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"` // seconds
	PagesPerVisit      float64 `json:"pagesPerVisit"`
	TotalPageViews     int     `json:"totalPageViews"`
	TotalSessions      int     `json:"totalSessions"`
	NoData             bool    `json:"noData"`
}

// Trend holds period-over-period percentage changes per metric.
type Trend struct {
	TotalVisitors      float64 `json:"totalVisitors"`
	NewVisitors        float64 `json:"newVisitors"`
	ReturningVisitors  float64 `json:"returningVisitors"`
	BounceRate         float64 `json:"bounceRate"`
	AvgSessionDuration float64 `json:"avgSessionDuration"`
	PagesPerVisit      float64 `json:"pagesPerVisit"`
}

// ExitPageStat ranks a page by how often visitors leave the site from it.
type ExitPageStat struct {
	URL           string  `json:"url"`
	ExitRate      float64 `json:"exitRate"`
	Visits        int     `json:"visits"`
	AvgTimeOnPage int     `json:"avgTimeOnPage"` // seconds
}

// TrafficSourceStat rolls up visitors by acquisition source.
type TrafficSourceStat struct {
	Source     string  `json:"source"`
	Visitors   int     `json:"visitors"`
	Visits     int     `json:"visits"`
	BounceRate float64 `json:"bounceRate"`
}

// FunnelStage is one step of the conversion funnel.
type FunnelStage struct {
	Stage        string  `json:"stage"`
	Visitors     int     `json:"visitors"`
	DropOffCount int     `json:"dropOffCount"`
	DropOffRate  float64 `json:"dropOffRate"`
}

// DashboardStats is the merged response for one (site, range) query.
type DashboardStats struct {
	Current          PeriodStats         `json:"current"`
	Trends           Trend               `json:"trends"`
	ExitPages        []ExitPageStat      `json:"exitPages"`
	TrafficSources   []TrafficSourceStat `json:"trafficSources"`
	ConversionFunnel []FunnelStage       `json:"conversionFunnel"`
	RealData         bool                `json:"realData"`
	HistoryDegraded  bool                `json:"historyDegraded,omitempty"`
	LastUpdated      time.Time           `json:"lastUpdated"`
}
