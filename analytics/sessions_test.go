package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelens/api/models"
)

var sessionBase = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func eventAt(visitorID string, minutes int) models.TrackingEvent {
	return models.TrackingEvent{
		EventID:   fmt.Sprintf("%s-%d", visitorID, minutes),
		SiteID:    "site-1",
		VisitorID: visitorID,
		EventType: models.EventPageView,
		Path:      "/home",
		CreatedAt: sessionBase.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestBuildSessionsEmptyInput(t *testing.T) {
	sessions := BuildSessions(nil)
	assert.Empty(t, sessions)
}

func TestBuildSessionsSingleEventIsOneSession(t *testing.T) {
	sessions := BuildSessions([]models.TrackingEvent{eventAt("v1", 0)})

	require.Len(t, sessions["v1"], 1)
	session := sessions["v1"][0]
	assert.Len(t, session.Events, 1)
	assert.True(t, session.Bounced())
	assert.Equal(t, session.StartTime, session.EndTime)
}

func TestBuildSessionsGapRule(t *testing.T) {
	// A: events at 0, 5 and 40 minutes. The 35-minute gap after t=5 cuts a
	// new session. B: one event.
	events := []models.TrackingEvent{
		eventAt("a", 40),
		eventAt("a", 0),
		eventAt("b", 0),
		eventAt("a", 5),
	}

	sessions := BuildSessions(events)

	require.Len(t, sessions["a"], 2)
	first, second := sessions["a"][0], sessions["a"][1]
	assert.Equal(t, sessionBase, first.StartTime)
	assert.Equal(t, sessionBase.Add(5*time.Minute), first.EndTime)
	assert.Len(t, first.Events, 2)
	assert.Equal(t, sessionBase.Add(40*time.Minute), second.StartTime)
	assert.True(t, second.Bounced())

	require.Len(t, sessions["b"], 1)
	assert.True(t, sessions["b"][0].Bounced())
}

func TestBuildSessionsExactThresholdStaysOpen(t *testing.T) {
	// A gap of exactly 30 minutes does not close the session; 31 does.
	same := BuildSessions([]models.TrackingEvent{eventAt("v", 0), eventAt("v", 30)})
	require.Len(t, same["v"], 1)
	assert.Len(t, same["v"][0].Events, 2)

	split := BuildSessions([]models.TrackingEvent{eventAt("v", 0), eventAt("v", 31)})
	assert.Len(t, split["v"], 2)
}

func TestBuildSessionsGapMeasuredFromSessionEnd(t *testing.T) {
	// 0 -> 25 -> 50: each inter-arrival gap is 25 minutes, so one session
	// even though it spans 50 minutes overall.
	sessions := BuildSessions([]models.TrackingEvent{
		eventAt("v", 50),
		eventAt("v", 0),
		eventAt("v", 25),
	})

	require.Len(t, sessions["v"], 1)
	session := sessions["v"][0]
	assert.Len(t, session.Events, 3)
	assert.Equal(t, 50*time.Minute, session.Duration())
}

func TestBuildSessionsIdenticalTimestampsShareSession(t *testing.T) {
	sessions := BuildSessions([]models.TrackingEvent{eventAt("v", 10), eventAt("v", 10)})

	require.Len(t, sessions["v"], 1)
	assert.Len(t, sessions["v"][0].Events, 2)
}

func TestBuildSessionsNeverMergesVisitors(t *testing.T) {
	sessions := BuildSessions([]models.TrackingEvent{eventAt("a", 0), eventAt("b", 1)})

	assert.Len(t, sessions, 2)
	assert.Len(t, sessions["a"], 1)
	assert.Len(t, sessions["b"], 1)
}

func TestBuildSessionsDropsNoEvents(t *testing.T) {
	var events []models.TrackingEvent
	for i := 0; i < 200; i += 7 {
		events = append(events, eventAt("v", i))
	}

	sessions := BuildSessions(events)

	total := 0
	for _, session := range sessions["v"] {
		total += len(session.Events)
	}
	assert.Equal(t, len(events), total)
}
