// api/handlers/track_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"sitelens/api/models"
	"sitelens/api/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TrackHandlers struct {
	EventStore *store.EventStore
}

func NewTrackHandlers(s *store.EventStore) *TrackHandlers {
	return &TrackHandlers{
		EventStore: s,
	}
}

// TrackEvents ingests a batch of tracker events. Events missing a site or
// visitor ID are dropped here; they never reach the event log.
func (h *TrackHandlers) TrackEvents(c *gin.Context) {
	var incomingEvents []models.TrackingEvent
	if err := c.ShouldBindJSON(&incomingEvents); err != nil {
		log.Printf("Error binding incoming tracking JSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if len(incomingEvents) == 0 {
		c.Status(http.StatusOK)
		return
	}

	var eventsToInsert []models.TrackingEvent
	var dropped int

	for _, event := range incomingEvents {
		if !event.Valid() {
			dropped++
			continue
		}
		event.EventID = uuid.New().String()
		event.IPAddress = c.ClientIP()
		if event.CreatedAt.IsZero() {
			event.CreatedAt = time.Now().UTC()
		}
		eventsToInsert = append(eventsToInsert, event)
	}

	if dropped > 0 {
		log.Printf("Dropped %d tracking events missing site or visitor IDs", dropped)
	}
	if len(eventsToInsert) == 0 {
		c.Status(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	if err := h.EventStore.InsertTrackingEvents(ctx, eventsToInsert); err != nil {
		log.Printf("Error inserting tracking events into ClickHouse: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record tracking events"})
		return
	}

	c.Status(http.StatusOK)
}
