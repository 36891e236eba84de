// api/handlers/stats_handlers.go
package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"sitelens/api/analytics"

	"github.com/gin-gonic/gin"
)

type StatsHandlers struct {
	Engine *analytics.Engine
}

func NewStatsHandlers(engine *analytics.Engine) *StatsHandlers {
	return &StatsHandlers{
		Engine: engine,
	}
}

// GetDashboard computes the full dashboard for one site and symbolic
// range (24h, 7d or 30d; defaults to 24h).
func (h *StatsHandlers) GetDashboard(c *gin.Context) {
	siteID := c.Query("siteId")
	if siteID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "siteId query parameter is required"})
		return
	}

	rng, err := analytics.ParseRange(c.Query("range"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.Engine.ComputeStats(ctx, siteID, rng)
	if err != nil {
		log.Printf("Error computing dashboard stats for site %s: %v", siteID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard statistics"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
