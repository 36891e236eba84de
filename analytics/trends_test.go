package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitelens/api/models"
)

func TestComputeTrendsNoPreviousPeriod(t *testing.T) {
	current := models.PeriodStats{TotalVisitors: 42, BounceRate: 50}

	trends := ComputeTrends(current, models.PeriodStats{NoData: true})

	assert.Equal(t, models.Trend{}, trends)
}

func TestComputeTrendsGrowthFromZero(t *testing.T) {
	current := models.PeriodStats{TotalVisitors: 5}
	previous := models.PeriodStats{TotalVisitors: 0, BounceRate: 40}

	trends := ComputeTrends(current, previous)

	assert.Equal(t, 100.0, trends.TotalVisitors)
	assert.Equal(t, -100.0, trends.BounceRate)
}

func TestComputeTrendsFlat(t *testing.T) {
	stats := models.PeriodStats{TotalVisitors: 10, BounceRate: 33.3, PagesPerVisit: 2.5}

	trends := ComputeTrends(stats, stats)

	assert.Equal(t, models.Trend{}, trends)
}

func TestComputeTrendsPercentages(t *testing.T) {
	current := models.PeriodStats{
		TotalVisitors:      150,
		NewVisitors:        90,
		ReturningVisitors:  60,
		BounceRate:         25,
		AvgSessionDuration: 90,
		PagesPerVisit:      3,
	}
	previous := models.PeriodStats{
		TotalVisitors:      100,
		NewVisitors:        120,
		ReturningVisitors:  60,
		BounceRate:         50,
		AvgSessionDuration: 60,
		PagesPerVisit:      4,
	}

	trends := ComputeTrends(current, previous)

	assert.Equal(t, 50.0, trends.TotalVisitors)
	assert.Equal(t, -25.0, trends.NewVisitors)
	assert.Equal(t, 0.0, trends.ReturningVisitors)
	assert.Equal(t, -50.0, trends.BounceRate)
	assert.Equal(t, 50.0, trends.AvgSessionDuration)
	assert.Equal(t, -25.0, trends.PagesPerVisit)
}

func TestComputeTrendsRoundsToOneDecimal(t *testing.T) {
	current := models.PeriodStats{TotalVisitors: 1}
	previous := models.PeriodStats{TotalVisitors: 3}

	trends := ComputeTrends(current, previous)

	assert.Equal(t, -66.7, trends.TotalVisitors)
}

func TestComputeTrendsBothZero(t *testing.T) {
	trends := ComputeTrends(models.PeriodStats{}, models.PeriodStats{TotalVisitors: 1})

	assert.Equal(t, 0.0, trends.BounceRate)
	assert.Equal(t, -100.0, trends.TotalVisitors)
	assert.Equal(t, 0.0, trends.NewVisitors)
}
