package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitelens/api/models"
)

func pathEventAt(visitorID, path string, minutes int) models.TrackingEvent {
	event := eventAt(visitorID, minutes)
	event.Path = path
	return event
}

func TestConversionFunnelEmpty(t *testing.T) {
	stages := ConversionFunnel(nil)

	require.Len(t, stages, 4)
	for _, stage := range stages {
		assert.Zero(t, stage.Visitors)
		assert.Zero(t, stage.DropOffCount)
		assert.Zero(t, stage.DropOffRate)
	}
}

func TestConversionFunnelStageNamesInOrder(t *testing.T) {
	stages := ConversionFunnel(nil)

	require.Len(t, stages, 4)
	assert.Equal(t, "View Product", stages[0].Stage)
	assert.Equal(t, "Add to Cart", stages[1].Stage)
	assert.Equal(t, "Checkout", stages[2].Stage)
	assert.Equal(t, "Purchase", stages[3].Stage)
}

func TestConversionFunnelDropOff(t *testing.T) {
	events := []models.TrackingEvent{
		pathEventAt("a", "/products/1", 0),
		pathEventAt("b", "/products/2", 0),
		pathEventAt("c", "/products/3", 0),
		pathEventAt("d", "/products/4", 0),
		pathEventAt("a", "/cart", 1),
		pathEventAt("b", "/cart", 1),
		pathEventAt("a", "/checkout", 2),
		pathEventAt("a", "/purchase/confirmation", 3),
	}

	stages := ConversionFunnel(events)

	require.Len(t, stages, 4)
	assert.Equal(t, 4, stages[0].Visitors)
	assert.Zero(t, stages[0].DropOffCount)
	assert.Zero(t, stages[0].DropOffRate)

	assert.Equal(t, 2, stages[1].Visitors)
	assert.Equal(t, 2, stages[1].DropOffCount)
	assert.Equal(t, 50.0, stages[1].DropOffRate)

	assert.Equal(t, 1, stages[2].Visitors)
	assert.Equal(t, 1, stages[2].DropOffCount)
	assert.Equal(t, 50.0, stages[2].DropOffRate)

	assert.Equal(t, 1, stages[3].Visitors)
	assert.Zero(t, stages[3].DropOffCount)
	assert.Zero(t, stages[3].DropOffRate)
}

func TestConversionFunnelMembershipIsIndependent(t *testing.T) {
	// A visitor landing straight on checkout counts there without ever
	// matching the earlier stages.
	stages := ConversionFunnel([]models.TrackingEvent{pathEventAt("a", "/checkout", 0)})

	assert.Zero(t, stages[0].Visitors)
	assert.Zero(t, stages[1].Visitors)
	assert.Equal(t, 1, stages[2].Visitors)
}

func TestConversionFunnelDropOffClampedAtZero(t *testing.T) {
	// More checkout visitors than cart visitors; drop-off never goes
	// negative.
	events := []models.TrackingEvent{
		pathEventAt("a", "/cart", 0),
		pathEventAt("a", "/checkout", 1),
		pathEventAt("b", "/checkout", 0),
	}

	stages := ConversionFunnel(events)

	assert.Equal(t, 1, stages[1].Visitors)
	assert.Equal(t, 2, stages[2].Visitors)
	assert.Zero(t, stages[2].DropOffCount)
	assert.Zero(t, stages[2].DropOffRate)
}

func TestConversionFunnelCaseInsensitive(t *testing.T) {
	stages := ConversionFunnel([]models.TrackingEvent{pathEventAt("a", "/Products/Shoes", 0)})

	assert.Equal(t, 1, stages[0].Visitors)
}

func TestConversionFunnelVisitorCountedOncePerStage(t *testing.T) {
	events := []models.TrackingEvent{
		pathEventAt("a", "/products/1", 0),
		pathEventAt("a", "/products/2", 1),
		pathEventAt("a", "/products/3", 2),
	}

	stages := ConversionFunnel(events)

	assert.Equal(t, 1, stages[0].Visitors)
}
