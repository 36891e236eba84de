package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	for _, raw := range []string{"24h", "7d", "30d"} {
		rng, err := ParseRange(raw)
		require.NoError(t, err)
		assert.Equal(t, Range(raw), rng)
	}

	rng, err := ParseRange("")
	require.NoError(t, err)
	assert.Equal(t, Range24Hours, rng)

	_, err = ParseRange("90d")
	assert.Error(t, err)
}

func TestRangeWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	start, end := Range7Days.Window(now)

	assert.Equal(t, now, end)
	assert.Equal(t, now.Add(-7*24*time.Hour), start)
	assert.Equal(t, 7*24*time.Hour, Range7Days.Duration())
}

func TestRangeWindowNormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	now := time.Date(2026, 3, 15, 9, 30, 0, 0, loc)

	start, end := Range24Hours.Window(now)

	assert.Equal(t, time.UTC, end.Location())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
