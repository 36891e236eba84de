// api/analytics/range.go
package analytics

import (
	"fmt"
	"time"
)

// Range is a symbolic dashboard window. Arbitrary custom ranges are not
// part of the stats contract.
type Range string

const (
	Range24Hours Range = "24h"
	Range7Days   Range = "7d"
	Range30Days  Range = "30d"
)

// ParseRange validates a range string from the API. An empty value
// defaults to the last 24 hours.
func ParseRange(raw string) (Range, error) {
	switch Range(raw) {
	case Range24Hours, Range7Days, Range30Days:
		return Range(raw), nil
	case "":
		return Range24Hours, nil
	default:
		return "", fmt.Errorf("unsupported range %q (want 24h, 7d or 30d)", raw)
	}
}

// Duration returns the window length.
func (r Range) Duration() time.Duration {
	switch r {
	case Range7Days:
		return 7 * 24 * time.Hour
	case Range30Days:
		return 30 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Window maps the symbolic range onto a concrete [start, end) window
// ending at now. The preceding window of the same length is [start-d, start).
func (r Range) Window(now time.Time) (start, end time.Time) {
	end = now.UTC()
	return end.Add(-r.Duration()), end
}
