// api/analytics/funnel.go
package analytics

import (
	"strings"

	"sitelens/api/models"
)

// funnelStages is the fixed e-commerce conversion funnel. A visitor belongs
// to a stage when any of their paths contains one of its patterns,
// case-insensitively. Membership is independent per stage; there is no
// sequential enforcement.
var funnelStages = []struct {
	name     string
	patterns []string
}{
	{"View Product", []string{"product"}},
	{"Add to Cart", []string{"cart"}},
	{"Checkout", []string{"checkout"}},
	{"Purchase", []string{"purchase", "order-confirm", "thank-you"}},
}

func matchesStage(path string, patterns []string) bool {
	lowered := strings.ToLower(path)
	for _, pattern := range patterns {
		if strings.Contains(lowered, pattern) {
			return true
		}
	}
	return false
}

// ConversionFunnel counts distinct visitors per funnel stage and the
// drop-off from each stage to the next. Drop-off is clamped at zero: with
// independent stage membership a later stage can outdraw an earlier one.
func ConversionFunnel(events []models.TrackingEvent) []models.FunnelStage {
	stageVisitors := make([]map[string]struct{}, len(funnelStages))
	for i := range stageVisitors {
		stageVisitors[i] = make(map[string]struct{})
	}

	for _, event := range events {
		for i, stage := range funnelStages {
			if matchesStage(event.Path, stage.patterns) {
				stageVisitors[i][event.VisitorID] = struct{}{}
			}
		}
	}

	results := make([]models.FunnelStage, len(funnelStages))
	for i, stage := range funnelStages {
		results[i] = models.FunnelStage{
			Stage:    stage.name,
			Visitors: len(stageVisitors[i]),
		}
		if i == 0 {
			continue
		}
		previous := results[i-1].Visitors
		dropOff := previous - results[i].Visitors
		if dropOff < 0 {
			dropOff = 0
		}
		results[i].DropOffCount = dropOff
		if previous > 0 {
			results[i].DropOffRate = round1(float64(dropOff) / float64(previous) * 100)
		}
	}

	return results
}
