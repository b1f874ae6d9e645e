package advisory

import (
	"slices"

	"github.com/sells-group/succession-cli/internal/model"
)

// RatePriority returns the urgency rating for a handover timeframe. Unknown
// timeframes rate like the longest bucket.
func RatePriority(timeframe model.Timeframe) string {
	if p, ok := priorities[timeframe]; ok {
		return p
	}
	return priorities[model.TimeframeOver5Y]
}

// GenerateTimeline returns the three-phase plan for a handover timeframe.
func GenerateTimeline(timeframe model.Timeframe) string {
	if t, ok := timelines[timeframe]; ok {
		return t
	}
	return timelines[model.TimeframeOver5Y]
}

// GenerateNextSteps returns the prioritized action list: five common steps,
// then two steps that depend on whether the handover is less than two years
// away.
func GenerateNextSteps(timeframe model.Timeframe) []string {
	tail := plannedNextSteps
	if timeframe == model.TimeframeUnder2Y {
		tail = urgentNextSteps
	}

	steps := make([]string, 0, len(commonNextSteps)+len(tail))
	steps = append(steps, commonNextSteps...)
	return append(steps, tail...)
}

// GenerateSuccessFactors returns the success factors shared by all scenarios.
func GenerateSuccessFactors() []string {
	return slices.Clone(successFactors)
}
