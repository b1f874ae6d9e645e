package advisory

import (
	"slices"

	"github.com/sells-group/succession-cli/internal/model"
)

// contentFor returns the content block for a scenario. Unknown scenarios get
// the sale/merger block, matching the classifier's fallback.
func contentFor(scenario model.Scenario) block {
	if b, ok := scenarioContent[scenario]; ok {
		return b
	}
	return scenarioContent[model.ScenarioSaleOrMerger]
}

// GeneratePerspectives returns the four perspective lists for a scenario.
// Scenarios that carry attachment guidance get two extra emotional entries
// when the owner's emotional attachment is high or very high.
func GeneratePerspectives(scenario model.Scenario, facts model.Facts) model.Perspectives {
	b := contentFor(scenario)

	emotional := slices.Clone(b.perspectives.Emotional)
	if len(b.attachment) > 0 && facts.EmotionalAttachment.IsHigh() {
		emotional = append(emotional, b.attachment...)
	}

	return model.Perspectives{
		Emotional:      emotional,
		Legal:          slices.Clone(b.perspectives.Legal),
		Tax:            slices.Clone(b.perspectives.Tax),
		Organizational: slices.Clone(b.perspectives.Organizational),
	}
}

// GenerateRisksAndOpportunities returns the fixed risk and opportunity lists
// for a scenario.
func GenerateRisksAndOpportunities(scenario model.Scenario) (risks, opportunities []string) {
	b := contentFor(scenario)
	return slices.Clone(b.risks), slices.Clone(b.opportunities)
}
