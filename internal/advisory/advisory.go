// Package advisory classifies a business succession situation and produces
// the advisory report for it. Every function is pure: no I/O, no shared
// mutable state, safe for concurrent use.
package advisory

import "github.com/sells-group/succession-cli/internal/model"

// Analyze classifies the facts and assembles the complete report. The facts
// must have passed intake validation; Analyze never fails.
func Analyze(facts model.Facts) model.Report {
	scenario := Classify(facts)
	risks, opportunities := GenerateRisksAndOpportunities(scenario)

	return model.Report{
		Priority:       RatePriority(facts.HandoverTimeframe),
		Perspectives:   GeneratePerspectives(scenario, facts),
		Risks:          risks,
		Opportunities:  opportunities,
		Timeline:       GenerateTimeline(facts.HandoverTimeframe),
		NextSteps:      GenerateNextSteps(facts.HandoverTimeframe),
		SuccessFactors: GenerateSuccessFactors(),
	}
}
