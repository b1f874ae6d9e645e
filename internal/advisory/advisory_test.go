package advisory

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/succession-cli/internal/model"
)

// allFacts enumerates fact records across every field that influences the
// report, with the remaining fields fixed.
func allFacts() []model.Facts {
	types := append([]model.SuccessorType{model.SuccessorNone}, model.SuccessorTypes...)

	var out []model.Facts
	for _, identified := range model.Identifieds {
		for _, typ := range types {
			if identified == model.IdentifiedYes && typ == model.SuccessorNone {
				continue
			}
			for _, tf := range model.Timeframes {
				for _, attach := range model.Levels {
					for _, expect := range model.Levels {
						f := baseFacts()
						f.SuccessorIdentified = identified
						f.SuccessorType = typ
						f.HandoverTimeframe = tf
						f.EmotionalAttachment = attach
						f.FinancialExpectations = expect
						out = append(out, f)
					}
				}
			}
		}
	}
	return out
}

func TestAnalyze_Deterministic(t *testing.T) {
	t.Parallel()

	for _, f := range allFacts() {
		first := Analyze(f)
		second := Analyze(f)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Fatalf("report differs between runs for %+v (-first +second):\n%s", f, diff)
		}

		a, err := json.Marshal(first)
		require.NoError(t, err)
		b, err := json.Marshal(second)
		require.NoError(t, err)
		require.Equal(t, a, b)
	}
}

func TestAnalyze_Complete(t *testing.T) {
	t.Parallel()

	for _, f := range allFacts() {
		r := Analyze(f)
		assert.NotEmpty(t, r.Priority)
		assert.NotEmpty(t, r.Timeline)
		assert.NotEmpty(t, r.Perspectives.Emotional)
		assert.NotEmpty(t, r.Perspectives.Legal)
		assert.NotEmpty(t, r.Perspectives.Tax)
		assert.NotEmpty(t, r.Perspectives.Organizational)
		assert.NotEmpty(t, r.Risks)
		assert.NotEmpty(t, r.Opportunities)
		assert.Len(t, r.NextSteps, 7)
		assert.Len(t, r.SuccessFactors, 6)
	}
}

func TestAnalyze_FamilyUrgentHighAttachment(t *testing.T) {
	t.Parallel()

	f := baseFacts()
	f.SuccessorIdentified = model.IdentifiedYes
	f.SuccessorType = model.SuccessorFamily
	f.HandoverTimeframe = model.TimeframeUnder2Y
	f.EmotionalAttachment = model.LevelHigh
	f.FinancialExpectations = model.LevelMedium

	require.Equal(t, model.ScenarioFamilyInternal, Classify(f))

	r := Analyze(f)
	assert.True(t, strings.HasPrefix(r.Priority, "HOCH"))
	require.Len(t, r.Perspectives.Emotional, 6)
	assert.Contains(t, r.Perspectives.Emotional[0], "Familieninterne Übergabe")
	assert.Contains(t, r.Perspectives.Emotional[4], "Hohe emotionale Bindung")
	assert.Contains(t, r.Perspectives.Emotional[5], "Neue Lebensphase")
	assert.Contains(t, r.NextSteps[5], "DRINGEND")
}

func TestAnalyze_NoSuccessor(t *testing.T) {
	t.Parallel()

	f := baseFacts()
	f.SuccessorIdentified = model.IdentifiedNo
	f.SuccessorType = model.SuccessorNone
	f.FinancialExpectations = model.LevelVeryHigh

	r := Analyze(f)
	assert.Contains(t, r.Perspectives.Emotional[0], "Unternehmensverkauf")
	assert.Len(t, r.Perspectives.Legal, 5)
	assert.Len(t, r.Perspectives.Tax, 5)
	assert.Len(t, r.Perspectives.Organizational, 5)
}

func TestAnalyze_IgnoresUnusedFacts(t *testing.T) {
	t.Parallel()

	base := Analyze(baseFacts())

	f := baseFacts()
	f.CompanySize = model.CompanySizeLarge
	f.Sector = model.SectorIT
	f.AnnualRevenue = model.RevenueOver10M
	f.EmployeeCount = 900
	f.IsFamilyBusiness = model.No
	f.OwnerAge = 35

	assert.Empty(t, cmp.Diff(base, Analyze(f)))
}

func TestAnalyze_ResultsDoNotShareTables(t *testing.T) {
	t.Parallel()

	first := Analyze(baseFacts())
	first.Perspectives.Emotional[0] = "mutated"
	first.Risks[0] = "mutated"
	first.NextSteps[0] = "mutated"
	first.SuccessFactors[0] = "mutated"

	second := Analyze(baseFacts())
	assert.NotEqual(t, "mutated", second.Perspectives.Emotional[0])
	assert.NotEqual(t, "mutated", second.Risks[0])
	assert.NotEqual(t, "mutated", second.NextSteps[0])
	assert.NotEqual(t, "mutated", second.SuccessFactors[0])
}
