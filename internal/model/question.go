package model

// Field names of the fact record as they appear on the wire.
const (
	FieldCompanySize           = "companySize"
	FieldSector                = "sector"
	FieldAnnualRevenue         = "annualRevenue"
	FieldEmployeeCount         = "employeeCount"
	FieldIsFamilyBusiness      = "isFamilyBusiness"
	FieldSuccessorIdentified   = "successorIdentified"
	FieldSuccessorType         = "successorType"
	FieldHandoverTimeframe     = "handoverTimeframe"
	FieldOwnerAge              = "ownerAge"
	FieldEmotionalAttachment   = "emotionalAttachment"
	FieldFinancialExpectations = "financialExpectations"
)

// Option is a selectable answer: the label shown to the owner and the
// canonical code it maps to.
type Option struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

// Question is one step of the intake flows. Questions without options take
// a free number.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Field   string   `json:"field"`
	Step    int      `json:"step"` // form step: 1 company, 2 succession and owner
	Options []Option `json:"options,omitempty"`
}

// Numeric reports whether the question expects a number instead of an option.
func (q Question) Numeric() bool { return len(q.Options) == 0 }

// FilterByStep returns the questions shown on the given form step.
func FilterByStep(questions []Question, step int) []Question {
	var result []Question
	for _, q := range questions {
		if q.Step == step {
			result = append(result, q)
		}
	}
	return result
}
