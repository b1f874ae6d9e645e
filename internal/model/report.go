package model

// Scenario is one of the four mutually exclusive succession paths.
type Scenario int

const (
	ScenarioFamilyInternal Scenario = iota
	ScenarioManagementBuyout
	ScenarioExternalLeadership
	ScenarioSaleOrMerger
)

// Scenarios lists every scenario in declaration order.
var Scenarios = []Scenario{
	ScenarioFamilyInternal,
	ScenarioManagementBuyout,
	ScenarioExternalLeadership,
	ScenarioSaleOrMerger,
}

var scenarioNames = map[Scenario]string{
	ScenarioFamilyInternal:     "family_internal",
	ScenarioManagementBuyout:   "management_buyout",
	ScenarioExternalLeadership: "external_leadership",
	ScenarioSaleOrMerger:       "sale_or_merger",
}

// String returns the stable slug used in logs, metrics, and exports.
func (s Scenario) String() string {
	if name, ok := scenarioNames[s]; ok {
		return name
	}
	return "unknown"
}

// Perspectives groups recommendations under the four advisory viewpoints.
type Perspectives struct {
	Emotional      []string `json:"emotional" yaml:"emotional"`
	Legal          []string `json:"legal" yaml:"legal"`
	Tax            []string `json:"tax" yaml:"tax"`
	Organizational []string `json:"organizational" yaml:"organizational"`
}

// Report is the complete advisory output for one fact record. List order is
// presentation order.
type Report struct {
	Priority       string       `json:"priority" yaml:"priority"`
	Perspectives   Perspectives `json:"perspectives" yaml:"perspectives"`
	Risks          []string     `json:"risks" yaml:"risks"`
	Opportunities  []string     `json:"opportunities" yaml:"opportunities"`
	Timeline       string       `json:"timeline" yaml:"timeline"`
	NextSteps      []string     `json:"nextSteps" yaml:"nextSteps"`
	SuccessFactors []string     `json:"successFactors" yaml:"successFactors"`
}
