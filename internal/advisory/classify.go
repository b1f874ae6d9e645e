package advisory

import "github.com/sells-group/succession-cli/internal/model"

// Classify maps the facts to a succession scenario. Rules are evaluated in
// order and the first match wins:
//
//  1. family successor -> FamilyInternal
//  2. management successor -> ManagementBuyout
//  3. external successor with low financial expectations -> ExternalLeadership
//  4. anything else -> SaleOrMerger
//
// A successor type only counts when a successor is identified. An external
// successor with expectations above low falls through to SaleOrMerger.
func Classify(facts model.Facts) model.Scenario {
	switch successor := facts.EffectiveSuccessorType(); {
	case successor == model.SuccessorFamily:
		return model.ScenarioFamilyInternal
	case successor == model.SuccessorManagement:
		return model.ScenarioManagementBuyout
	case successor == model.SuccessorExternal && facts.FinancialExpectations == model.LevelLow:
		return model.ScenarioExternalLeadership
	default:
		return model.ScenarioSaleOrMerger
	}
}
