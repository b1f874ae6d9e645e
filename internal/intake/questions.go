// Package intake turns owner answers into a validated fact record. It holds
// the question catalogue shared by the form and dialogue flows, maps answer
// labels to canonical codes, and rejects malformed records before they reach
// the advisory engine.
package intake

import "github.com/sells-group/succession-cli/internal/model"

// Questions is the intake catalogue in dialogue order.
var Questions = []model.Question{
	{
		ID:    model.FieldCompanySize,
		Text:  "Wie würden Sie die Größe Ihres Unternehmens beschreiben?",
		Field: model.FieldCompanySize,
		Step:  1,
		Options: []model.Option{
			{Label: "Klein (bis 10 Mitarbeiter)", Code: string(model.CompanySizeSmall)},
			{Label: "Mittel (10-50 Mitarbeiter)", Code: string(model.CompanySizeMedium)},
			{Label: "Groß (über 50 Mitarbeiter)", Code: string(model.CompanySizeLarge)},
		},
	},
	{
		ID:    model.FieldSector,
		Text:  "In welcher Branche ist Ihr Unternehmen tätig?",
		Field: model.FieldSector,
		Step:  1,
		Options: []model.Option{
			{Label: "Handwerk", Code: string(model.SectorCraft)},
			{Label: "Produktion", Code: string(model.SectorProduction)},
			{Label: "Handel", Code: string(model.SectorTrade)},
			{Label: "Dienstleistung", Code: string(model.SectorServices)},
			{Label: "IT/Tech", Code: string(model.SectorIT)},
			{Label: "Andere", Code: string(model.SectorOther)},
		},
	},
	{
		ID:    model.FieldAnnualRevenue,
		Text:  "Wie hoch ist Ihr ungefährer Jahresumsatz?",
		Field: model.FieldAnnualRevenue,
		Step:  1,
		Options: []model.Option{
			{Label: "Unter 500.000 €", Code: string(model.RevenueUnder500K)},
			{Label: "500.000 - 2 Mio. €", Code: string(model.Revenue500KTo2M)},
			{Label: "2 - 10 Mio. €", Code: string(model.Revenue2MTo10M)},
			{Label: "Über 10 Mio. €", Code: string(model.RevenueOver10M)},
		},
	},
	{
		ID:    model.FieldEmployeeCount,
		Text:  "Wie viele Mitarbeiter beschäftigt Ihr Unternehmen? (Bitte geben Sie eine Zahl ein)",
		Field: model.FieldEmployeeCount,
		Step:  1,
	},
	{
		ID:    model.FieldIsFamilyBusiness,
		Text:  "Ist Ihr Unternehmen ein Familienunternehmen?",
		Field: model.FieldIsFamilyBusiness,
		Step:  1,
		Options: []model.Option{
			{Label: "Ja", Code: string(model.Yes)},
			{Label: "Nein", Code: string(model.No)},
		},
	},
	{
		ID:    model.FieldSuccessorIdentified,
		Text:  "Haben Sie bereits einen potenziellen Nachfolger identifiziert?",
		Field: model.FieldSuccessorIdentified,
		Step:  2,
		Options: []model.Option{
			{Label: "Ja", Code: string(model.IdentifiedYes)},
			{Label: "Nein", Code: string(model.IdentifiedNo)},
			{Label: "Unklar", Code: string(model.IdentifiedUnclear)},
		},
	},
	{
		ID:    model.FieldSuccessorType,
		Text:  "Welche Art von Nachfolger kommt für Sie in Frage?",
		Field: model.FieldSuccessorType,
		Step:  2,
		Options: []model.Option{
			{Label: "Familienintern", Code: string(model.SuccessorFamily)},
			{Label: "Mitarbeiter/Management", Code: string(model.SuccessorManagement)},
			{Label: "Externe Person/Unternehmen", Code: string(model.SuccessorExternal)},
		},
	},
	{
		ID:    model.FieldHandoverTimeframe,
		Text:  "In welchem Zeitrahmen planen Sie die Übergabe?",
		Field: model.FieldHandoverTimeframe,
		Step:  2,
		Options: []model.Option{
			{Label: "Unter 2 Jahren", Code: string(model.TimeframeUnder2Y)},
			{Label: "2-5 Jahre", Code: string(model.Timeframe2To5Y)},
			{Label: "Über 5 Jahre", Code: string(model.TimeframeOver5Y)},
		},
	},
	{
		ID:    model.FieldOwnerAge,
		Text:  "Wie alt sind Sie? (Bitte geben Sie Ihr Alter in Jahren ein)",
		Field: model.FieldOwnerAge,
		Step:  2,
	},
	{
		ID:      model.FieldEmotionalAttachment,
		Text:    "Wie würden Sie Ihre emotionale Bindung an das Unternehmen beschreiben?",
		Field:   model.FieldEmotionalAttachment,
		Step:    2,
		Options: levelOptions(),
	},
	{
		ID:      model.FieldFinancialExpectations,
		Text:    "Wie hoch sind Ihre finanziellen Erwartungen an die Übergabe?",
		Field:   model.FieldFinancialExpectations,
		Step:    2,
		Options: levelOptions(),
	},
}

func levelOptions() []model.Option {
	return []model.Option{
		{Label: "Sehr hoch", Code: string(model.LevelVeryHigh)},
		{Label: "Hoch", Code: string(model.LevelHigh)},
		{Label: "Mittel", Code: string(model.LevelMedium)},
		{Label: "Niedrig", Code: string(model.LevelLow)},
	}
}

// Greeting opens the dialogue flow.
const Greeting = "Willkommen! Ich helfe Ihnen bei der Planung Ihrer Unternehmensnachfolge. " +
	"Ich werde Ihnen einige Fragen stellen, um Ihre Situation besser zu verstehen."

// QuestionFor returns the catalogue entry for a fact field.
func QuestionFor(field string) (model.Question, bool) {
	for _, q := range Questions {
		if q.Field == field {
			return q, true
		}
	}
	return model.Question{}, false
}

// Applies reports whether the question is asked given the answers so far.
// The successor type is only asked once a successor is identified.
func Applies(q model.Question, answers map[string]string) bool {
	if q.Field != model.FieldSuccessorType {
		return true
	}
	return Normalize(model.FieldSuccessorIdentified, answers[model.FieldSuccessorIdentified]) == string(model.IdentifiedYes)
}

// NextQuestion returns the next unanswered question of the dialogue, or false
// when every applicable question has an answer.
func NextQuestion(answers map[string]string) (model.Question, bool) {
	for _, q := range Questions {
		if !Applies(q, answers) {
			continue
		}
		if _, answered := answers[q.Field]; !answered {
			return q, true
		}
	}
	return model.Question{}, false
}
