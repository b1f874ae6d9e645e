// Package render turns advisory reports into markdown, styled terminal
// output, and spreadsheet rows.
package render

import (
	"strings"

	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
)

// Section titles as shown to owners.
const (
	TitleAnswers        = "📝 Ihre Angaben"
	TitlePriority       = "📊 Ihre Priorität"
	TitleEmotional      = "❤️ Emotionale Perspektive"
	TitleLegal          = "⚖️ Rechtliche Perspektive"
	TitleTax            = "💰 Steuerliche Perspektive"
	TitleOrganizational = "📋 Organisatorische Perspektive"
	TitleRisks          = "⚠️ Risiken"
	TitleOpportunities  = "✅ Chancen"
	TitleTimeline       = "📅 Zeitplan"
	TitleNextSteps      = "🎯 Nächste Schritte"
	TitleSuccessFactors = "⭐ Erfolgsfaktoren"
)

var scenarioTitles = map[model.Scenario]string{
	model.ScenarioFamilyInternal:     "Familieninterne Nachfolge",
	model.ScenarioManagementBuyout:   "Management-Buy-Out (MBO)",
	model.ScenarioExternalLeadership: "Externe Geschäftsführung",
	model.ScenarioSaleOrMerger:       "Verkauf oder Fusion",
}

// ScenarioTitle returns the German display name of a scenario.
func ScenarioTitle(s model.Scenario) string {
	if t, ok := scenarioTitles[s]; ok {
		return t
	}
	return scenarioTitles[model.ScenarioSaleOrMerger]
}

// Markdown renders a report as a markdown document, sections in display order.
func Markdown(r model.Report, scenario model.Scenario) string {
	return document(nil, r, scenario)
}

// MarkdownWithAnswers renders the report preceded by the owner's answers,
// shown with their catalogue labels.
func MarkdownWithAnswers(f model.Facts, r model.Report, scenario model.Scenario) string {
	return document(&f, r, scenario)
}

func document(f *model.Facts, r model.Report, scenario model.Scenario) string {
	var b strings.Builder

	b.WriteString("# Ihre Nachfolgeanalyse\n\n")
	b.WriteString("**Szenario:** " + ScenarioTitle(scenario) + "\n\n")

	if f != nil {
		answers(&b, *f)
	}

	section(&b, TitlePriority)
	b.WriteString(r.Priority + "\n\n")

	list(&b, TitleEmotional, r.Perspectives.Emotional)
	list(&b, TitleLegal, r.Perspectives.Legal)
	list(&b, TitleTax, r.Perspectives.Tax)
	list(&b, TitleOrganizational, r.Perspectives.Organizational)
	list(&b, TitleRisks, r.Risks)
	list(&b, TitleOpportunities, r.Opportunities)

	section(&b, TitleTimeline)
	b.WriteString(strings.TrimSpace(r.Timeline) + "\n\n")

	// Next steps carry their own numbering.
	section(&b, TitleNextSteps)
	for _, step := range r.NextSteps {
		b.WriteString(step + "\n\n")
	}

	list(&b, TitleSuccessFactors, r.SuccessFactors)

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func answers(b *strings.Builder, f model.Facts) {
	section(b, TitleAnswers)
	for _, q := range intake.Questions {
		v := f.Value(q.Field)
		if v == "" {
			continue
		}
		b.WriteString("- " + q.Text + " **" + intake.Label(q.Field, v) + "**\n")
	}
	b.WriteString("\n")
}

func section(b *strings.Builder, title string) {
	b.WriteString("## " + title + "\n\n")
}

func list(b *strings.Builder, title string, items []string) {
	section(b, title)
	for _, item := range items {
		b.WriteString("- " + item + "\n")
	}
	b.WriteString("\n")
}
