// Package market holds the fixed succession market statistics shown next to
// the advisory report.
package market

// Statistic is one market figure.
type Statistic struct {
	Key  string `json:"key"`
	Text string `json:"text"`
}

var statistics = []Statistic{
	{Key: "no_successor", Text: "59% finden keinen passenden Nachfolger"},
	{Key: "sale_planned", Text: "48% planen externen Verkauf"},
	{Key: "family_internal", Text: "34% übergeben innerhalb der Familie"},
	{Key: "management_buyout", Text: "19% übergeben an Mitarbeiter"},
	{Key: "financing_problems", Text: "48% haben Finanzierungsschwierigkeiten"},
	{Key: "excessive_prices", Text: "34% scheitern an überzogenen Preisvorstellungen"},
}

// Statistics returns the market figures in display order.
func Statistics() []Statistic {
	out := make([]Statistic, len(statistics))
	copy(out, statistics)
	return out
}

// StatisticsMap returns the market figures keyed by Key.
func StatisticsMap() map[string]string {
	m := make(map[string]string, len(statistics))
	for _, s := range statistics {
		m[s.Key] = s.Text
	}
	return m
}
