package render

import (
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/succession-cli/internal/model"
)

// Sheet names of the batch workbook.
const (
	SheetReports  = "Berichte"
	SheetRejected = "Abgelehnt"
)

var reportHeader = []string{
	"Zeile", "Szenario", "Priorität",
	"Emotional", "Rechtlich", "Steuerlich", "Organisatorisch",
	"Risiken", "Chancen", "Zeitplan", "Nächste Schritte", "Erfolgsfaktoren",
}

var rejectedHeader = []string{"Zeile", "Fehler"}

// Workbook collects batch results into an XLSX file with one sheet of
// reports and one of rejected rows. List sections are joined with newlines
// inside a single cell. Not safe for concurrent use.
type Workbook struct {
	file     *xlsx.File
	reports  *xlsx.Sheet
	rejected *xlsx.Sheet
}

// NewWorkbook creates an empty workbook with header rows.
func NewWorkbook() (*Workbook, error) {
	f := xlsx.NewFile()

	reports, err := f.AddSheet(SheetReports)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add reports sheet")
	}
	rejected, err := f.AddSheet(SheetRejected)
	if err != nil {
		return nil, eris.Wrap(err, "xlsx: add rejected sheet")
	}

	addStringRow(reports, reportHeader)
	addStringRow(rejected, rejectedHeader)

	return &Workbook{file: f, reports: reports, rejected: rejected}, nil
}

// AddReport appends one report row.
func (wb *Workbook) AddReport(line int, scenario model.Scenario, r model.Report) {
	row := wb.reports.AddRow()
	row.AddCell().SetInt(line)
	for _, v := range []string{
		ScenarioTitle(scenario),
		r.Priority,
		joinLines(r.Perspectives.Emotional),
		joinLines(r.Perspectives.Legal),
		joinLines(r.Perspectives.Tax),
		joinLines(r.Perspectives.Organizational),
		joinLines(r.Risks),
		joinLines(r.Opportunities),
		strings.TrimSpace(r.Timeline),
		joinLines(r.NextSteps),
		joinLines(r.SuccessFactors),
	} {
		row.AddCell().SetString(v)
	}
}

// AddRejected appends one rejected input row with its reason.
func (wb *Workbook) AddRejected(line int, reason string) {
	row := wb.rejected.AddRow()
	row.AddCell().SetInt(line)
	row.AddCell().SetString(reason)
}

// Save writes the workbook to path.
func (wb *Workbook) Save(path string) error {
	return eris.Wrap(wb.file.Save(path), "xlsx: save workbook")
}

// Write writes the workbook to w.
func (wb *Workbook) Write(w io.Writer) error {
	return eris.Wrap(wb.file.Write(w), "xlsx: write workbook")
}

func addStringRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

func joinLines(items []string) string {
	return strings.Join(items, "\n")
}
