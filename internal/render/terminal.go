package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rotisserie/eris"

	"github.com/sells-group/succession-cli/internal/model"
)

// TerminalOptions configures Terminal.
type TerminalOptions struct {
	WordWrap int          // default 100
	Style    string       // glamour style name; "auto" picks by terminal background
	Plain    bool         // raw markdown without banner or ANSI styling
	Facts    *model.Facts // when set, the answers are listed before the report
}

var (
	colorUrgent  = lipgloss.Color("#fb4934")
	colorPlanned = lipgloss.Color("#fabd2f")
	colorCalm    = lipgloss.Color("#8ec07c")
	colorDim     = lipgloss.Color("#928374")

	styleBannerTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fe8019"))
)

// IsTerminal reports whether f is an interactive terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Banner renders the scenario and priority in a bordered box whose border
// color follows the urgency of the priority.
func Banner(scenario model.Scenario, priority string) string {
	border := colorDim
	switch {
	case strings.HasPrefix(priority, "HOCH"):
		border = colorUrgent
	case strings.HasPrefix(priority, "MITTEL"):
		border = colorPlanned
	case strings.HasPrefix(priority, "NIEDRIG"):
		border = colorCalm
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		PaddingLeft(2).
		PaddingRight(2)

	return box.Render(styleBannerTitle.Render(ScenarioTitle(scenario)) + "\n" + priority)
}

// Terminal writes the report for a terminal reader: a banner followed by the
// markdown rendered through glamour. With Plain set only the markdown is
// written.
func Terminal(w io.Writer, r model.Report, scenario model.Scenario, opts TerminalOptions) error {
	md := Markdown(r, scenario)
	if opts.Facts != nil {
		md = MarkdownWithAnswers(*opts.Facts, r, scenario)
	}
	if opts.Plain {
		_, err := io.WriteString(w, md)
		return eris.Wrap(err, "render: write markdown")
	}

	renderer, err := newRenderer(opts)
	if err != nil {
		return err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return eris.Wrap(err, "render: glamour")
	}

	if _, err := io.WriteString(w, Banner(scenario, r.Priority)+"\n"+out); err != nil {
		return eris.Wrap(err, "render: write terminal output")
	}
	return nil
}

func newRenderer(opts TerminalOptions) (*glamour.TermRenderer, error) {
	wrap := opts.WordWrap
	if wrap <= 0 {
		wrap = 100
	}

	style := glamour.WithAutoStyle()
	if opts.Style != "" && opts.Style != "auto" {
		style = glamour.WithStandardStyle(opts.Style)
	}

	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(wrap))
	if err != nil {
		return nil, eris.Wrapf(err, "render: glamour style %q", opts.Style)
	}
	return renderer, nil
}
