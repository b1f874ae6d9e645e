package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/succession-cli/internal/advisory"
	"github.com/sells-group/succession-cli/internal/config"
	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
	"github.com/sells-group/succession-cli/internal/render"
)

var (
	analyzeFormat string
	analyzeInput  string
	analyzePlain  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [facts.json|facts.yaml]",
	Short: "Analyze a fact record and print the advisory report",
	Long:  "Reads a fact record from a JSON or YAML file (stdin when no file is given), validates it, and prints the report. YAML records may use answer labels instead of codes.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := io.Reader(cmd.InOrStdin())
		inputFormat := analyzeInput
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return eris.Wrap(err, "analyze: open facts")
			}
			defer f.Close()
			in = f
			if inputFormat == "" {
				inputFormat = formatFromPath(args[0])
			}
		}

		facts, err := readFacts(in, inputFormat)
		if err != nil {
			return err
		}

		scenario := advisory.Classify(facts)
		report := advisory.Analyze(facts)
		zap.L().Debug("analysis complete",
			zap.String("scenario", scenario.String()),
			zap.String("timeframe", string(facts.HandoverTimeframe)),
		)

		out := cmd.OutOrStdout()
		opts := terminalOptions(out, cfg.Render, analyzePlain)
		opts.Facts = &facts
		return writeReport(out, report, scenario, analyzeFormat, opts)
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "markdown", "output format: markdown, json, or yaml")
	analyzeCmd.Flags().StringVar(&analyzeInput, "input", "", "input format: json or yaml (default from file extension, json for stdin)")
	analyzeCmd.Flags().BoolVar(&analyzePlain, "plain", false, "print raw markdown without terminal styling")
	rootCmd.AddCommand(analyzeCmd)
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

// readFacts decodes and validates a fact record in the given input format.
func readFacts(r io.Reader, format string) (model.Facts, error) {
	switch format {
	case "", "json":
		return intake.DecodeFacts(r)
	case "yaml":
		return intake.DecodeFactsYAML(r)
	default:
		return model.Facts{}, eris.Errorf("analyze: unknown input format %q", format)
	}
}

// terminalOptions picks styled output only when w is an interactive
// terminal and plain output was not requested.
func terminalOptions(w io.Writer, rc config.RenderConfig, plain bool) render.TerminalOptions {
	opts := render.TerminalOptions{
		WordWrap: rc.WordWrap,
		Style:    rc.Style,
		Plain:    plain,
	}
	if f, ok := w.(*os.File); !ok || !render.IsTerminal(f) {
		opts.Plain = true
	}
	return opts
}

// writeReport writes a report in the requested output format.
func writeReport(w io.Writer, report model.Report, scenario model.Scenario, format string, opts render.TerminalOptions) error {
	switch format {
	case "markdown", "md":
		return render.Terminal(w, report, scenario, opts)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return eris.Wrap(enc.Encode(report), "analyze: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return eris.Wrap(err, "analyze: encode yaml")
		}
		return eris.Wrap(enc.Close(), "analyze: flush yaml")
	default:
		return eris.Errorf("analyze: unknown output format %q", format)
	}
}
