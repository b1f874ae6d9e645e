package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/market"
)

var (
	questionsFormat string
	statsFormat     string
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the intake question catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeQuestions(cmd.OutOrStdout(), questionsFormat)
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print market statistics on business succession",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeStatistics(cmd.OutOrStdout(), statsFormat)
	},
}

func init() {
	questionsCmd.Flags().StringVar(&questionsFormat, "format", "text", "output format: text, json, or yaml")
	statsCmd.Flags().StringVar(&statsFormat, "format", "text", "output format: text or json")
	rootCmd.AddCommand(questionsCmd, statsCmd)
}

func writeQuestions(w io.Writer, format string) error {
	switch format {
	case "text":
		for _, q := range intake.Questions {
			if _, err := fmt.Fprintf(w, "[%d] %s: %s\n", q.Step, q.Field, q.Text); err != nil {
				return eris.Wrap(err, "questions: write")
			}
			for _, o := range q.Options {
				if _, err := fmt.Fprintf(w, "      %-12s %s\n", o.Code, o.Label); err != nil {
					return eris.Wrap(err, "questions: write")
				}
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return eris.Wrap(enc.Encode(intake.Questions), "questions: encode json")
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(intake.Questions); err != nil {
			return eris.Wrap(err, "questions: encode yaml")
		}
		return eris.Wrap(enc.Close(), "questions: flush yaml")
	default:
		return eris.Errorf("questions: unknown format %q", format)
	}
}

func writeStatistics(w io.Writer, format string) error {
	switch format {
	case "text":
		for _, s := range market.Statistics() {
			if _, err := fmt.Fprintln(w, s.Text); err != nil {
				return eris.Wrap(err, "stats: write")
			}
		}
		return nil
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return eris.Wrap(enc.Encode(map[string]any{"statistics": market.StatisticsMap()}), "stats: encode json")
	default:
		return eris.Errorf("stats: unknown format %q", format)
	}
}
