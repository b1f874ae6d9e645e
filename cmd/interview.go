package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/succession-cli/internal/advisory"
	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
	"github.com/sells-group/succession-cli/internal/render"
)

var (
	interviewMode   string
	interviewFormat string
	interviewPlain  bool
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Collect facts interactively and print the advisory report",
	Long:  "Asks the intake questions in the terminal, either as a two-step form or one question at a time, then prints the report.",
	RunE: func(cmd *cobra.Command, args []string) error {
		accessible := !render.IsTerminal(os.Stdin)

		var (
			answers map[string]string
			err     error
		)
		switch interviewMode {
		case "form":
			answers, err = runFormInterview(accessible)
		case "dialogue":
			answers, err = runDialogueInterview(cmd.OutOrStdout(), accessible)
		default:
			return eris.Errorf("interview: unknown mode %q", interviewMode)
		}
		if err != nil {
			return err
		}

		facts, err := intake.FactsFromAnswers(answers)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts := terminalOptions(out, cfg.Render, interviewPlain)
		opts.Facts = &facts
		return writeReport(out, advisory.Analyze(facts), advisory.Classify(facts), interviewFormat, opts)
	},
}

func init() {
	interviewCmd.Flags().StringVar(&interviewMode, "mode", "form", "intake mode: form or dialogue")
	interviewCmd.Flags().StringVar(&interviewFormat, "format", "markdown", "output format: markdown, json, or yaml")
	interviewCmd.Flags().BoolVar(&interviewPlain, "plain", false, "print raw markdown without terminal styling")
	rootCmd.AddCommand(interviewCmd)
}

// questionField builds the huh field for one catalogue question. Option
// questions become selects whose values are canonical codes.
func questionField(q model.Question, value *string) huh.Field {
	if q.Numeric() {
		validate := validateCount
		if q.Field == model.FieldOwnerAge {
			validate = validateOwnerAge
		}
		return huh.NewInput().
			Title(q.Text).
			Value(value).
			Validate(validate)
	}

	opts := make([]huh.Option[string], 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, huh.NewOption(o.Label, o.Code))
	}
	return huh.NewSelect[string]().
		Title(q.Text).
		Options(opts...).
		Value(value)
}

// validateCount accepts a positive whole number.
func validateCount(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("bitte geben Sie eine positive Zahl ein")
	}
	return nil
}

// validateOwnerAge accepts an age inside the range intake validation allows.
func validateOwnerAge(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < intake.MinOwnerAge || v > intake.MaxOwnerAge {
		return fmt.Errorf("bitte geben Sie ein Alter zwischen %d und %d ein", intake.MinOwnerAge, intake.MaxOwnerAge)
	}
	return nil
}

// buildInterviewForm lays the catalogue out as the two-step form. The
// successor type group is hidden unless a successor is identified.
func buildInterviewForm(values map[string]*string) *huh.Form {
	bind := func(q model.Question) huh.Field {
		v := new(string)
		values[q.Field] = v
		return questionField(q, v)
	}

	var company, succession, personal []huh.Field
	var successorType huh.Field

	for _, q := range model.FilterByStep(intake.Questions, 1) {
		company = append(company, bind(q))
	}
	for _, q := range model.FilterByStep(intake.Questions, 2) {
		switch {
		case q.Field == model.FieldSuccessorType:
			successorType = bind(q)
		case successorType == nil:
			succession = append(succession, bind(q))
		default:
			personal = append(personal, bind(q))
		}
	}

	identified := values[model.FieldSuccessorIdentified]
	return huh.NewForm(
		huh.NewGroup(company...).Title("Schritt 1: Ihr Unternehmen"),
		huh.NewGroup(succession...).Title("Schritt 2: Nachfolge und persönliche Situation"),
		huh.NewGroup(successorType).WithHideFunc(func() bool {
			return *identified != string(model.IdentifiedYes)
		}),
		huh.NewGroup(personal...),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(false)
}

func runFormInterview(accessible bool) (map[string]string, error) {
	values := make(map[string]*string, len(intake.Questions))
	form := buildInterviewForm(values).WithAccessible(accessible)
	if err := form.Run(); err != nil {
		return nil, eris.Wrap(err, "interview: form")
	}
	return collectAnswers(values), nil
}

// collectAnswers drops unanswered fields.
func collectAnswers(values map[string]*string) map[string]string {
	answers := make(map[string]string, len(values))
	for field, v := range values {
		if s := strings.TrimSpace(*v); s != "" {
			answers[field] = s
		}
	}
	return answers
}

// runDialogueInterview asks one question at a time in catalogue order,
// skipping questions that do not apply to the answers so far.
func runDialogueInterview(out io.Writer, accessible bool) (map[string]string, error) {
	if _, err := fmt.Fprintln(out, intake.Greeting); err != nil {
		return nil, eris.Wrap(err, "interview: write greeting")
	}

	answers := make(map[string]string)
	for {
		q, ok := intake.NextQuestion(answers)
		if !ok {
			return answers, nil
		}

		var value string
		form := huh.NewForm(huh.NewGroup(questionField(q, &value))).
			WithTheme(huh.ThemeCharm()).
			WithShowHelp(false).
			WithAccessible(accessible)
		if err := form.Run(); err != nil {
			return nil, eris.Wrapf(err, "interview: question %s", q.ID)
		}
		answers[q.Field] = strings.TrimSpace(value)
	}
}
