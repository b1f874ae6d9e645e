package intake

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// fold reduces an answer to a comparison key: NFC-normalized, whitespace
// collapsed, case folded. Labels typed as "ÜBER 5 JAHRE" or with decomposed
// umlauts match the catalogue label "Über 5 Jahre".
func fold(s string) string {
	s = norm.NFC.String(s)
	s = strings.Join(strings.Fields(s), " ")
	return cases.Fold().String(s)
}

// Normalize maps an answer for a field to its canonical code. The answer may
// be a catalogue label or already a code. Answers that match neither are
// returned trimmed but otherwise unchanged so validation can report them.
func Normalize(field, answer string) string {
	answer = strings.TrimSpace(answer)
	q, ok := QuestionFor(field)
	if !ok || q.Numeric() || answer == "" {
		return answer
	}

	key := fold(answer)
	for _, opt := range q.Options {
		if key == fold(opt.Label) || key == fold(opt.Code) {
			return opt.Code
		}
	}
	return answer
}

// Label returns the catalogue label for a field's canonical code, or the code
// itself when the field has no such option.
func Label(field, code string) string {
	q, ok := QuestionFor(field)
	if !ok {
		return code
	}
	for _, opt := range q.Options {
		if opt.Code == code {
			return opt.Label
		}
	}
	return code
}
