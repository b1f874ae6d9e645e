package intake

import (
	"encoding/json"
	"errors"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/succession-cli/internal/model"
)

// DecodeFacts reads a JSON fact record with canonical codes and validates it.
// Syntax errors, wrongly typed fields and trailing input are errors; content
// problems come back as *ValidationError.
func DecodeFacts(r io.Reader) (model.Facts, error) {
	var f model.Facts
	dec := json.NewDecoder(r)
	if err := dec.Decode(&f); err != nil {
		return model.Facts{}, eris.Wrap(err, "intake: decode facts")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return model.Facts{}, eris.New("intake: trailing data after facts")
	}
	if err := Validate(f); err != nil {
		return model.Facts{}, err
	}
	return f, nil
}

// DecodeFactsYAML reads a YAML fact record. Values may be codes or catalogue
// labels.
func DecodeFactsYAML(r io.Reader) (model.Facts, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return model.Facts{}, eris.Wrap(err, "intake: decode yaml facts")
	}

	answers := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		switch val := v.(type) {
		case int:
			answers[k] = strconv.Itoa(val)
		case string:
			answers[k] = val
		default:
			return model.Facts{}, eris.Errorf("intake: field %s has unsupported type %T", k, v)
		}
	}
	return FactsFromAnswers(answers)
}

// FactsFromAnswers builds and validates a fact record from raw answers keyed
// by field name, as collected by the dialogue or read from a spreadsheet.
// Option answers may be labels or codes; numeric answers must be integers.
// Without an identified successor the successor type is dropped.
func FactsFromAnswers(answers map[string]string) (model.Facts, error) {
	get := func(field string) string { return Normalize(field, answers[field]) }

	f := model.Facts{
		CompanySize:           model.CompanySize(get(model.FieldCompanySize)),
		Sector:                model.Sector(get(model.FieldSector)),
		AnnualRevenue:         model.Revenue(get(model.FieldAnnualRevenue)),
		IsFamilyBusiness:      model.YesNo(get(model.FieldIsFamilyBusiness)),
		SuccessorIdentified:   model.Identified(get(model.FieldSuccessorIdentified)),
		HandoverTimeframe:     model.Timeframe(get(model.FieldHandoverTimeframe)),
		EmotionalAttachment:   model.Level(get(model.FieldEmotionalAttachment)),
		FinancialExpectations: model.Level(get(model.FieldFinancialExpectations)),
	}
	if f.SuccessorIdentified == model.IdentifiedYes {
		f.SuccessorType = model.SuccessorType(get(model.FieldSuccessorType))
	}

	verr := &ValidationError{}
	f.EmployeeCount = parseCount(verr, model.FieldEmployeeCount, answers[model.FieldEmployeeCount])
	f.OwnerAge = parseCount(verr, model.FieldOwnerAge, answers[model.FieldOwnerAge])

	if err := Validate(f); err != nil {
		var fields []FieldError
		if ve := (*ValidationError)(nil); errors.As(err, &ve) {
			fields = ve.Fields
		}
		// Parse failures replace the range error Validate reports for the
		// zero value.
		for _, fe := range fields {
			if !hasField(verr.Fields, fe.Field) {
				verr.Fields = append(verr.Fields, fe)
			}
		}
	}
	if len(verr.Fields) > 0 {
		return model.Facts{}, verr
	}
	return f, nil
}

func parseCount(verr *ValidationError, field, raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		verr.add(field, "required")
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		verr.add(field, "not a number: %q", raw)
		return 0
	}
	return n
}

func hasField(fields []FieldError, field string) bool {
	return slices.ContainsFunc(fields, func(f FieldError) bool { return f.Field == field })
}
