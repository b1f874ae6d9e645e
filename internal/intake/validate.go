package intake

import (
	"fmt"
	"strings"

	"github.com/sells-group/succession-cli/internal/model"
)

// Owner age bounds accepted by the intake form.
const (
	MinOwnerAge = 18
	MaxOwnerAge = 100
)

// FieldError describes one problem with one field of a fact record.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e FieldError) String() string { return e.Field + ": " + e.Reason }

// ValidationError lists every problem found in a fact record.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.String()
	}
	return "intake: invalid facts: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, format string, args ...any) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// enumCheck validates one enum field; empty values are reported as missing.
func (e *ValidationError) enumCheck(field, value string, valid bool) {
	switch {
	case value == "":
		e.add(field, "required")
	case !valid:
		e.add(field, "unknown value %q", value)
	}
}

// Validate checks that a fact record is complete and well-typed. It returns
// nil or a *ValidationError.
func Validate(f model.Facts) error {
	verr := &ValidationError{}

	verr.enumCheck(model.FieldCompanySize, string(f.CompanySize), f.CompanySize.Valid())
	verr.enumCheck(model.FieldSector, string(f.Sector), f.Sector.Valid())
	verr.enumCheck(model.FieldAnnualRevenue, string(f.AnnualRevenue), f.AnnualRevenue.Valid())
	if f.EmployeeCount < 1 {
		verr.add(model.FieldEmployeeCount, "must be a positive number")
	}
	verr.enumCheck(model.FieldIsFamilyBusiness, string(f.IsFamilyBusiness), f.IsFamilyBusiness.Valid())
	verr.enumCheck(model.FieldSuccessorIdentified, string(f.SuccessorIdentified), f.SuccessorIdentified.Valid())
	if f.SuccessorIdentified == model.IdentifiedYes {
		verr.enumCheck(model.FieldSuccessorType, string(f.SuccessorType), f.SuccessorType.Valid())
	}
	verr.enumCheck(model.FieldHandoverTimeframe, string(f.HandoverTimeframe), f.HandoverTimeframe.Valid())
	if f.OwnerAge < MinOwnerAge || f.OwnerAge > MaxOwnerAge {
		verr.add(model.FieldOwnerAge, "must be between %d and %d", MinOwnerAge, MaxOwnerAge)
	}
	verr.enumCheck(model.FieldEmotionalAttachment, string(f.EmotionalAttachment), f.EmotionalAttachment.Valid())
	verr.enumCheck(model.FieldFinancialExpectations, string(f.FinancialExpectations), f.FinancialExpectations.Valid())

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
