package main

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
)

func TestValidateCount(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"1", false},
		{" 42 ", false},
		{"0", true},
		{"-3", true},
		{"", true},
		{"viele", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateCount(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOwnerAge(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"18", false},
		{" 63 ", false},
		{"100", false},
		{"5", true},
		{"17", true},
		{"101", true},
		{"", true},
		{"sechzig", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateOwnerAge(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOwnerAge_AgreesWithIntake(t *testing.T) {
	base := map[string]string{
		model.FieldCompanySize:           "small",
		model.FieldSector:                "craft",
		model.FieldAnnualRevenue:         "<500k",
		model.FieldEmployeeCount:         "6",
		model.FieldIsFamilyBusiness:      "yes",
		model.FieldSuccessorIdentified:   "no",
		model.FieldHandoverTimeframe:     ">5y",
		model.FieldEmotionalAttachment:   "medium",
		model.FieldFinancialExpectations: "low",
	}

	for _, age := range []string{"5", "17", "18", "60", "100", "101"} {
		t.Run(age, func(t *testing.T) {
			answers := make(map[string]string, len(base)+1)
			for k, v := range base {
				answers[k] = v
			}
			answers[model.FieldOwnerAge] = age

			_, intakeErr := intake.FactsFromAnswers(answers)
			assert.Equal(t, validateOwnerAge(age) == nil, intakeErr == nil)
		})
	}
}

func TestQuestionField_Kinds(t *testing.T) {
	var v string

	size, ok := intake.QuestionFor(model.FieldCompanySize)
	require.True(t, ok)
	_, isSelect := questionField(size, &v).(*huh.Select[string])
	assert.True(t, isSelect)

	age, ok := intake.QuestionFor(model.FieldOwnerAge)
	require.True(t, ok)
	_, isInput := questionField(age, &v).(*huh.Input)
	assert.True(t, isInput)
}

func TestBuildInterviewForm_BindsEveryField(t *testing.T) {
	values := make(map[string]*string)
	form := buildInterviewForm(values)
	require.NotNil(t, form)

	assert.Len(t, values, len(intake.Questions))
	for _, q := range intake.Questions {
		assert.NotNil(t, values[q.Field], "field %s not bound", q.Field)
	}
}

func TestCollectAnswers(t *testing.T) {
	filled, blank, spaced := "medium", "", " 58 "
	answers := collectAnswers(map[string]*string{
		model.FieldCompanySize:   &filled,
		model.FieldSuccessorType: &blank,
		model.FieldOwnerAge:      &spaced,
	})

	assert.Equal(t, map[string]string{
		model.FieldCompanySize: "medium",
		model.FieldOwnerAge:    "58",
	}, answers)
}

func TestCollectAnswers_BuildsFacts(t *testing.T) {
	raw := map[string]string{
		model.FieldCompanySize:           "small",
		model.FieldSector:                "craft",
		model.FieldAnnualRevenue:         "<500k",
		model.FieldEmployeeCount:         "6",
		model.FieldIsFamilyBusiness:      "yes",
		model.FieldSuccessorIdentified:   "no",
		model.FieldSuccessorType:         "",
		model.FieldHandoverTimeframe:     ">5y",
		model.FieldOwnerAge:              "55",
		model.FieldEmotionalAttachment:   "medium",
		model.FieldFinancialExpectations: "low",
	}
	values := make(map[string]*string, len(raw))
	for k, v := range raw {
		values[k] = &v
	}

	facts, err := intake.FactsFromAnswers(collectAnswers(values))
	require.NoError(t, err)
	assert.Equal(t, model.SuccessorNone, facts.SuccessorType)
	assert.Equal(t, 6, facts.EmployeeCount)
}
