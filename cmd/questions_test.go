package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
)

func TestWriteQuestions_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeQuestions(&buf, "text"))

	out := buf.String()
	assert.Contains(t, out, "[1] companySize: ")
	assert.Contains(t, out, "[2] successorType: ")
	assert.Contains(t, out, "Familienintern")
	assert.Equal(t, len(intake.Questions), strings.Count(out, "] "))
}

func TestWriteQuestions_Structured(t *testing.T) {
	var jsonBuf bytes.Buffer
	require.NoError(t, writeQuestions(&jsonBuf, "json"))
	var fromJSON []model.Question
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	assert.Equal(t, intake.Questions, fromJSON)

	var yamlBuf bytes.Buffer
	require.NoError(t, writeQuestions(&yamlBuf, "yaml"))
	var fromYAML []model.Question
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	assert.Len(t, fromYAML, len(intake.Questions))
	assert.Equal(t, intake.Questions[0].Text, fromYAML[0].Text)
}

func TestWriteQuestions_UnknownFormat(t *testing.T) {
	err := writeQuestions(&bytes.Buffer{}, "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "csv"`)
}

func TestWriteStatistics(t *testing.T) {
	var text bytes.Buffer
	require.NoError(t, writeStatistics(&text, "text"))
	assert.Equal(t, 6, strings.Count(text.String(), "\n"))

	var js bytes.Buffer
	require.NoError(t, writeStatistics(&js, "json"))
	var resp struct {
		Statistics map[string]string `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(js.Bytes(), &resp))
	assert.Len(t, resp.Statistics, 6)

	require.Error(t, writeStatistics(&bytes.Buffer{}, "yaml"))
}
