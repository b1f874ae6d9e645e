package intake

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/succession-cli/internal/model"
)

func collectRows(t *testing.T, rowCh <-chan Row, errCh <-chan error) ([]Row, error) {
	t.Helper()
	var rows []Row
	for row := range rowCh {
		rows = append(rows, row)
	}
	for err := range errCh {
		if err != nil {
			return rows, err
		}
	}
	return rows, nil
}

func TestStreamCSV_MapsHeaderToFields(t *testing.T) {
	t.Parallel()

	input := "\ufeffCompanySize,sector,notes,ownerAge\n" +
		"small,Handwerk,ignored,61\n" +
		"large, it ,,\n"

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, map[string]string{
		model.FieldCompanySize: "small",
		model.FieldSector:      "Handwerk",
		model.FieldOwnerAge:    "61",
	}, rows[0].Answers)

	assert.Equal(t, 3, rows[1].Line)
	assert.Equal(t, map[string]string{
		model.FieldCompanySize: "large",
		model.FieldSector:      "it",
	}, rows[1].Answers)
}

func TestStreamCSV_Semicolon(t *testing.T) {
	t.Parallel()

	input := "sector;ownerAge\ntrade;70\n"
	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(input), CSVOptions{Delimiter: ';'})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "70", rows[0].Answers[model.FieldOwnerAge])
}

func TestStreamCSV_Empty(t *testing.T) {
	t.Parallel()

	rowCh, errCh := StreamCSV(context.Background(), strings.NewReader(""), CSVOptions{})
	rows, err := collectRows(t, rowCh, errCh)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStreamCSV_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rowCh, errCh := StreamCSV(ctx, strings.NewReader("sector\ntrade\n"), CSVOptions{})
	_, err := collectRows(t, rowCh, errCh)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "context cancelled")
}
