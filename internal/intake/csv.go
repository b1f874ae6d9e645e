package intake

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/rotisserie/eris"
)

// Row is one fact record read from a spreadsheet: the raw answers keyed by
// field name and the 1-based line it came from.
type Row struct {
	Line    int
	Answers map[string]string
}

// CSVOptions configures StreamCSV.
type CSVOptions struct {
	Delimiter rune // default ','
	Comment   rune // comment character (0 = none)
}

// StreamCSV reads fact records from CSV. The first row is a header of field
// names; header cells are matched case-insensitively against the catalogue
// fields and unknown columns are ignored. Caller must consume the row channel.
// Both channels are closed when processing completes.
func StreamCSV(ctx context.Context, r io.Reader, opts CSVOptions) (<-chan Row, <-chan error) {
	rowCh := make(chan Row, 64)
	errCh := make(chan error, 1)

	go func() {
		defer close(rowCh)
		defer close(errCh)

		reader := csv.NewReader(r)
		if opts.Delimiter != 0 {
			reader.Comma = opts.Delimiter
		}
		if opts.Comment != 0 {
			reader.Comment = opts.Comment
		}
		reader.FieldsPerRecord = -1 // allow ragged rows; missing cells are missing answers

		header, err := reader.Read()
		if err == io.EOF {
			return
		}
		if err != nil {
			errCh <- eris.Wrap(err, "csv: read header")
			return
		}
		columns := headerFields(header)

		for {
			if ctx.Err() != nil {
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}

			record, err := reader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				errCh <- eris.Wrap(err, "csv: read row")
				return
			}

			line, _ := reader.FieldPos(0)
			row := Row{Line: line, Answers: make(map[string]string, len(columns))}
			for i, cell := range record {
				if i >= len(columns) || columns[i] == "" {
					continue
				}
				if cell = strings.TrimSpace(cell); cell != "" {
					row.Answers[columns[i]] = cell
				}
			}

			select {
			case rowCh <- row:
			case <-ctx.Done():
				errCh <- eris.Wrap(ctx.Err(), "csv: context cancelled")
				return
			}
		}
	}()

	return rowCh, errCh
}

// headerFields maps header cells to catalogue field names. Unknown columns
// map to "".
func headerFields(header []string) []string {
	fields := make([]string, len(header))
	for i, h := range header {
		key := fold(strings.TrimPrefix(h, "\ufeff"))
		for _, q := range Questions {
			if key == fold(q.Field) {
				fields[i] = q.Field
				break
			}
		}
	}
	return fields
}
