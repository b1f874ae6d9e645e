package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/succession-cli/internal/advisory"
	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/model"
	"github.com/sells-group/succession-cli/internal/render"
)

var (
	batchOut         string
	batchConcurrency int
	batchSheet       string
)

var batchCmd = &cobra.Command{
	Use:   "batch <facts.csv|facts.xlsx>",
	Short: "Analyze many fact records from a spreadsheet",
	Long:  "Reads one fact record per row (answer labels or codes), analyzes the rows concurrently, and writes the reports as JSON lines or an XLSX workbook. Invalid rows are reported and skipped.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if batchConcurrency > 0 {
			cfg.Batch.MaxConcurrent = batchConcurrency
		}
		if err := cfg.Validate("batch"); err != nil {
			return err
		}

		rowCh, errCh, closeInput, err := openBatchInput(ctx, args[0])
		if err != nil {
			return err
		}
		defer closeInput()

		runID := uuid.NewString()
		results, err := processBatch(runID, rowCh, errCh, cfg.Batch.MaxConcurrent)
		if err != nil {
			return err
		}

		return writeBatchOutput(cmd.OutOrStdout(), batchOut, runID, results)
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchOut, "out", "", "output file (.xlsx or .jsonl; default JSON lines on stdout)")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "max rows analyzed in parallel (default from config)")
	batchCmd.Flags().StringVar(&batchSheet, "sheet", "", "sheet name for xlsx input (default first sheet)")
	rootCmd.AddCommand(batchCmd)
}

// batchResult is the outcome of one input row: a report or the reason the
// row was rejected.
type batchResult struct {
	RunID    string        `json:"runId"`
	Line     int           `json:"line"`
	Scenario string        `json:"scenario,omitempty"`
	Report   *model.Report `json:"report,omitempty"`
	Error    string        `json:"error,omitempty"`

	scenario model.Scenario
}

func openBatchInput(ctx context.Context, path string) (<-chan intake.Row, <-chan error, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rowCh, errCh := intake.StreamXLSX(ctx, path, intake.XLSXOptions{SheetName: batchSheet})
		return rowCh, errCh, func() {}, nil
	case ".csv", ".tsv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, nil, eris.Wrap(err, "batch: open input")
		}
		opts := intake.CSVOptions{Comment: '#'}
		if strings.EqualFold(filepath.Ext(path), ".tsv") {
			opts.Delimiter = '\t'
		}
		rowCh, errCh := intake.StreamCSV(ctx, f, opts)
		return rowCh, errCh, func() { _ = f.Close() }, nil
	default:
		return nil, nil, nil, eris.Errorf("batch: unsupported input %q (want .csv, .tsv, or .xlsx)", path)
	}
}

// processBatch analyzes rows concurrently. Invalid rows become rejected
// results and do not abort the batch; a read error from the input does.
// Results are returned in input order.
func processBatch(runID string, rowCh <-chan intake.Row, errCh <-chan error, concurrency int) ([]batchResult, error) {
	var g errgroup.Group
	g.SetLimit(concurrency)

	var (
		mu        sync.Mutex
		results   []batchResult
		succeeded atomic.Int64
		rejected  atomic.Int64
	)

	for row := range rowCh {
		g.Go(func() error {
			log := zap.L().With(zap.String("run_id", runID), zap.Int("line", row.Line))
			res := batchResult{RunID: runID, Line: row.Line}

			facts, err := intake.FactsFromAnswers(row.Answers)
			if err != nil {
				rejected.Add(1)
				res.Error = err.Error()
				log.Warn("row rejected", zap.Error(err))
			} else {
				succeeded.Add(1)
				report := advisory.Analyze(facts)
				res.scenario = advisory.Classify(facts)
				res.Scenario = res.scenario.String()
				res.Report = &report
				log.Debug("row analyzed", zap.String("scenario", res.Scenario))
			}

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil // don't abort batch on individual rows
		})
	}

	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "batch processing")
	}
	for err := range errCh {
		if err != nil {
			return nil, eris.Wrap(err, "batch: read input")
		}
	}

	slices.SortFunc(results, func(a, b batchResult) int { return a.Line - b.Line })

	zap.L().Info("batch complete",
		zap.String("run_id", runID),
		zap.Int64("succeeded", succeeded.Load()),
		zap.Int64("rejected", rejected.Load()),
	)
	return results, nil
}

func writeBatchOutput(stdout io.Writer, path, runID string, results []batchResult) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		return writeJSONL(stdout, results)
	case ".jsonl", ".json":
		f, err := os.Create(path)
		if err != nil {
			return eris.Wrap(err, "batch: create output")
		}
		if err := writeJSONL(f, results); err != nil {
			_ = f.Close()
			return err
		}
		return eris.Wrap(f.Close(), "batch: close output")
	case ".xlsx":
		wb, err := buildWorkbook(results)
		if err != nil {
			return err
		}
		if err := wb.Save(path); err != nil {
			return err
		}
		zap.L().Info("workbook written", zap.String("run_id", runID), zap.String("path", path))
		return nil
	default:
		return eris.Errorf("batch: unsupported output %q (want .jsonl or .xlsx)", path)
	}
}

func writeJSONL(w io.Writer, results []batchResult) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, res := range results {
		if err := enc.Encode(res); err != nil {
			return eris.Wrapf(err, "batch: encode line %d", res.Line)
		}
	}
	return nil
}

func buildWorkbook(results []batchResult) (*render.Workbook, error) {
	wb, err := render.NewWorkbook()
	if err != nil {
		return nil, err
	}
	for _, res := range results {
		if res.Report == nil {
			wb.AddRejected(res.Line, res.Error)
			continue
		}
		wb.AddReport(res.Line, res.scenario, *res.Report)
	}
	return wb, nil
}
