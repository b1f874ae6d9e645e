package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sells-group/succession-cli/internal/advisory"
	"github.com/sells-group/succession-cli/internal/intake"
	"github.com/sells-group/succession-cli/internal/market"
)

// analysisFailed is the generic message returned for rejected fact records.
const analysisFailed = "Fehler bei der Analyse"

// handleAnalyze decodes a fact record, rejects it when malformed, and returns
// the advisory report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)

	facts, err := intake.DecodeFacts(r.Body)
	if err != nil {
		s.reject(w, err)
		return
	}

	scenario := advisory.Classify(facts)
	report := advisory.Analyze(facts)
	elapsed := time.Since(start)

	id := uuid.NewString()
	s.metrics.ObserveAnalysis(scenario, facts.HandoverTimeframe, elapsed)
	s.log.Info("analysis complete",
		zap.String("analysis_id", id),
		zap.String("scenario", scenario.String()),
		zap.String("timeframe", string(facts.HandoverTimeframe)),
		zap.Duration("duration", elapsed),
	)

	w.Header().Set(AnalysisIDHeader, id)
	respondJSON(w, http.StatusOK, report)
}

func (s *Server) reject(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	reason := "malformed"
	resp := errorResponse{Error: analysisFailed}

	var verr *intake.ValidationError
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		reason = "invalid"
		resp.Details = verr.Fields
	case errors.As(err, &tooLarge):
		status = http.StatusRequestEntityTooLarge
		reason = "too_large"
	}

	s.metrics.ObserveRejection(reason)
	s.log.Warn("analysis request rejected", zap.String("reason", reason), zap.Error(err))
	respondJSON(w, status, resp)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"statistics": market.StatisticsMap()})
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"greeting":  intake.Greeting,
		"questions": intake.Questions,
	})
}
