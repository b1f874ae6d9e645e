package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"github.com/sells-group/succession-cli/internal/model"
	"github.com/sells-group/succession-cli/internal/monitoring"
)

const familyUrgent = `{
  "companySize": "medium",
  "sector": "production",
  "annualRevenue": "2m-10m",
  "employeeCount": 40,
  "isFamilyBusiness": "yes",
  "successorIdentified": "yes",
  "successorType": "family",
  "handoverTimeframe": "<2y",
  "ownerAge": 63,
  "emotionalAttachment": "very_high",
  "financialExpectations": "medium"
}`

func newTestServer(t *testing.T, opts Options) (*Server, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	opts.Logger = zap.New(core)
	return NewServer(opts, monitoring.NewCollector()), logs
}

func do(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAnalyze_Report(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t, Options{})
	rec := do(s, http.MethodPost, "/api/analyze", familyUrgent)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(AnalysisIDHeader))

	var report model.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, strings.HasPrefix(report.Priority, "HOCH"))
	assert.Len(t, report.Perspectives.Emotional, 6)
	assert.Len(t, report.NextSteps, 7)
	assert.Len(t, report.SuccessFactors, 6)
	assert.True(t, strings.HasPrefix(report.Timeline, "**Phase 1"))

	entries := logs.FilterMessage("analysis complete").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "family_internal", fields["scenario"])
	assert.Equal(t, "<2y", fields["timeframe"])
	assert.Equal(t, rec.Header().Get(AnalysisIDHeader), fields["analysis_id"])
}

func TestAnalyze_ResponseFieldNames(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(s, http.MethodPost, "/api/analyze", familyUrgent)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &raw))
	for _, key := range []string{"priority", "perspectives", "risks", "opportunities", "timeline", "nextSteps", "successFactors"} {
		assert.Contains(t, raw, key)
	}

	var persp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["perspectives"], &persp))
	assert.Len(t, persp, 4)
}

func TestAnalyze_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		wantReason string
		wantField  string
	}{
		{
			name:       "syntax error",
			body:       `{"companySize":`,
			wantReason: "malformed",
		},
		{
			name:       "wrong type",
			body:       strings.Replace(familyUrgent, `"employeeCount": 40`, `"employeeCount": "forty"`, 1),
			wantReason: "malformed",
		},
		{
			name:       "trailing text",
			body:       familyUrgent + " this is not json",
			wantReason: "malformed",
		},
		{
			name:       "missing timeframe",
			body:       strings.Replace(familyUrgent, `"handoverTimeframe": "<2y",`, "", 1),
			wantReason: "invalid",
			wantField:  model.FieldHandoverTimeframe,
		},
		{
			name:       "unknown level",
			body:       strings.Replace(familyUrgent, `"very_high"`, `"extreme"`, 1),
			wantReason: "invalid",
			wantField:  model.FieldEmotionalAttachment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			metrics := monitoring.NewCollector()
			s := NewServer(Options{Logger: zap.NewNop()}, metrics)
			rec := do(s, http.MethodPost, "/api/analyze", tt.body)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, rec.Header().Get(AnalysisIDHeader))

			var resp struct {
				Error   string `json:"error"`
				Details []struct {
					Field  string `json:"field"`
					Reason string `json:"reason"`
				} `json:"details"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "Fehler bei der Analyse", resp.Error)

			if tt.wantField != "" {
				var fields []string
				for _, d := range resp.Details {
					fields = append(fields, d.Field)
				}
				assert.Contains(t, fields, tt.wantField)
			} else {
				assert.Empty(t, resp.Details)
			}

			metricsRec := httptest.NewRecorder()
			s.ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
			assert.Contains(t, metricsRec.Body.String(), `advisor_rejected_requests_total{reason="`+tt.wantReason+`"} 1`)
		})
	}
}

func TestAnalyze_BodyTooLarge(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{MaxBodyBytes: 16})
	rec := do(s, http.MethodPost, "/api/analyze", familyUrgent)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Fehler bei der Analyse")
}

func TestAnalyze_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(s, http.MethodGet, "/api/analyze", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestStatistics(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(s, http.MethodGet, "/api/statistics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Statistics map[string]string `json:"statistics"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Statistics, 6)
	assert.Contains(t, resp.Statistics, "no_successor")
}

func TestQuestions(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{})
	rec := do(s, http.MethodGet, "/api/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Greeting  string           `json:"greeting"`
		Questions []model.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Greeting)
	assert.Len(t, resp.Questions, 11)
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{RateLimit: rate.Every(time.Hour), RateBurst: 2})

	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/statistics", "").Code)
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/api/statistics", "").Code)

	rec := do(s, http.MethodGet, "/api/statistics", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))

	// Health and metrics sit outside the limiter.
	assert.Equal(t, http.StatusOK, do(s, http.MethodGet, "/health", "").Code)
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	s, _ := newTestServer(t, Options{CORSOrigins: []string{"https://nachfolge.example"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/analyze", nil)
	req.Header.Set("Origin", "https://nachfolge.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)

	assert.Equal(t, "https://nachfolge.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetrics_CountsAnalyses(t *testing.T) {
	t.Parallel()

	metrics := monitoring.NewCollector()
	s := NewServer(Options{Logger: zap.NewNop()}, metrics)
	require.Equal(t, http.StatusOK, do(s, http.MethodPost, "/api/analyze", familyUrgent).Code)

	rec := do(s, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `advisor_analyses_total{scenario="family_internal",timeframe="<2y"} 1`)
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()

	s, logs := newTestServer(t, Options{})
	do(s, http.MethodGet, "/health", "")

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/health", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}
