package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medreportz/internal/config"
	"medreportz/internal/pipeline"
	"medreportz/internal/reference"
	"medreportz/internal/service"
	"medreportz/internal/textextract"
)

type staticGenerator struct {
	out   string
	calls int
}

func (s *staticGenerator) Generate(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.out, nil
}

type staticDetector struct{}

func (staticDetector) Detect(_ context.Context, _ string) (string, error) {
	return "en", nil
}

func newTestRouter(t *testing.T) (*gin.Engine, *staticGenerator) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	table := reference.Defaults()
	gen := &staticGenerator{out: "Everything is in order."}
	svc := service.NewReportService(
		pipeline.New(table),
		textextract.NewPlainExtractor(),
		staticDetector{},
		gen,
		&config.UploadConfig{MaxFileSizeMB: 1},
	)

	r := gin.New()
	h := NewReportHandler(svc)
	r.POST("/api/v1/reports/analyze", h.Analyze)
	r.POST("/api/v1/reports/export/csv", h.ExportCSV)
	r.GET("/readyz", NewHealthHandler(table).Readiness)
	return r, gen
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAnalyze_OK(t *testing.T) {
	r, gen := newTestRouter(t)

	rec := postJSON(t, r, "/api/v1/reports/analyze",
		`{"file_name":"r.txt","raw_text":"Glucose: 110 mg/dL","language":"en"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool                   `json:"success"`
		Data    service.ReportAnalysis `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Everything is in order.", resp.Data.Summary)
	require.NotNil(t, resp.Data.Record)
	require.Len(t, resp.Data.Record.Labs, 1)
	assert.Equal(t, "Glucose", resp.Data.Record.Labs[0].TestName)
	assert.Equal(t, "High", string(resp.Data.Record.Labs[0].Status))
	assert.Equal(t, 1, gen.calls)
}

func TestAnalyze_MissingRawText(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/api/v1/reports/analyze", `{"file_name":"r.txt"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyze_BlankRawText(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(t, r, "/api/v1/reports/analyze", `{"file_name":"r.txt","raw_text":"   "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMPTY_RAW_TEXT", resp.Error.Code)
}

func TestExportCSV(t *testing.T) {
	r, gen := newTestRouter(t)

	rec := postJSON(t, r, "/api/v1/reports/export/csv",
		`{"file_name":"cbc","raw_text":"Hemoglobin: 13.5 g/dL"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "Test Name,Value,Unit,Normal Range,Status,Highlight,Confidence")
	assert.Contains(t, body, "Hemoglobin,13.5,g/dL,12–16,Normal,normal,0.95")

	// Export consumes only the structured labs; the summary provider must
	// not be spent (or tripped into rate-limit backoff) on this path.
	assert.Equal(t, 0, gen.calls)
}

func TestReadiness(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
