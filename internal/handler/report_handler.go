package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"medreportz/internal/csvexport"
	"medreportz/internal/service"
)

// ReportHandler handles report analysis endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// AnalyzeRequest is the JSON body for POST /api/v1/reports/analyze.
type AnalyzeRequest struct {
	FileName string `json:"file_name"`
	RawText  string `json:"raw_text" binding:"required"`
	Language string `json:"language"`
}

// Analyze handles POST /api/v1/reports/analyze
func (h *ReportHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if req.FileName == "" {
		req.FileName = "report"
	}

	analysis, err := h.reportService.AnalyzeText(c.Request.Context(), service.AnalyzeTextInput{
		FileName: req.FileName,
		RawText:  req.RawText,
		Language: req.Language,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysis)
}

// AnalyzeFile handles POST /api/v1/reports/analyze-file
func (h *ReportHandler) AnalyzeFile(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}

	analysis, err := h.reportService.AnalyzeFile(c.Request.Context(), service.AnalyzeFileInput{
		FileBytes:   fileBytes,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Language:    c.PostForm("language"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, analysis)
}

// ExportCSV handles POST /api/v1/reports/export/csv
// The body is the same as Analyze; the response is a CSV of the resolved
// lab results instead of the JSON record.
func (h *ReportHandler) ExportCSV(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}
	if req.FileName == "" {
		req.FileName = "report"
	}

	// Only the labs end up in the CSV; never spend a summary-provider call here.
	analysis, err := h.reportService.AnalyzeText(c.Request.Context(), service.AnalyzeTextInput{
		FileName:    req.FileName,
		RawText:     req.RawText,
		Language:    req.Language,
		SkipSummary: true,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	filename := csvexport.BuildFilename(req.FileName)
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteLabs(analysis.Record.Labs); err != nil {
		return
	}
	w.Flush()
}
