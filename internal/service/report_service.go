package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"medreportz/internal/config"
	"medreportz/internal/domain"
	"medreportz/internal/narrative"
	"medreportz/internal/pipeline"
	"medreportz/internal/port"
)

// AnalyzeTextInput is the DTO for raw-text analysis requests. SkipSummary
// suppresses the narrative-generation call for callers that only consume
// the structured record, such as the CSV export.
type AnalyzeTextInput struct {
	FileName    string
	RawText     string
	Language    string
	SkipSummary bool
}

// AnalyzeFileInput is the DTO for uploaded-document analysis requests.
type AnalyzeFileInput struct {
	FileBytes   []byte
	FileName    string
	ContentType string
	Language    string
}

// ReportAnalysis is the result of analyzing one report: the structured
// record plus the generated summary. Summary is empty when generation
// failed or no provider is configured; the record is always present.
type ReportAnalysis struct {
	Record  *domain.PatientRecord `json:"record"`
	Summary string                `json:"summary"`
}

// ReportService defines the report analysis contract.
type ReportService interface {
	AnalyzeText(ctx context.Context, input AnalyzeTextInput) (*ReportAnalysis, error)
	AnalyzeFile(ctx context.Context, input AnalyzeFileInput) (*ReportAnalysis, error)
}

type reportService struct {
	pipeline     *pipeline.Pipeline
	extractor    port.TextExtractor
	detector     port.LanguageDetector
	generator    port.SummaryGenerator
	maxFileBytes int64
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	p *pipeline.Pipeline,
	extractor port.TextExtractor,
	detector port.LanguageDetector,
	generator port.SummaryGenerator,
	cfg *config.UploadConfig,
) ReportService {
	return &reportService{
		pipeline:     p,
		extractor:    extractor,
		detector:     detector,
		generator:    generator,
		maxFileBytes: cfg.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *reportService) AnalyzeText(ctx context.Context, input AnalyzeTextInput) (*ReportAnalysis, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return nil, domain.ErrEmptyRawText
	}

	doc := domain.RawDocument{
		FileName: input.FileName,
		RawText:  input.RawText,
		Language: input.Language,
	}

	if doc.Language == "" {
		lang, err := s.detector.Detect(ctx, doc.RawText)
		if err != nil {
			// Detection is metadata only; a failed detector never blocks analysis.
			log.Printf("reportService.AnalyzeText: language detection failed for %s: %v", doc.FileName, err)
			lang = domain.LanguageUnknown
		}
		doc.Language = lang
	}

	record := s.pipeline.Run(doc)

	summary := ""
	if !input.SkipSummary && s.generator != nil {
		prompt := narrative.BuildSummaryPrompt(&record)
		out, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			// The structured record stands on its own; a failed summary
			// degrades to an empty string rather than failing the request.
			log.Printf("reportService.AnalyzeText: summary generation failed for %s: %v", doc.FileName, err)
		} else {
			summary = out
		}
	}

	return &ReportAnalysis{
		Record:  &record,
		Summary: summary,
	}, nil
}

func (s *reportService) AnalyzeFile(ctx context.Context, input AnalyzeFileInput) (*ReportAnalysis, error) {
	if int64(len(input.FileBytes)) > s.maxFileBytes {
		return nil, domain.ErrFileTooLarge
	}

	text, err := s.extractor.ExtractText(ctx, port.ExtractInput{
		FileBytes:   input.FileBytes,
		FileName:    input.FileName,
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("extracting text from %s: %w", input.FileName, err)
	}

	return s.AnalyzeText(ctx, AnalyzeTextInput{
		FileName: input.FileName,
		RawText:  text,
		Language: input.Language,
	})
}
