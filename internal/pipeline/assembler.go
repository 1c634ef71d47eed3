package pipeline

import (
	"fmt"
	"strings"

	"medreportz/internal/domain"
)

// NoLabsDetected is the sentinel returned by RenderLabsAsText for an empty
// result set. Downstream narrative generation keys off this exact string.
const NoLabsDetected = "No lab values were detected."

// Assemble merges the pipeline outputs into one PatientRecord. Pure
// aggregation: no extraction logic, no mutation of its inputs. The labs
// slice is copied so the record stays detached from the caller's slice.
func Assemble(fileName, language, normalizedText string, patient domain.PatientInfo, vitals domain.VitalSigns, labs []domain.ResolvedLabResult) domain.PatientRecord {
	if language == "" {
		language = domain.LanguageUnknown
	}
	detached := make([]domain.ResolvedLabResult, len(labs))
	copy(detached, labs)

	return domain.PatientRecord{
		FileName:   fileName,
		Language:   language,
		Patient:    patient,
		VitalSigns: vitals,
		Labs:       detached,
		RawText:    normalizedText,
	}
}

// RenderLabsAsText renders one line per lab in the fixed format consumed by
// the narrative-generation collaborator.
func RenderLabsAsText(labs []domain.ResolvedLabResult) string {
	if len(labs) == 0 {
		return NoLabsDetected
	}

	lines := make([]string, 0, len(labs))
	for i := range labs {
		r := &labs[i]
		lines = append(lines, fmt.Sprintf("- %s: %s %s (Normal: %s, Status: %s)",
			r.TestName, formatNumber(r.Value), r.Unit, r.NormalRange, r.Status))
	}
	return strings.Join(lines, "\n")
}
