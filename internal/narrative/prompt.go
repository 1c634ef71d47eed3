// Package narrative builds patient-facing summary prompts and manages the
// generation providers that turn them into prose. Generation failures are
// never fatal to a report analysis; callers degrade to an empty summary.
package narrative

import (
	"fmt"
	"strings"

	"medreportz/internal/domain"
	"medreportz/internal/pipeline"
)

// LabsUninterpretable is the prompt line used when a record carries no
// interpretable lab results.
const LabsUninterpretable = "Lab values were present but could not be fully interpreted."

// BuildSummaryPrompt renders a PatientRecord into the instruction prompt
// sent to the summary provider. Missing patient or vitals fields fall back
// to placeholder lines rather than being omitted, so the model never sees
// a dangling section header.
func BuildSummaryPrompt(record *domain.PatientRecord) string {
	greeting := "Hello,"
	if record.Patient.Name != nil && *record.Patient.Name != "" {
		greeting = fmt.Sprintf("Hello %s,", *record.Patient.Name)
	}

	var patientContext []string
	if record.Patient.Age != nil {
		patientContext = append(patientContext, fmt.Sprintf("Age: %d", *record.Patient.Age))
	}
	if record.Patient.Gender != nil {
		patientContext = append(patientContext, fmt.Sprintf("Gender: %s", *record.Patient.Gender))
	}

	var vitalsContext []string
	if bp, ok := record.VitalSigns[domain.VitalBloodPressure]; ok {
		vitalsContext = append(vitalsContext, fmt.Sprintf("Blood Pressure: %s", bp))
	}
	if hr, ok := record.VitalSigns[domain.VitalHeartRate]; ok {
		vitalsContext = append(vitalsContext, fmt.Sprintf("Heart Rate: %s", hr))
	}

	labsText := LabsUninterpretable
	if len(record.Labs) > 0 {
		labsText = pipeline.RenderLabsAsText(record.Labs)
	}

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\nYou are a medical assistant summarizing a health report.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Write ONE summary paragraph\n")
	b.WriteString("- Use simple, non-technical language\n")
	b.WriteString("- Do NOT diagnose diseases\n")
	b.WriteString("- Do NOT suggest treatments\n")
	b.WriteString("- Be calm and reassuring\n")
	b.WriteString("- Do NOT discuss future tests and investigations\n")
	b.WriteString("- Only describe what is present in the report\n\n")
	b.WriteString("Patient Information:\n")
	b.WriteString(joinOrFallback(patientContext, "Not specified"))
	b.WriteString("\n\nVital Signs:\n")
	b.WriteString(joinOrFallback(vitalsContext, "Not available"))
	b.WriteString("\n\nLab Results:\n")
	b.WriteString(labsText)
	b.WriteString("\n\nProvide a friendly patient summary.\n")
	return b.String()
}

func joinOrFallback(lines []string, fallback string) string {
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}
