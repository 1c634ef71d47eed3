package domain

import "strings"

// Gender is the closed set of recognized gender labels. Anything outside
// this set in the source text is treated as absent, not as an error.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender maps a free-text capture onto the closed Gender set.
// Returns false for anything outside {Male, Female} (case-insensitive).
func ParseGender(s string) (Gender, bool) {
	switch {
	case strings.EqualFold(s, string(GenderMale)):
		return GenderMale, true
	case strings.EqualFold(s, string(GenderFemale)):
		return GenderFemale, true
	default:
		return "", false
	}
}

// VitalKind identifies a recognized vital-sign reading.
type VitalKind string

const (
	VitalBloodPressure VitalKind = "blood_pressure"
	VitalHeartRate     VitalKind = "heart_rate"
)

// LabStatus is the classification of a lab value against its reference interval.
type LabStatus string

const (
	LabStatusLow     LabStatus = "Low"
	LabStatusNormal  LabStatus = "Normal"
	LabStatusHigh    LabStatus = "High"
	LabStatusUnknown LabStatus = "Unknown"
)

// Highlight is the coarse display tag derived from LabStatus.
type Highlight string

const (
	HighlightNormal  Highlight = "normal"
	HighlightWarning Highlight = "warning"
	HighlightUnknown Highlight = "unknown"
)

// Highlight derives the display tag from the status. This is the only place
// the mapping lives: Low and High warn, Normal is normal, everything else
// is unknown.
func (s LabStatus) Highlight() Highlight {
	switch s {
	case LabStatusLow, LabStatusHigh:
		return HighlightWarning
	case LabStatusNormal:
		return HighlightNormal
	default:
		return HighlightUnknown
	}
}

// NormalRangeUnavailable is the rendered range for an unclassifiable result.
const NormalRangeUnavailable = "Not available"

// UnitUnknown is the unit reported when no known unit token appears near a value.
const UnitUnknown = "Unknown"

// LanguageUnknown is the language tag used when detection failed or was skipped.
const LanguageUnknown = "unknown"
