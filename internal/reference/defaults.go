package reference

import "medreportz/internal/domain"

// DefaultTests returns the compiled-in reference set: common CBC and
// metabolic panel tests with adult general-population intervals. The
// declaration order below is the alias-resolution tie-break order.
func DefaultTests() []TestDefinition {
	return []TestDefinition{
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "glucose", DisplayName: "Glucose", Low: 70, High: 99, Unit: "mg/dL"},
			Aliases:        []string{"glucose", "blood glucose", "fasting glucose", "random glucose"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "wbc", DisplayName: "WBC", Low: 4.0, High: 11.0, Unit: "x10^3/µL"},
			Aliases:        []string{"wbc", "white blood cell", "white blood cells", "total leucocyte"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "hemoglobin", DisplayName: "Hemoglobin", Low: 12.0, High: 16.0, Unit: "g/dL"},
			Aliases:        []string{"hemoglobin", "hb", "hgb"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "platelet", DisplayName: "Platelets", Low: 150, High: 450, Unit: "x10^3/µL"},
			Aliases:        []string{"platelet", "platelets", "plt"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "cholesterol", DisplayName: "Cholesterol", Low: 0, High: 200, Unit: "mg/dL"},
			Aliases:        []string{"cholesterol", "total cholesterol"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "rbc", DisplayName: "RBC", Low: 4.2, High: 5.8, Unit: "mill/cumm"},
			Aliases:        []string{"rbc", "red blood cell", "red blood cells"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "pcv", DisplayName: "PCV", Low: 36, High: 50, Unit: "%"},
			Aliases:        []string{"pcv", "packed cell volume", "hematocrit"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "mcv", DisplayName: "MCV", Low: 80, High: 96, Unit: "fL"},
			Aliases:        []string{"mcv"},
		},
		// MCHC must precede MCH: "mch" is a substring of every MCHC label.
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "mchc", DisplayName: "MCHC", Low: 33, High: 36, Unit: "g/dL"},
			Aliases:        []string{"mchc"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "mch", DisplayName: "MCH", Low: 27, High: 33, Unit: "pg"},
			Aliases:        []string{"mch"},
		},
		{
			ReferenceEntry: domain.ReferenceEntry{Key: "rdw", DisplayName: "RDW", Low: 11.5, High: 14.5, Unit: "%"},
			Aliases:        []string{"rdw", "red cell distribution width"},
		},
	}
}

// defaultScanTokens is the fixed vocabulary the line scanner looks for.
// MCHC is listed before MCH so an MCHC row is not claimed by the shorter
// token under the first-match-per-line policy.
func defaultScanTokens() []string {
	return []string{
		"HEMOGLOBIN", "RBC", "PCV", "MCV", "MCHC", "MCH", "RDW",
		"WBC", "PLATELET", "GLUCOSE", "CHOLESTEROL",
	}
}

// defaultUnits is the known unit vocabulary in match order. More specific
// spellings come first: "cumm" is a substring of "mill/cumm" and "g/dL" of
// "mg/dL", so the longer forms must win.
func defaultUnits() []string {
	return []string{
		"mill/cumm", "cells/mcL", "x10^3/µL", "mg/dL", "g/dL",
		"fL", "pg", "cumm", "%",
	}
}

// defaultRepairs maps known OCR unit-notation artifacts to canonical
// spellings. Applied after whitespace collapsing, so spaced variants only
// need their single-space forms here.
func defaultRepairs() []Repair {
	return []Repair{
		{From: "x10 3/L", To: "x10^3/µL"},
		{From: "x10 3 / L", To: "x10^3/µL"},
	}
}

// Defaults returns the compiled-in reference table.
func Defaults() *Table {
	t, err := NewTable(DefaultTests(), defaultScanTokens(), defaultUnits(), defaultRepairs())
	if err != nil {
		// The compiled-in data is validated by tests; this cannot happen at runtime.
		panic(err)
	}
	return t
}
