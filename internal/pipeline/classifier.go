package pipeline

import (
	"strconv"

	"medreportz/internal/domain"
	"medreportz/internal/reference"
)

// Classifier compares resolved values against the reference intervals and
// produces complete lab results.
type Classifier struct {
	table *reference.Table
}

// NewClassifier creates a Classifier over the reference table.
func NewClassifier(table *reference.Table) *Classifier {
	return &Classifier{table: table}
}

// Classify builds the final result for one mention. An empty or unknown
// canonical key yields status Unknown with range "Not available"; otherwise
// the value is split three ways against the closed interval, with both
// bounds counting as Normal. The mention's unit hint is carried through
// unchanged either way — it is never discarded, and never overwritten by
// the canonical unit.
func (c *Classifier) Classify(canonicalKey string, mention domain.RawLabMention, confidence float64) domain.ResolvedLabResult {
	result := domain.ResolvedLabResult{
		TestName:    mention.Label,
		Value:       mention.Value,
		Unit:        mention.Unit,
		Status:      domain.LabStatusUnknown,
		NormalRange: domain.NormalRangeUnavailable,
		Confidence:  confidence,
	}

	entry, ok := c.table.Entry(canonicalKey)
	if ok {
		result.TestName = entry.DisplayName
		switch {
		case mention.Value < entry.Low:
			result.Status = domain.LabStatusLow
		case mention.Value > entry.High:
			result.Status = domain.LabStatusHigh
		default:
			result.Status = domain.LabStatusNormal
		}
		result.NormalRange = formatRange(entry.Low, entry.High)
	}

	result.Highlight = result.Status.Highlight()
	return result
}

// formatRange renders "{low}–{high}" with an en-dash and natural number
// formatting (no forced decimal padding).
func formatRange(low, high float64) string {
	return formatNumber(low) + "–" + formatNumber(high)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
