// Package pipeline implements the extraction-and-normalization core: raw
// report text goes through normalization, field extraction, alias
// resolution, range classification, and record assembly, in that order.
// Every stage is a pure function of its input and the startup-time
// reference table; data only flows forward.
package pipeline

import (
	"regexp"
	"strings"
	"unicode"

	"medreportz/internal/reference"
)

var (
	urlPattern   = regexp.MustCompile(`http\S+`)
	emailPattern = regexp.MustCompile(`\S+@\S+`)
	// Conservative textual subset: word chars, whitespace, and . , : / ( ) % -
	// Everything else is OCR garbage and becomes a space.
	charsetPattern = regexp.MustCompile(`[^\w\s.,:/()%\-]`)
	hspacePattern  = regexp.MustCompile(`[ \t]+`)
	blanksPattern  = regexp.MustCompile(`\n{2,}`)
)

// Normalizer cleans raw extracted text into the form the extractor scans.
// The repair table comes from the reference data so new OCR artifacts are a
// data change, not a code change.
type Normalizer struct {
	repairs []reference.Repair
}

// NewNormalizer creates a Normalizer with the given artifact repairs.
func NewNormalizer(repairs []reference.Repair) *Normalizer {
	return &Normalizer{repairs: repairs}
}

// Normalize strips non-ASCII noise, URL- and email-like substrings, and
// characters outside the safe subset, collapses whitespace runs, and applies
// the artifact repairs. It is idempotent and never fails; a hopeless input
// degrades to an empty string.
//
// The step order matters: repairs run after whitespace collapsing so spaced
// artifact variants are already in single-space form, and a repair may
// legally reintroduce characters (µ, ^) the earlier steps strip — a second
// pass reduces those back to the artifact and repairs them again, landing on
// the same output.
func (n *Normalizer) Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = stripNonASCII(s)
	s = urlPattern.ReplaceAllString(s, "")
	s = emailPattern.ReplaceAllString(s, "")
	s = charsetPattern.ReplaceAllString(s, " ")
	s = hspacePattern.ReplaceAllString(s, " ")
	s = blanksPattern.ReplaceAllString(s, "\n")
	for _, r := range n.repairs {
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return strings.TrimSpace(s)
}

func stripNonASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
}
