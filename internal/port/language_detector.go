package port

import "context"

// LanguageDetector abstracts language identification of the report text.
// The tag is metadata only; it never alters extraction.
type LanguageDetector interface {
	Detect(ctx context.Context, text string) (string, error)
}
