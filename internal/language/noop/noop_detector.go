package noop

import (
	"context"

	"medreportz/internal/domain"
	"medreportz/internal/port"
)

type noopDetector struct{}

// NewNoopDetector creates a LanguageDetector that always reports the
// "unknown" sentinel. Used when no detection collaborator is wired in.
func NewNoopDetector() port.LanguageDetector {
	return noopDetector{}
}

func (noopDetector) Detect(_ context.Context, _ string) (string, error) {
	return domain.LanguageUnknown, nil
}
