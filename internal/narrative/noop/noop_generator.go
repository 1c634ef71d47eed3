// Package noop provides a summary generator that produces no prose. Useful
// for local development and deployments without an API key, where the
// structured record alone is the product.
package noop

import (
	"context"

	"medreportz/internal/config"
	"medreportz/internal/port"
)

type noopGenerator struct{}

// NewGenerator creates a SummaryGenerator that always returns an empty summary.
func NewGenerator(_ *config.NarrativeProviderConfig) port.SummaryGenerator {
	return noopGenerator{}
}

func (noopGenerator) Generate(_ context.Context, _ string) (string, error) {
	return "", nil
}
