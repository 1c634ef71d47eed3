package narrative

import (
	"fmt"

	"medreportz/internal/config"
	"medreportz/internal/port"
)

// ProviderFactory is a function that creates a SummaryGenerator from a provider config.
type ProviderFactory func(cfg *config.NarrativeProviderConfig) (port.SummaryGenerator, error)

// registry of summary provider factories, populated explicitly via
// RegisterProvider at startup.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a summary provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a SummaryGenerator from a provider config using the registered factory.
func NewGenerator(cfg *config.NarrativeProviderConfig) (port.SummaryGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown summary provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
