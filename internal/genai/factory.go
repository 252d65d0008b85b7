package genai

import (
	"fmt"

	"shiksha/internal/config"
	"shiksha/internal/port"
)

// ProviderFactory is a function that creates a ContentGenerator from a provider config.
type ProviderFactory func(cfg *config.GenAIProviderConfig) (port.ContentGenerator, error)

// registry of generator provider factories, populated explicitly via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a generator provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewGenerator creates a ContentGenerator from a provider config using the registered factory.
func NewGenerator(cfg *config.GenAIProviderConfig) (port.ContentGenerator, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown generation provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
