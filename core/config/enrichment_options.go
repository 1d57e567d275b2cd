// ABOUTME: Enrichment configuration for service-level control of optional prefetching
// ABOUTME: Provides functional options independent of HTTP request structures

package config

// EnrichmentConfig controls which enrichment prefetches run in the
// background after a restaurant lookup
type EnrichmentConfig struct {
	// PrefetchMetadata controls whether website metadata is pre-warmed
	PrefetchMetadata bool

	// PrefetchColors controls whether photo colors are pre-warmed
	PrefetchColors bool
}

// DefaultEnrichmentConfig returns the default configuration with all
// prefetches enabled
func DefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{
		PrefetchMetadata: true,
		PrefetchColors:   true,
	}
}

// EnrichmentOption is a functional option for configuring enrichment
type EnrichmentOption func(*EnrichmentConfig)

// WithMetadataPrefetch enables or disables metadata pre-warming
func WithMetadataPrefetch(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.PrefetchMetadata = enabled
	}
}

// WithColorPrefetch enables or disables photo color pre-warming
func WithColorPrefetch(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.PrefetchColors = enabled
	}
}

// ApplyEnrichmentOptions builds a config from the defaults plus options
func ApplyEnrichmentOptions(opts ...EnrichmentOption) EnrichmentConfig {
	cfg := DefaultEnrichmentConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
