// ABOUTME: Feature flag management for gradual rollout of optional endpoints
// ABOUTME: Provides interface-based feature toggling with env and static backends

package featureflags

import (
	"context"
	"os"
	"strings"
	"sync"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// SiteMetadataEnabled enables the website metadata endpoint
	SiteMetadataEnabled FeatureFlag = "site_metadata_enabled"

	// PhotoColorEnabled enables the photo color extraction endpoint
	PhotoColorEnabled FeatureFlag = "photo_color_enabled"

	// ResponseCacheEnabled enables the GET response cache middleware
	ResponseCacheEnabled FeatureFlag = "response_cache_enabled"

	// RegionListingEnabled enables the region list endpoint
	RegionListingEnabled FeatureFlag = "region_listing_enabled"
)

// allFlags lists every defined flag. Flags are on unless explicitly
// disabled.
var allFlags = []FeatureFlag{
	SiteMetadataEnabled,
	PhotoColorEnabled,
	ResponseCacheEnabled,
	RegionListingEnabled,
}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(ctx context.Context, flag FeatureFlag) bool

	// SetEnabled sets a feature flag's state (for testing)
	SetEnabled(flag FeatureFlag, enabled bool)

	// GetAllFlags returns the state of all flags
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager implements Manager using environment variables. A flag
// named photo_color_enabled is controlled by FEATURE_PHOTO_COLOR_ENABLED
// and defaults to enabled when the variable is unset.
type EnvManager struct {
	mu        sync.RWMutex
	overrides map[FeatureFlag]bool
	prefix    string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{
		overrides: make(map[FeatureFlag]bool),
		prefix:    prefix,
	}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	if enabled, ok := m.overrides[flag]; ok {
		m.mu.RUnlock()
		return enabled
	}
	m.mu.RUnlock()

	envKey := m.prefix + strings.ToUpper(string(flag))
	value := strings.ToLower(os.Getenv(envKey))
	if value == "" {
		return true
	}
	return value != "false" && value != "0" && value != "disabled"
}

// SetEnabled sets a feature flag's state (mainly for testing)
func (m *EnvManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overrides[flag] = enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	ctx := context.Background()
	flags := make(map[FeatureFlag]bool, len(allFlags))
	for _, flag := range allFlags {
		flags[flag] = m.IsEnabled(ctx, flag)
	}
	return flags
}

// StaticManager implements Manager with static configuration
type StaticManager struct {
	flags map[FeatureFlag]bool
	mu    sync.RWMutex
}

// NewStaticManager creates a manager with predefined flag states
func NewStaticManager(flags map[FeatureFlag]bool) *StaticManager {
	if flags == nil {
		flags = make(map[FeatureFlag]bool)
	}
	return &StaticManager{
		flags: flags,
	}
}

// AllEnabled creates a manager with every defined flag on.
func AllEnabled() *StaticManager {
	flags := make(map[FeatureFlag]bool, len(allFlags))
	for _, flag := range allFlags {
		flags[flag] = true
	}
	return NewStaticManager(flags)
}

// IsEnabled checks if a feature flag is enabled
func (m *StaticManager) IsEnabled(ctx context.Context, flag FeatureFlag) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.flags[flag]
}

// SetEnabled sets a feature flag's state
func (m *StaticManager) SetEnabled(flag FeatureFlag, enabled bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flags[flag] = enabled
}

// GetAllFlags returns all flag states
func (m *StaticManager) GetAllFlags() map[FeatureFlag]bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make(map[FeatureFlag]bool)
	for k, v := range m.flags {
		result[k] = v
	}
	return result
}
