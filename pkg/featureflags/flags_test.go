package featureflags

import (
	"context"
	"os"
	"testing"
)

func TestEnvManager_DefaultsToEnabled(t *testing.T) {
	os.Clearenv()
	m := NewEnvManager("")

	if !m.IsEnabled(context.Background(), PhotoColorEnabled) {
		t.Error("flags should default to enabled when env var is unset")
	}
}

func TestEnvManager_EnvDisables(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"false", false},
		{"0", false},
		{"disabled", false},
		{"true", true},
		{"1", true},
		{"anything-else", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			os.Clearenv()
			os.Setenv("FEATURE_PHOTO_COLOR_ENABLED", tt.value)

			m := NewEnvManager("")
			if got := m.IsEnabled(context.Background(), PhotoColorEnabled); got != tt.want {
				t.Errorf("IsEnabled with %q = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEnvManager_OverrideBeatsEnv(t *testing.T) {
	os.Clearenv()
	os.Setenv("FEATURE_PHOTO_COLOR_ENABLED", "true")

	m := NewEnvManager("")
	m.SetEnabled(PhotoColorEnabled, false)

	if m.IsEnabled(context.Background(), PhotoColorEnabled) {
		t.Error("explicit override should beat the env var")
	}
}

func TestEnvManager_CustomPrefix(t *testing.T) {
	os.Clearenv()
	os.Setenv("MM_RESPONSE_CACHE_ENABLED", "false")

	m := NewEnvManager("MM_")
	if m.IsEnabled(context.Background(), ResponseCacheEnabled) {
		t.Error("custom prefix env var should be honored")
	}
}

func TestStaticManager(t *testing.T) {
	m := NewStaticManager(map[FeatureFlag]bool{SiteMetadataEnabled: true})
	ctx := context.Background()

	if !m.IsEnabled(ctx, SiteMetadataEnabled) {
		t.Error("configured flag should be enabled")
	}
	if m.IsEnabled(ctx, PhotoColorEnabled) {
		t.Error("unconfigured flag should be disabled")
	}

	m.SetEnabled(PhotoColorEnabled, true)
	if !m.IsEnabled(ctx, PhotoColorEnabled) {
		t.Error("SetEnabled should take effect")
	}
}

func TestAllEnabled(t *testing.T) {
	m := AllEnabled()
	for flag, enabled := range m.GetAllFlags() {
		if !enabled {
			t.Errorf("flag %s should be enabled", flag)
		}
	}
	if len(m.GetAllFlags()) != len(allFlags) {
		t.Errorf("GetAllFlags returned %d flags, want %d", len(m.GetAllFlags()), len(allFlags))
	}
}
