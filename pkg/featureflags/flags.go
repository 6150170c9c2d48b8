// ABOUTME: Feature flags toggling the optional API surfaces
// ABOUTME: Flags default on and are switched off through FEATURE_* environment variables

package featureflags

import (
	"os"
	"strconv"
	"strings"
)

// FeatureFlag represents a single feature flag
type FeatureFlag string

// Defined feature flags
const (
	// Search exposes GET /api/buscar
	Search FeatureFlag = "search"

	// Download exposes GET /api/download
	Download FeatureFlag = "download"

	// Metrics exposes GET /metrics
	Metrics FeatureFlag = "metrics"
)

// All lists every defined flag
var All = []FeatureFlag{Search, Download, Metrics}

// Manager defines the interface for feature flag management
type Manager interface {
	// IsEnabled checks if a feature flag is enabled
	IsEnabled(flag FeatureFlag) bool

	// GetAllFlags returns the state of every defined flag
	GetAllFlags() map[FeatureFlag]bool
}

// EnvManager reads flags from PREFIX + upper-cased flag name. Unset or
// unparseable values leave the flag enabled.
type EnvManager struct {
	prefix string
}

// NewEnvManager creates a new environment-based feature flag manager
func NewEnvManager(prefix string) *EnvManager {
	if prefix == "" {
		prefix = "FEATURE_"
	}
	return &EnvManager{prefix: prefix}
}

// IsEnabled checks if a feature flag is enabled
func (m *EnvManager) IsEnabled(flag FeatureFlag) bool {
	value := strings.TrimSpace(os.Getenv(m.prefix + strings.ToUpper(string(flag))))
	switch strings.ToLower(value) {
	case "", "on", "enabled":
		return true
	case "off", "disabled":
		return false
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return true
	}
	return enabled
}

// GetAllFlags returns the state of all defined flags
func (m *EnvManager) GetAllFlags() map[FeatureFlag]bool {
	result := make(map[FeatureFlag]bool, len(All))
	for _, flag := range All {
		result[flag] = m.IsEnabled(flag)
	}
	return result
}
