// Package: rdynamic/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - sortNeighbors = false (neighbors stay in emission order)
//   - validate      = false

package builder

// builderConfig aggregates all knobs used by BuildGraph and constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Sort every neighbor list ascending after all constructors ran.
	sortNeighbors bool
	// Run adjacency.Validate on the final list.
	validate bool
}

// newBuilderConfig constructs a config with defaults and applies all options
// in order (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
