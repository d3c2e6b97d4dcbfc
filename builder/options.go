// Package: rdynamic/builder
//
// options.go - functional options for the builder package.

package builder

// BuilderOption customizes BuildGraph by mutating a builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithSortedNeighbors sorts every neighbor list ascending once all
// constructors ran, matching the order produced by adjacency.FromMatrix.
func WithSortedNeighbors() BuilderOption {
	return func(c *builderConfig) { c.sortNeighbors = true }
}

// WithValidation checks the final list with adjacency.Validate and reports
// violations as ErrConstructFailed.
func WithValidation() BuilderOption {
	return func(c *builderConfig) { c.validate = true }
}
