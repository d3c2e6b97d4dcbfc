// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodCirculant is the canonical name for the Circulant constructor.
	MethodCirculant = "Circulant"
	// MethodAntiprism is the canonical name for the Antiprism constructor.
	MethodAntiprism = "Antiprism"
	// MethodPlanar3Tree is the canonical name for the Planar3Tree constructor.
	MethodPlanar3Tree = "Planar3Tree"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinCompleteNodes is the smallest size accepted by Complete (K1 has no edges).
const MinCompleteNodes = 1

// MinWheelNodes is the smallest wheel: a 3-cycle rim plus one hub.
const MinWheelNodes = 4

// MinCirculantNodes is the smallest circulant graph with at least one jump.
const MinCirculantNodes = 2

// MinAntiprismOrder is the smallest antiprism (the octahedron, n=3).
const MinAntiprismOrder = 3

// MinPlanar3TreeIterations is the iteration count that yields the seed K3.
const MinPlanar3TreeIterations = 0
