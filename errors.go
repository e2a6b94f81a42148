package pso

import "errors"

// Construction-time errors.  All of them are unrecoverable for the instance
// being built - the caller must reconstruct with corrected inputs.  Objective
// evaluation errors are not part of this set; they pass through unchanged.
var (
	// ErrInvalidBounds reports a malformed search space (zero dimensions,
	// mismatched min/max vectors, or min >= max in some dimension).
	ErrInvalidBounds = errors.New("pso: invalid bounds")

	// ErrInvalidTopology reports a malformed informant structure (population
	// size < 1 or an unknown topology kind).
	ErrInvalidTopology = errors.New("pso: invalid topology")

	// ErrInvalidConfig reports out-of-range or inconsistent algorithm
	// parameters (wMin > wMax, maxIterations <= 0, population size < 1, ...).
	ErrInvalidConfig = errors.New("pso: invalid configuration")
)
