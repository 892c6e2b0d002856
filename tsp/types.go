// Package tsp provides option and error definitions plus the Result type
// for the exact travelling-salesman solver.
package tsp

import "errors"

// Sentinel errors for TSP solving.
var (
	// ErrUnweighted is returned for an unweighted graph.
	ErrUnweighted = errors.New("tsp: graph is unweighted")

	// ErrStartRange is returned when the start vertex is outside the graph.
	ErrStartRange = errors.New("tsp: start vertex out of range")

	// ErrNegativeWeight is returned when the graph has a negative edge.
	ErrNegativeWeight = errors.New("tsp: negative edge weight")

	// ErrTooManyVertices is returned when the vertex count exceeds
	// MaxVertices; the subset DP is exponential in V by nature.
	ErrTooManyVertices = errors.New("tsp: vertex count exceeds exact-solver bound")

	// ErrNoTour is returned when no Hamiltonian cycle exists.
	ErrNoTour = errors.New("tsp: no tour visits every vertex exactly once")
)

// MaxVertices bounds the exact solver; beyond 2^20 subset masks the dense
// DP table stops fitting in reasonable memory.
const MaxVertices = 20

// Result holds an optimal tour.
type Result struct {
	// Tour is the vertex sequence, starting and ending at the start
	// vertex: len(Tour) == VertexCount+1.
	Tour []int

	// Cost is the total weight of the cycle.
	Cost int64
}

// Option configures a SolveExact call.
type Option func(*Options)

// Options holds the tuning parameters of one solve.
type Options struct {
	// SparseStates switches the DP table from a dense array to a hash
	// map keyed by (subset, endpoint). On graphs far from complete most
	// subset states are unreachable and never stored, trading per-lookup
	// constant factors for memory proportional to reachable states only.
	SparseStates bool
}

// DefaultOptions returns Options with the dense DP table.
func DefaultOptions() Options {
	return Options{SparseStates: false}
}

// WithSparseStates selects the hashed DP table.
func WithSparseStates() Option {
	return func(o *Options) { o.SparseStates = true }
}
