// Package tsp solves the travelling-salesman problem exactly with
// Held–Karp dynamic programming over vertex subsets.
//
// What
//
//   - SolveExact(g, start) returns a minimum-weight Hamiltonian cycle
//     through every vertex of a weighted graph.Graph, as the vertex
//     sequence start…start and its total cost.
//   - Directed graphs are honored; undirected edges work both ways;
//     parallel edges contribute their lightest weight.
//   - WithSparseStates swaps the dense DP array for a hash-map table so
//     memory tracks reachable (subset, endpoint) states only — the win is
//     on graphs far from complete, where most subsets admit no walk.
//
// Why a pluggable state table
//
//	The DP engine only ever asks get/put of cost(mask, j); array and map
//	storage are interchangeable behind that seam, the same injection
//	pattern the indexed heap uses for its element index.
//
// Complexity (V = vertices)
//
//   - Time: O(2^V · V^2)
//   - Memory: O(2^V · V) dense; O(reachable states) sparse
//   - V is capped at MaxVertices; the solver refuses larger inputs.
//
// Errors
//
//   - graph.ErrGraphNil, ErrUnweighted, ErrStartRange, ErrNegativeWeight,
//     ErrTooManyVertices.
//   - ErrNoTour when no Hamiltonian cycle exists.
package tsp
