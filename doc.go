// Package heldkarp is an exact solver for the symmetric Travelling Salesman
// Problem over TSPLIB95 instances, built on the Held–Karp branch-and-bound
// method with Lagrangian-relaxed 1-tree lower bounds.
//
// The repository is organised as focused subpackages:
//
//   - core — shared types: integer distances and the saturating fixed-point
//     ScaledDistance arithmetic, undirected edges and tours, and TSPLIB95
//     instance metadata.
//   - symmat — memory-compact lower-triangular storage for symmetric edge
//     data (distances, scaled distances, edge states) with O(1) access,
//     branch-elided fast paths and a chunked parallel builder.
//   - tsplib — TSPLIB95 instance loader: metadata header, NODE_COORD_SECTION
//     data, and the six supported distance metrics (EUC_2D, MAX_2D, MAN_2D,
//     CEIL_2D, ATT, GEO) with bit-exact TSPLIB rounding.
//   - solver — the numerical core built on core's scaled arithmetic:
//     minimum 1-trees over penalty-adjusted costs, the subgradient
//     lower-bound loop, and the parallel depth-first branch-and-bound
//     search with a shared incumbent tour.
//   - cmd/solve — the command-line driver.
//
// Determinism is a design goal throughout: all penalty arithmetic is carried
// out in saturating scaled integers, every selection step breaks ties by
// vertex index, and a single-worker run reproduces the same optimal edge set
// across invocations. Multi-worker runs return the same optimal cost.
package heldkarp
