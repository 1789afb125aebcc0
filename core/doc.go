// Package core is the thread-safe in-memory graph substrate the rest
// of the module builds on: entity.EntityGraph stores the school
// neighbor relation as a single undirected core.Graph, and
// gridgraph.ToCoreGraph converts a synthetic grid into one.
//
// A Graph composes a handful of independent behaviors via
// GraphOption: directed vs. undirected edges (WithDirected), global
// vs. per-edge orientation in mixed graphs (WithMixedEdges +
// EdgeOption.WithEdgeDirected), weights (WithWeighted), parallel
// edges (WithMultiEdges), and self-loops (WithLoops). Vertex and
// edge+adjacency state are guarded by separate sync.RWMutex values
// (muVert, muEdgeAdj) so read-heavy adjacency queries don't contend
// with vertex lifecycle operations.
//
// Enumeration methods (Vertices, Edges, NeighborIDs) return sorted
// slices so callers get reproducible output across runs. AddVertex,
// RemoveVertex, AddEdge, and RemoveEdge are all safe for concurrent
// use; this module's engine never actually calls them concurrently
// (redistrict.Run mutates from a single goroutine per run), but the
// locking costs nothing extra to keep.
package core
