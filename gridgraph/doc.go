// Package gridgraph treats a 2D grid of integer cell values as a graph and
// is how driver.SyntheticState fabricates deterministic, guaranteed-connected
// school layouts for demos and tests: raw grid cells become core.Graph
// vertices, ConnectedComponents finds any land split the synthetic layout's
// water gaps introduced, and ExpandIsland bridges the split back together
// with the fewest water-to-land conversions before the layout is handed to
// entity.NewEntityGraph.
//
// Cells with value < LandThreshold are "water"; cells with value >=
// LandThreshold are "land". ConnectedComponents and ExpandIsland only reason
// about land; ToCoreGraph converts every cell regardless of value, leaving
// water-edge filtering to the caller.
package gridgraph
