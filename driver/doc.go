// Package driver is the outermost application layer: it turns the
// external, data-layer-shaped inputs (SchoolInfo, DistrictInfo,
// Assignment) into an entity.EntityGraph, runs the engine once via Run
// or repeatedly via ExpectableRun to characterize run-to-run variance,
// and can synthesize a deterministic EntityGraph from a rectangular
// grid when no real data source is available.
package driver
