// Package redistrict (module github.com/nunomota/redistrict) is a
// greedy, single-school-at-a-time optimizer for reducing per-student
// funding inequality across a state's school districts.
//
// Given a graph of schools (bordering relation), their enrollment and
// funding, and an initial district assignment, the engine repeatedly
// reassigns a single border school between two adjacent districts
// whenever doing so moves the district under examination closer to the
// state-wide per-student funding mean (the other district's distance
// from the mean is not checked), until no improving move remains or an
// early-stop monitor judges the run has gone stale.
//
// Package layout:
//
//	core/       — thread-safe generic graph substrate (school adjacency)
//	gridgraph/  — 2D grid to graph conversion, used by driver's synthetic fixtures
//	entity/     — School, District, EntityGraph
//	lazyheap/   — lazy-deletion max-heap keyed by distance from the state mean
//	holdout/    — two-queue deferral for districts with no improving move
//	earlystop/  — streaming termination monitor
//	lookup/     — incremental border/edge-multiplicity index driving the engine
//	redistrict/ — the inequality function, move-picking, and the main loop
//	metrics/    — per-run history capture and JSON rendering
//	driver/     — external input shapes, single and batch run entry points
//	cmd/redistrict/ — CLI demo over a synthetic grid layout
//
//	go get github.com/nunomota/redistrict
package redistrict
