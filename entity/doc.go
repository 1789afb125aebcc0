// Package entity defines the two record types the redistricting engine
// operates over — School and District — plus EntityGraph, which pairs
// their bookkeeping with a school-to-school adjacency graph.
//
// School is an immutable fact record: an NCES identifier, a student
// count, and a funding amount. District is a mutable aggregate: a set
// of member school IDs plus totals maintained incrementally as schools
// are added to or removed from it, so callers never need to re-sum a
// district's membership to read its current funding-per-student ratio.
//
// EntityGraph owns both catalogs (schools and districts) and the
// neighbor relation between schools, backed by a *core.Graph. Two
// schools are neighbors if either side of the input data names the
// other; EntityGraph stores the relation as a single undirected edge,
// so asymmetric input is resolved by construction rather than by a
// documented convention at a higher layer.
package entity
