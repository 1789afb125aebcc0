// Package lookup maintains the indices the redistricting engine reads
// on every iteration: which district a school belongs to, which
// schools in a district touch a different district (its border), how
// many edges run between any two districts, and how recently each
// district's local neighborhood last changed.
//
// All four indices are built once from an initial assignment and then
// maintained incrementally: AssignSchool moves a single school between
// two districts and updates exactly the rows/sets touched by that
// school's neighbor edges, in O(deg(sid)) time, rather than
// recomputing anything from scratch. The district-to-district index
// (the edge-multiplicity matrix) assumes a fixed set of districts for
// the lifetime of a Lookup — identity-preserving moves between
// existing districts, not district creation or deletion — since the
// only caller (the greedy engine) never empties a district below its
// configured minimum membership.
//
// Complexity: New is O(V+E) over the entity graph; every read query is
// O(1) or O(deg) in the district's member count; AssignSchool is
// O(deg(sid)).
//
// New assumes every district named in its assignment argument starts
// empty: it calls District.AddSchool once per school without checking
// for prior membership, the same unchecked-precondition contract
// District.AddSchool itself documents. Build a Lookup once per fresh
// set of entity.District values — for a batch of independent runs,
// that means a fresh EntityGraph per run, not reusing one a prior
// Lookup already populated.
package lookup
