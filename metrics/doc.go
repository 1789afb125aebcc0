// Package metrics records a run's history as it happens and renders it
// to the JSON shape the rest of the toolchain (dashboards, archived
// run comparisons) expects: the inequality trajectory, the schools
// actually redistricted, and the final per-district and state-wide
// funding figures.
package metrics
