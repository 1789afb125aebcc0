// Package earlystop provides a streaming termination monitor for
// iterative minimization. Feed it a metric after each iteration;
// Update reports whether the run has gone stale for long enough to
// stop.
package earlystop
