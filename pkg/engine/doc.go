// Package engine implements the reconciliation walker and worker pool: it
// traverses the source tree (and, when
// configured, the target tree) and drives pkg/mirror's decision functions
// and primitives over a bounded pool of concurrent workers.
package engine
