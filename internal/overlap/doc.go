// Package overlap computes cross-lineup channel overlap statistics.
//
// Compute produces the N×N intersection-count and Jaccard similarity
// matrices for an ordered lineup collection; Uniques resolves the channels
// each lineup holds that no peer does. Both are pure functions of the
// collection's set snapshots and deterministic for a given input order,
// which keeps the emitted reports byte-stable across runs.
package overlap
