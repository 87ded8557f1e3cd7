// Package lineup models per-provider channel catalogs for overlap analysis.
//
// A Lineup maps opaque channel identifiers to immutable Channel values built
// from loader records; blank identifiers are dropped at construction and the
// channel-identifier set is re-derived on every query. A Collection fixes
// the deterministic lineup ordering that downstream matrices and reports
// depend on.
package lineup
