// Package report arranges engine results into row-oriented tables and
// serializes them.
//
// Assembly and serialization are split on purpose: the engine hands over
// plain values, this package fixes their tabular arrangement, and the
// writers (CSV, aligned text, keep/remove text) only ever format what they
// are given. All output is deterministic for a given input ordering.
package report
