// Package textutil provides small text cleanup helpers shared by the XMLTV
// loader and the report writers: whitespace normalization for display names
// and token sanitization for filenames derived from lineup labels.
package textutil
