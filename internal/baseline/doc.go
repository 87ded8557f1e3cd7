// Package baseline elects a deduplication baseline per comparison group and
// splits every other member's channels into duplicates of that baseline
// (remove candidates) and channels unique against it (keep candidates).
//
// The primary is the group member with the most channels; equal counts keep
// the member listed first. A configured base lineup can be pinned to
// keep-all regardless of size without disturbing the election the rest of
// its group is measured against.
package baseline
