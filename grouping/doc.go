// Package grouping partitions generic slices two ways.
//
// Split, SplitFunc and SplitSeq cut a sequence into runs around separator
// elements. Separators are named by value (Split) or by predicate
// (SplitFunc, SplitSeq); they terminate the current run and never appear in
// the output. The final run is always emitted, so a result has at least one
// run and an empty input produces a single empty run. SplitSeq applies the
// same contract to an incrementally-produced iter.Seq, yielding each run as
// soon as its separator arrives, which makes it usable on sources that are
// never fully materialized.
//
// InGroups and InGroupsFunc deal a sequence into exactly N groups of
// near-equal size in one left-to-right pass. When the length does not
// divide evenly, the leading groups take one extra element and the
// remaining groups are padded with a fill value; GroupOptions selects the
// fill or disables padding. Group counts outside 1..len(s) are rejected
// with ErrGroupCount.
//
// All functions are pure: inputs are never mutated and every run or group
// is freshly allocated, so calls are safe from any number of goroutines.
// Each operation is a single O(n) pass.
package grouping
