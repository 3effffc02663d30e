package grouping

import (
	"iter"
)

// Split partitions s into runs around elements equal to separator. Each
// match closes the current run and is discarded; the final run is always
// appended after the pass, so the result holds at least one run:
//
//	Split([]string{"a", "b", "c", "d", "c", "e"}, "c")
//	// → [[a b] [d] [e]]
//	Split([]int{}, 1)
//	// → [[]]
//
// Adjacent separators produce empty interior runs, and a leading or
// trailing separator produces an empty first or last run. Element order
// inside runs matches the input. Every run is freshly allocated.
//
// Complexity: O(len(s)).
func Split[S ~[]T, T comparable](s S, separator T) []S {
	return SplitFunc(s, func(v T) bool { return v == separator })
}

// SplitFunc is Split with the separator named by predicate: elements for
// which isSeparator returns true terminate the current run and are
// discarded. Run semantics match Split exactly. A nil isSeparator panics.
//
// Complexity: O(len(s)) plus one isSeparator call per element.
func SplitFunc[S ~[]T, T any](s S, isSeparator func(T) bool) []S {
	runs := make([]S, 0, 1)
	run := make(S, 0)
	for _, v := range s {
		if isSeparator(v) {
			runs = append(runs, run)
			run = make(S, 0)

			continue
		}
		run = append(run, v)
	}

	return append(runs, run)
}

// SplitSeq applies the SplitFunc contract to an incrementally-produced
// sequence, yielding each run as soon as its terminating separator arrives
// and the final run once src is exhausted. Because runs are emitted on the
// fly, SplitSeq works on sources that are never fully materialized; a
// consumer that stops ranging early stops the source as well.
//
//	runs := grouping.SplitSeq(lines, isBlank)
//	for run := range runs { ... }
//
// Each yielded run is freshly allocated and owned by the consumer. A nil
// isSeparator panics.
//
// Complexity: O(1) elements of lookahead; memory bounded by the longest run.
func SplitSeq[T any](src iter.Seq[T], isSeparator func(T) bool) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		run := make([]T, 0)
		for v := range src {
			if isSeparator(v) {
				if !yield(run) {
					return
				}
				run = make([]T, 0)

				continue
			}
			run = append(run, v)
		}
		yield(run)
	}
}
