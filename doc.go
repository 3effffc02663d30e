// Package seqx is a small toolkit of generic sequence operations for Go
// slices: the ordered-collection conveniences the standard library leaves
// out.
//
// 🚀 What is seqx?
//
//	Pure functions over ordered sequences. Every operation runs in a single
//	left-to-right pass, never mutates its input, and returns freshly
//	allocated output that does not alias the input's backing array. Because
//	no call observes or affects another, any function may be used from any
//	number of goroutines without coordination.
//
// ✨ What's inside?
//
//   - access/   — positional slicing relative to either end (From, To),
//     membership difference (Without), and tail shortening with an explicit
//     "too short" signal distinct from an empty result (Shorten)
//   - grouping/ — partitioning into runs around separator values or
//     predicates (Split, SplitFunc, SplitSeq) and fixed-count grouping with
//     a remainder padding policy (InGroups, InGroupsFunc)
//   - sentence/ — natural-language joining with configurable connector
//     words, strict option-key validation, and optional locale overlays
//     loaded from YAML (ToSentence)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqx/access"
//
//	tail := access.From([]string{"a", "b", "c", "d"}, -2) // ["c", "d"]
//
// Each subpackage documents its exact contracts, edge cases and complexity
// in its own doc.go; runnable examples live in the example_test.go files.
//
//	go get github.com/katalvlaran/seqx
package seqx
