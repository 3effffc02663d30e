// Package access provides positional access helpers for generic slices:
// suffix and prefix extraction with end-relative indexing (From, To),
// membership difference (Without), and tail shortening with an explicit
// absence signal (Shorten).
//
// Position convention: a negative position p on a sequence of length n
// resolves to index n+p before bounds clamping, so -1 names the last
// element. Only From applies this convention. To returns an empty result
// for every negative position; the asymmetry is deliberate and pinned by
// tests as documented behavior.
//
// All functions are pure and total: inputs are never mutated, results never
// alias the input's backing array, empty results are non-nil, and no
// function returns an error. Shorten signals "too short" through a comma-ok
// second return instead, keeping it distinguishable from a legitimate empty
// result. Every call is a single O(n) pass, safe for concurrent use.
package access
