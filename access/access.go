package access

// Without returns the elements of s, in original order, whose values do not
// appear among unwanted. Duplicates in s are judged one by one, so every
// copy of an unwanted value vanishes and every copy of a wanted value stays:
//
//	Without([]string{"David", "Rafael", "Aaron", "Todd"}, "Aaron", "Todd")
//	// → [David Rafael]
//
// No error conditions exist; empty inputs yield an empty result. The result
// is freshly allocated, never nil, and never aliases s.
//
// Complexity: O(len(s) + len(unwanted)) time, O(len(unwanted)) extra memory.
func Without[S ~[]T, T comparable](s S, unwanted ...T) S {
	drop := make(map[T]struct{}, len(unwanted))
	for _, v := range unwanted {
		drop[v] = struct{}{}
	}

	kept := make(S, 0, len(s))
	for _, v := range s {
		if _, skip := drop[v]; !skip {
			kept = append(kept, v)
		}
	}

	return kept
}

// From returns the suffix of s beginning at position. A negative position
// counts from the end (-1 names the last element) and resolves to
// len(s)+position before clamping. After resolution, a position at or past
// the end yields an empty result and a position before the start clamps to
// 0, returning a copy of the whole slice:
//
//	From([]string{"a", "b", "c", "d"}, 2)   // [c d]
//	From([]string{"a", "b", "c", "d"}, -2)  // [c d]
//	From([]string{"a", "b", "c", "d"}, 9)   // []
//	From([]string{"a", "b", "c", "d"}, -9)  // [a b c d]
//
// Complexity: O(len(result)).
func From[S ~[]T, T any](s S, position int) S {
	start := position
	if start < 0 {
		start += len(s)
	}
	if start >= len(s) {
		return make(S, 0)
	}
	if start < 0 {
		start = 0
	}

	out := make(S, len(s)-start)
	copy(out, s[start:])

	return out
}

// To returns the prefix of s ending at and including position, i.e. the
// first position+1 elements, clamped to the whole slice when position
// points past the end. Unlike From, a negative position is never resolved
// from the end: every negative position yields an empty result. The
// asymmetry is deliberate, so To(s, p) followed by From(s, p+1)
// reconstructs s only on the non-negative domain:
//
//	To([]string{"a", "b", "c"}, 1)   // [a b]
//	To([]string{"a", "b", "c"}, 9)   // [a b c]
//	To([]string{"a", "b", "c"}, -1)  // []
//
// Complexity: O(len(result)).
func To[S ~[]T, T any](s S, position int) S {
	if position < 0 {
		return make(S, 0)
	}

	end := len(s)
	if position < end {
		end = position + 1
	}

	out := make(S, end)
	copy(out, s[:end])

	return out
}

// Shorten drops the trailing amount elements of s. The bool return
// separates three outcomes, decided by comparing length against amount:
//
//	len(s) <  amount → (nil, false): too short, no result exists
//	len(s) == amount → (empty, true): a legitimate empty result
//	len(s) >  amount → (prefix, true): all but the last amount elements
//
// The false case is an absence signal, not an error; callers branch on ok
// exactly as with a map lookup, and must not conflate it with the empty
// case. A negative amount drops nothing. Dropping one trailing element,
// Shorten(s, 1), is the most common call.
//
// Complexity: O(len(result)).
func Shorten[S ~[]T, T any](s S, amount int) (S, bool) {
	if amount < 0 {
		amount = 0
	}
	if len(s) < amount {
		return nil, false
	}

	out := make(S, len(s)-amount)
	copy(out, s[:len(s)-amount])

	return out, true
}
