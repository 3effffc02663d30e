package grouping

import (
	"fmt"
)

// InGroups deals s into exactly number groups in one left-to-right pass
// with no overlap. With n = len(s), q = n/number and r = n%number, the
// first r groups take q+1 elements and the remaining number-r groups take
// q. When r > 0 the q-sized groups are padded with one trailing fill value
// so every group shows q+1 elements; GroupOptions selects the fill
// (default: zero value of T) or, with NoFill, keeps short groups at their
// natural size. When r == 0 no padding happens under any options. A nil
// opts means DefaultGroupOptions.
//
//	nums := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}
//	groups, _ := InGroups(nums, 3, nil)
//	// → [[1 2 3 4] [5 6 7 ""] [8 9 10 ""]]
//
// number must lie in 1..len(s); anything else returns ErrGroupCount, so an
// empty s always errors. Every group is freshly allocated.
//
// Complexity: O(len(s)).
func InGroups[S ~[]T, T any](s S, number int, opts *GroupOptions[T]) ([]S, error) {
	n := len(s)
	if number < 1 || number > n {
		return nil, fmt.Errorf("%w: number=%d, length=%d", ErrGroupCount, number, n)
	}

	o := DefaultGroupOptions[T]()
	if opts != nil {
		o = *opts
	}

	q, r := n/number, n%number

	groups := make([]S, 0, number)
	next := 0 // consumption cursor into s
	for g := 0; g < number; g++ {
		size := q
		if g < r {
			size++
		}

		group := make(S, 0, size+1)
		group = append(group, s[next:next+size]...)
		next += size

		if r > 0 && g >= r && !o.NoFill {
			group = append(group, o.Fill)
		}
		groups = append(groups, group)
	}

	return groups, nil
}

// InGroupsFunc is InGroups followed by transform applied to each group in
// order, returning the per-group results. Padding happens before transform
// runs, so a padded group arrives at its full visible length. A nil
// transform returns ErrNilTransform.
//
//	labels, _ := InGroupsFunc(nums, 3, nil, func(g []string) string {
//		return strings.Join(g, "-")
//	})
//
// Complexity: O(len(s)) plus one transform call per group.
func InGroupsFunc[S ~[]T, T, R any](s S, number int, opts *GroupOptions[T], transform func(S) R) ([]R, error) {
	if transform == nil {
		return nil, ErrNilTransform
	}

	groups, err := InGroups(s, number, opts)
	if err != nil {
		return nil, err
	}

	out := make([]R, len(groups))
	for i, g := range groups {
		out[i] = transform(g)
	}

	return out, nil
}
