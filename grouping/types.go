// Package grouping defines options and sentinel errors for the grouping
// subpackage of github.com/katalvlaran/seqx.
package grouping

import (
	"errors"
)

// Sentinel errors for grouping operations.
var (
	// ErrGroupCount indicates a group count outside 1..len(s).
	ErrGroupCount = errors.New("grouping: group count out of range")

	// ErrNilTransform indicates a nil transform passed to InGroupsFunc.
	ErrNilTransform = errors.New("grouping: transform must be non-nil")
)

// GroupOptions controls how InGroups treats undersized trailing groups when
// the input length does not divide evenly by the group count.
type GroupOptions[T any] struct {
	// NoFill leaves undersized groups at their natural size.
	NoFill bool

	// Fill is appended once to each undersized group when NoFill is false,
	// equalizing the visible group length.
	Fill T
}

// DefaultGroupOptions returns the default padding policy: pad undersized
// groups with the zero value of T.
func DefaultGroupOptions[T any]() GroupOptions[T] {
	return GroupOptions[T]{}
}
