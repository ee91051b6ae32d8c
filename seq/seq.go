// Package seq offers slice queries that report misses as absent Optionals
// instead of (value, ok) pairs, keeping lookup results chainable.
package seq

import (
	"github.com/charmingruby/opt/optional"
)

// Head returns the first element, or an absent Optional for an empty slice.
func Head[T any](in []T) optional.Optional[T] {
	if len(in) == 0 {
		return optional.Empty[T]()
	}
	return optional.Some(in[0])
}

// Last returns the final element, or an absent Optional for an empty slice.
func Last[T any](in []T) optional.Optional[T] {
	if len(in) == 0 {
		return optional.Empty[T]()
	}
	return optional.Some(in[len(in)-1])
}

// At returns the element at index i, or an absent Optional when i is out of
// range. Negative indexes are out of range, not Python-style offsets.
func At[T any](in []T, i int) optional.Optional[T] {
	if i < 0 || i >= len(in) {
		return optional.Empty[T]()
	}
	return optional.Some(in[i])
}

// Find returns the first element satisfying predicate, or an absent Optional
// when none matches.
func Find[T any](in []T, predicate func(T) bool) optional.Optional[T] {
	for _, v := range in {
		if predicate(v) {
			return optional.Some(v)
		}
	}
	return optional.Empty[T]()
}

// Compact drops absent entries and tolerated markers, returning the ordinary
// values held by the present Optionals. The returned slice shares no backing
// array with the input.
func Compact[T any](opts []optional.Optional[T]) []T {
	if len(opts) == 0 {
		return []T{}
	}
	out := make([]T, 0, len(opts))
	for _, o := range opts {
		if ptr := o.ToPtr(); ptr != nil {
			out = append(out, *ptr)
		}
	}
	return out
}
