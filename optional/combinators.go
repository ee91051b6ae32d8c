package optional

import "github.com/charmingruby/opt/value"

// Fold collapses the Optional into a single value by selecting onAbsent when
// absent or applying onPresent to the content.
func Fold[T any, U any](o Optional[T], onAbsent func() U, onPresent func(value.Value[T]) U) U {
	if o.IsPresent() {
		return onPresent(o.content)
	}
	return onAbsent()
}

// Tap executes fn with the content when present and returns the original
// Optional untouched.
func Tap[T any](o Optional[T], fn func(value.Value[T])) Optional[T] {
	if o.IsPresent() {
		fn(o.content)
	}
	return o
}

// Pair holds the contents of two zipped Optionals.
type Pair[A any, B any] struct {
	First  value.Value[A]
	Second value.Value[B]
}

// Zip combines two Optionals into one holding a Pair of their contents,
// short-circuiting to Empty when either side is absent.
func Zip[A any, B any](a Optional[A], b Optional[B]) Optional[Pair[A, B]] {
	if !a.IsPresent() || !b.IsPresent() {
		return Empty[Pair[A, B]]()
	}
	return Some(Pair[A, B]{First: a.content, Second: b.content})
}

// Sequence converts a slice of Optionals into an Optional of their contents,
// short-circuiting to Empty on the first absent entry.
func Sequence[T any](opts []Optional[T]) Optional[[]value.Value[T]] {
	contents := make([]value.Value[T], 0, len(opts))
	for _, o := range opts {
		if !o.IsPresent() {
			return Empty[[]value.Value[T]]()
		}
		contents = append(contents, o.content)
	}
	return Some(contents)
}

// Traverse maps input values to Optionals and sequences them.
func Traverse[A any, B any](items []A, fn func(A) Optional[B]) Optional[[]value.Value[B]] {
	contents := make([]value.Value[B], 0, len(items))
	for _, item := range items {
		o := fn(item)
		if !o.IsPresent() {
			return Empty[[]value.Value[B]]()
		}
		contents = append(contents, o.content)
	}
	return Some(contents)
}

// Collect gathers the contents of the present Optionals, ignoring absent
// entries. The returned slice never shares a backing array with inputs.
func Collect[T any](opts []Optional[T]) []value.Value[T] {
	if len(opts) == 0 {
		return []value.Value[T]{}
	}
	contents := make([]value.Value[T], 0, len(opts))
	for _, o := range opts {
		if o.IsPresent() {
			contents = append(contents, o.content)
		}
	}
	return contents
}
