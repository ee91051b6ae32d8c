package optional

import "github.com/charmingruby/opt/value"

// Filter evaluates predicate against the stored content regardless of
// presence; even an absent instance hands its marker to the predicate. This is
// a deliberate contract: filters over marker-aware chains may want to react to
// which marker they received. The receiver is returned unchanged when present
// and accepted; every other outcome is a fresh absent Optional carrying the
// receiver's marker configuration.
func (o Optional[T]) Filter(predicate func(value.Value[T]) bool) Optional[T] {
	keep := predicate(o.content)
	if keep && o.IsPresent() {
		return o
	}
	return emptyLike[T](o.tolerates, o.rejects)
}

// mapsToAbsent reports whether a mapped content would be absent under the
// source configuration, in which case transformations collapse to empty
// instead of wrapping it.
func mapsToAbsent[U any](mapped value.Value[U], tolerates kindSet) bool {
	k := mapped.Kind()
	return k.IsMarker() && !tolerates.has(k)
}

// Map transforms the content with fn when present, wrapping the result in a
// new Optional that carries the source's marker configuration, so tolerance
// established at construction survives the whole chain. An absent source
// short-circuits without invoking fn. A mapped result whose marker is invalid
// under the source configuration collapses to an absent Optional.
//
// Map is package-level because Go methods cannot introduce type parameters.
//
// Example:
//
//	length := optional.Map(opt, func(v value.Value[string]) value.Value[int] {
//		s, _ := v.Unwrap()
//		return value.Of(len(s))
//	})
func Map[T any, U any](o Optional[T], fn func(value.Value[T]) value.Value[U]) Optional[U] {
	if !o.IsPresent() {
		return emptyLike[U](o.tolerates, o.rejects)
	}
	mapped := fn(o.content)
	if mapsToAbsent(mapped, o.tolerates) {
		return emptyLike[U](o.tolerates, o.rejects)
	}
	return Optional[U]{content: mapped, tolerates: o.tolerates, rejects: o.rejects}
}

// FlatMapped is the outcome of FlatMap: either the mapper's raw result,
// unwrapped, or an absent Optional. The two cases are heterogeneous on
// purpose; callers match on them through the ok-style accessors instead of
// assuming a uniform Optional.
type FlatMapped[T any] struct {
	raw       value.Value[T]
	empty     Optional[T]
	unwrapped bool
}

// IsEmpty reports whether the outcome is the absent-Optional case.
func (f FlatMapped[T]) IsEmpty() bool {
	return !f.unwrapped
}

// Value returns the raw mapper result when the outcome is the unwrapped case.
func (f FlatMapped[T]) Value() (value.Value[T], bool) {
	if !f.unwrapped {
		return value.Undefined[T](), false
	}
	return f.raw, true
}

// Empty returns the absent Optional when the outcome is the empty case.
func (f FlatMapped[T]) Empty() (Optional[T], bool) {
	if f.unwrapped {
		return Optional[T]{}, false
	}
	return f.empty, true
}

// FlatMap transforms the content with fn when present and returns the result
// raw, without re-wrapping; that is the whole difference from Map. An absent
// source yields the empty outcome without invoking fn, as does a mapped
// result whose marker is invalid under the source configuration.
//
// Example:
//
//	flat := optional.FlatMap(opt, func(v value.Value[string]) value.Value[string] {
//		return v
//	})
//	if raw, ok := flat.Value(); ok {
//		fmt.Println(raw)
//	}
func FlatMap[T any, U any](o Optional[T], fn func(value.Value[T]) value.Value[U]) FlatMapped[U] {
	if !o.IsPresent() {
		return FlatMapped[U]{empty: emptyLike[U](o.tolerates, o.rejects)}
	}
	mapped := fn(o.content)
	if mapsToAbsent(mapped, o.tolerates) {
		return FlatMapped[U]{empty: emptyLike[U](o.tolerates, o.rejects)}
	}
	return FlatMapped[U]{raw: mapped, unwrapped: true}
}
