// Package value defines the tagged content vocabulary for optional containers.
//
// A Value is exactly one of three things: an ordinary value, the null marker,
// or the undefined marker. Keeping the marker identity as an explicit tag
// (instead of comparing against sentinel values or their string forms) makes
// absence checks sound even for values whose representation collides with a
// marker's.
//
// Example:
//
//	v := value.Of("token")
//	if data, ok := v.Unwrap(); ok {
//		fmt.Println(data)
//	}
package value

import "fmt"

// Kind identifies which of the three content cases a Value holds. The zero
// Kind is KindUndefined, so an unset Value is the missing marker.
type Kind uint8

const (
	// KindUndefined is the "missing" absence marker.
	KindUndefined Kind = iota
	// KindNull is the "null" absence marker.
	KindNull
	// KindValue tags ordinary, non-marker content.
	KindValue
)

// IsMarker reports whether the kind is one of the absence markers.
func (k Kind) IsMarker() bool {
	return k == KindUndefined || k == KindNull
}

// String implements fmt.Stringer for debugging.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindValue:
		return "value"
	default:
		return "undefined"
	}
}

// Value carries either an ordinary value of type T or one of the absence
// markers. The zero value is the undefined marker. Content is stored inline
// (no pointer boxing), so ordinary nil values of nil-capable types remain
// distinguishable from the markers.
type Value[T any] struct {
	kind Kind
	data T
}

// Of wraps an ordinary value. Of(nil) is valid when T accepts nil values and
// is still KindValue, not a marker.
func Of[T any](data T) Value[T] {
	return Value[T]{kind: KindValue, data: data}
}

// Null returns the null marker for the provided type.
func Null[T any]() Value[T] {
	return Value[T]{kind: KindNull}
}

// Undefined returns the undefined marker for the provided type.
func Undefined[T any]() Value[T] {
	return Value[T]{kind: KindUndefined}
}

// FromPtr converts a pointer into a Value, treating nil as the null marker.
// The pointee is copied.
//
// Example:
//
//	v := value.FromPtr(user.Nickname)
func FromPtr[T any](ptr *T) Value[T] {
	if ptr == nil {
		return Null[T]()
	}
	return Of(*ptr)
}

// FromOk converts Go's common (value, ok) pair into a Value, treating ok=false
// as the undefined marker. Mirrors map lookups, where a miss means "missing"
// rather than "explicitly null".
//
// Example:
//
//	v := value.FromOk(m["key"])
func FromOk[T any](data T, ok bool) Value[T] {
	if !ok {
		return Undefined[T]()
	}
	return Of(data)
}

// Kind returns the content tag.
func (v Value[T]) Kind() Kind {
	return v.kind
}

// IsMarker reports whether the Value is one of the absence markers.
func (v Value[T]) IsMarker() bool {
	return v.kind.IsMarker()
}

// Unwrap returns the ordinary content along with a boolean that is false for
// both markers.
func (v Value[T]) Unwrap() (T, bool) {
	if v.kind != KindValue {
		var zero T
		return zero, false
	}
	return v.data, true
}

// UnsafeUnwrap returns the ordinary content or panics on a marker. It should
// only be used where the kind is already known.
func (v Value[T]) UnsafeUnwrap() T {
	if v.kind != KindValue {
		panic("value: UnsafeUnwrap on " + v.kind.String() + " marker")
	}
	return v.data
}

// String implements fmt.Stringer: the marker name, or the content formatted
// with the fmt default verb. Not intended for serialization.
func (v Value[T]) String() string {
	if v.kind != KindValue {
		return v.kind.String()
	}
	return fmt.Sprintf("%v", v.data)
}

// Equal reports whether two Values hold the same marker or equal ordinary
// content.
func Equal[T comparable](a, b Value[T]) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind != KindValue {
		return true
	}
	return a.data == b.data
}
