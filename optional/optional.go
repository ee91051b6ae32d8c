// Package optional implements a generic Optional container with configurable
// absence-marker semantics.
//
// Unlike a plain presence flag, an Optional distinguishes two absence markers
// (null and undefined, see the value package) and fixes, per instance, which
// of them count as "absent" and which of them a factory tolerates at
// construction. The configuration threads through every derived instance, so
// a chain started with OfNullable stays null-tolerant across Map and FlatMap.
//
// Example:
//
//	opt := optional.OfNullable(value.FromPtr(nickname))
//	display := opt.OrElse(value.Of("anonymous"))
package optional

import (
	"errors"

	"github.com/charmingruby/opt/value"
)

// ErrInvalidValue signals a disallowed absence marker: either one handed to Of
// at construction, or a Get call on an absent instance. It carries no payload
// and is stable across repeated calls on the same instance.
var ErrInvalidValue = errors.New("optional: invalid value")

// kindSet is a bit set over the absence-marker kinds. Marker-set checks are a
// private detail of this package.
type kindSet uint8

const (
	nullBit kindSet = 1 << iota
	undefinedBit

	allMarkers = nullBit | undefinedBit
)

func markerBit(k value.Kind) kindSet {
	switch k {
	case value.KindNull:
		return nullBit
	case value.KindUndefined:
		return undefinedBit
	default:
		return 0
	}
}

func (s kindSet) has(k value.Kind) bool {
	bit := markerBit(k)
	return bit != 0 && s&bit != 0
}

// Optional holds a tagged content value plus the marker configuration fixed by
// the factory that built it. The configuration is stored as two sets:
// tolerates lists the markers treated as present, rejects lists the markers
// that fail construction. Both are immutable after construction, so instances
// are safely shareable across goroutines.
//
// The zero value is an empty Optional, equal to Empty[T]().
type Optional[T any] struct {
	content   value.Value[T]
	tolerates kindSet
	rejects   kindSet
}

// Of wraps content under the strict policy: both absence markers are invalid
// and neither is allowed, so passing a marker fails with ErrInvalidValue.
//
// Example:
//
//	opt, err := optional.Of(value.Of("x"))
//	if err != nil {
//		return err
//	}
func Of[T any](content value.Value[T]) (Optional[T], error) {
	if content.IsMarker() {
		return Optional[T]{}, ErrInvalidValue
	}
	return Optional[T]{content: content, rejects: allMarkers}, nil
}

// UnsafeOf behaves like Of but panics on a disallowed marker. It should only
// be used where the content is already known not to be a marker.
func UnsafeOf[T any](content value.Value[T]) Optional[T] {
	opt, err := Of(content)
	if err != nil {
		panic(err)
	}
	return opt
}

// Some wraps an ordinary value under the strict Of policy. It cannot fail
// because ordinary values are never markers.
func Some[T any](data T) Optional[T] {
	return Optional[T]{content: value.Of(data), rejects: allMarkers}
}

// OfNullable wraps content treating only the null marker as absent. It never
// fails: null is allowed at construction and stored verbatim, and the
// undefined marker is not part of this policy's invalid set, so an undefined
// content counts as present.
func OfNullable[T any](content value.Value[T]) Optional[T] {
	return Optional[T]{content: content, tolerates: undefinedBit}
}

// OfUndefinable wraps content treating both markers as absent while allowing
// both at construction. It never fails; a marker content is stored verbatim
// and reported absent afterwards.
func OfUndefinable[T any](content value.Value[T]) Optional[T] {
	return Optional[T]{content: content}
}

// Empty returns an absent Optional for the provided type. It stores the
// undefined marker under the OfUndefinable policy and equals every other
// absent instance.
func Empty[T any]() Optional[T] {
	return Optional[T]{content: value.Undefined[T]()}
}

// emptyLike builds an absent Optional carrying the given configuration,
// choosing a stored marker that the configuration reports as absent.
func emptyLike[T any](tolerates, rejects kindSet) Optional[T] {
	marker := value.Undefined[T]()
	if tolerates.has(value.KindUndefined) {
		if tolerates.has(value.KindNull) {
			// Every marker reads present here; fall back to the default
			// empty configuration.
			return Empty[T]()
		}
		marker = value.Null[T]()
	}
	return Optional[T]{content: marker, tolerates: tolerates, rejects: rejects}
}

// IsPresent reports whether the content is an ordinary value or a tolerated
// marker. Pure and O(1).
func (o Optional[T]) IsPresent() bool {
	k := o.content.Kind()
	return !k.IsMarker() || o.tolerates.has(k)
}

// IsAbsent reports the negation of IsPresent.
func (o Optional[T]) IsAbsent() bool {
	return !o.IsPresent()
}

// IfPresent invokes action with the content when present; otherwise it does
// nothing. Panics raised by action propagate to the caller.
func (o Optional[T]) IfPresent(action func(value.Value[T])) {
	if o.IsPresent() {
		action(o.content)
	}
}

// IfPresentOrElse invokes exactly one of the two callables, synchronously,
// before returning: action with the content when present, emptyAction
// otherwise.
func (o Optional[T]) IfPresentOrElse(action func(value.Value[T]), emptyAction func()) {
	if o.IsPresent() {
		action(o.content)
		return
	}
	emptyAction()
}

// OrElse returns the content when present, otherwise other verbatim. The
// fallback is never validated and may itself be a marker.
func (o Optional[T]) OrElse(other value.Value[T]) value.Value[T] {
	if o.IsPresent() {
		return o.content
	}
	return other
}

// OrElseGet behaves like OrElse but computes the fallback lazily; fn only runs
// when the instance is absent.
func (o Optional[T]) OrElseGet(fn func() value.Value[T]) value.Value[T] {
	if o.IsPresent() {
		return o.content
	}
	return fn()
}

// OrElseErr returns the content when present, otherwise the caller-supplied
// error verbatim, never wrapped or annotated. A nil err is replaced with
// ErrInvalidValue so absence is never reported as success.
func (o Optional[T]) OrElseErr(err error) (value.Value[T], error) {
	if o.IsPresent() {
		return o.content, nil
	}
	if err == nil {
		err = ErrInvalidValue
	}
	return value.Undefined[T](), err
}

// Get returns the content when present and fails with ErrInvalidValue when
// absent. Prefer IsPresent or the OrElse family; Get exists for callers that
// already hold a presence proof.
func (o Optional[T]) Get() (value.Value[T], error) {
	if o.IsPresent() {
		return o.content, nil
	}
	return value.Undefined[T](), ErrInvalidValue
}

// UnsafeGet returns the content or panics when absent. It should only be used
// in hot paths where presence is guaranteed.
func (o Optional[T]) UnsafeGet() value.Value[T] {
	if !o.IsPresent() {
		panic(ErrInvalidValue)
	}
	return o.content
}

// ToPtr converts the Optional into a pointer, returning nil when absent or
// when the present content is a tolerated marker. The returned pointer
// references a copy of the content to preserve immutability.
func (o Optional[T]) ToPtr() *T {
	if !o.IsPresent() {
		return nil
	}
	data, ok := o.content.Unwrap()
	if !ok {
		return nil
	}
	return &data
}

// String implements fmt.Stringer: "Optional.empty" when absent, otherwise
// "Optional[<content>]" using the content's own string form. Presence here
// follows IsPresent, the same rule as everywhere else, so falsy-but-present
// content such as 0 or "" renders as a present value.
func (o Optional[T]) String() string {
	if !o.IsPresent() {
		return "Optional.empty"
	}
	return "Optional[" + o.content.String() + "]"
}

// Equal reports whether two Optionals are both absent, or both present with
// equal content. Suitable for assertions; marker configurations are not
// compared.
func Equal[T comparable](a, b Optional[T]) bool {
	if a.IsPresent() != b.IsPresent() {
		return false
	}
	if !a.IsPresent() {
		return true
	}
	return value.Equal(a.content, b.content)
}
