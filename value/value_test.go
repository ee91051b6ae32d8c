package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/opt/value"
)

func TestConstructorsAndKinds(t *testing.T) {
	testCases := []struct {
		name     string
		val      value.Value[int]
		kind     value.Kind
		isMarker bool
	}{
		{name: "ordinary value", val: value.Of(42), kind: value.KindValue, isMarker: false},
		{name: "null marker", val: value.Null[int](), kind: value.KindNull, isMarker: true},
		{name: "undefined marker", val: value.Undefined[int](), kind: value.KindUndefined, isMarker: true},
		{name: "zero value is undefined", val: value.Value[int]{}, kind: value.KindUndefined, isMarker: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.kind, tc.val.Kind())
			require.Equal(t, tc.isMarker, tc.val.IsMarker())
		})
	}
}

func TestOfNilIsNotMarker(t *testing.T) {
	var data any
	v := value.Of(data)
	require.Equal(t, value.KindValue, v.Kind())
	require.False(t, v.IsMarker())
	got, ok := v.Unwrap()
	require.True(t, ok)
	require.Nil(t, got)
}

func TestUnwrap(t *testing.T) {
	got, ok := value.Of("x").Unwrap()
	require.True(t, ok)
	require.Equal(t, "x", got)

	got, ok = value.Null[string]().Unwrap()
	require.False(t, ok)
	require.Empty(t, got)

	_, ok = value.Undefined[string]().Unwrap()
	require.False(t, ok)
}

func TestUnsafeUnwrap(t *testing.T) {
	require.Equal(t, 7, value.Of(7).UnsafeUnwrap())
	require.Panics(t, func() { value.Null[int]().UnsafeUnwrap() })
	require.Panics(t, func() { value.Undefined[int]().UnsafeUnwrap() })
}

func TestFromPtr(t *testing.T) {
	n := 5
	v := value.FromPtr(&n)
	require.Equal(t, value.KindValue, v.Kind())
	require.Equal(t, 5, v.UnsafeUnwrap())

	require.Equal(t, value.KindNull, value.FromPtr[int](nil).Kind())
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}

	hit := value.FromOk(m["a"], true)
	require.Equal(t, value.KindValue, hit.Kind())

	_, ok := m["b"]
	miss := value.FromOk(m["b"], ok)
	require.Equal(t, value.KindUndefined, miss.Kind())
}

func TestString(t *testing.T) {
	require.Equal(t, "x", value.Of("x").String())
	require.Equal(t, "0", value.Of(0).String())
	require.Equal(t, "null", value.Null[string]().String())
	require.Equal(t, "undefined", value.Undefined[string]().String())
}

func TestEqual(t *testing.T) {
	require.True(t, value.Equal(value.Of(1), value.Of(1)))
	require.False(t, value.Equal(value.Of(1), value.Of(2)))
	require.True(t, value.Equal(value.Null[int](), value.Null[int]()))
	require.True(t, value.Equal(value.Undefined[int](), value.Undefined[int]()))
	require.False(t, value.Equal(value.Null[int](), value.Undefined[int]()))
	require.False(t, value.Equal(value.Of(0), value.Null[int]()))
}
