// Package fp provides lightweight function helpers used alongside optional
// chains: suppliers for lazy fallbacks and composition for building mappers.
//
// Example:
//
//	display := opt.OrElseGet(fp.Constant(value.Of("anonymous")))
package fp

// Identity returns the supplied value unchanged. Useful as a no-op mapper.
func Identity[T any](v T) T {
	return v
}

// Constant returns a zero-argument function that always yields v, matching the
// supplier shape expected by lazy fallbacks.
func Constant[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Pipe applies fns to value left to right. All functions must accept and
// return the same type.
func Pipe[T any](value T, fns ...func(T) T) T {
	out := value
	for _, fn := range fns {
		out = fn(out)
	}
	return out
}

// Compose combines fns right to left into a single function, the usual
// mathematical composition order.
//
// Example:
//
//	mapper := fp.Compose(trim, lower)
//	cleaned := mapper(" GO ")
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(value T) T {
		out := value
		for i := len(fns) - 1; i >= 0; i-- {
			out = fns[i](out)
		}
		return out
	}
}
