package fp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/charmingruby/opt/fp"
)

func TestIdentityConstant(t *testing.T) {
	require.Equal(t, 42, fp.Identity(42))

	supplier := fp.Constant("fallback")
	require.Equal(t, "fallback", supplier())
	require.Equal(t, "fallback", supplier())
}

func TestPipeCompose(t *testing.T) {
	piped := fp.Pipe(1,
		func(n int) int { return n + 1 },
		func(n int) int { return n * 5 },
	)
	require.Equal(t, 10, piped)

	composed := fp.Compose(
		func(n int) int { return n * 2 },
		func(n int) int { return n + 1 },
	)
	require.Equal(t, 8, composed(3))
}
