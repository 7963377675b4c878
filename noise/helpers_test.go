// SPDX-License-Identifier: MIT

package noise_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnoise/noise"
)

const eps = 1e-9

// axis returns a source reporting one coordinate of its input.
func axis[P noise.Point](i int) noise.SourceFunc[P] {
	return func(p P) float64 { return p[i] }
}

// randomPoints returns n deterministic points spread over [−span/2, span/2).
func randomPoints[P noise.Point](n int, span float64, seed int64) []P {
	rng := rand.New(rand.NewSource(seed))
	out := make([]P, n)
	for k := range out {
		for i := 0; i < len(out[k]); i++ {
			out[k][i] = (rng.Float64() - 0.5) * span
		}
	}

	return out
}

// requireConfigError asserts that fn panics with a *ConfigurationError
// wrapping sentinel.
func requireConfigError(t *testing.T, sentinel error, fn func()) {
	t.Helper()

	_, err := noise.Build(func() struct{} {
		fn()

		return struct{}{}
	})
	require.Error(t, err)
	require.ErrorIs(t, err, noise.ErrConfiguration)
	require.ErrorIs(t, err, sentinel)

	var ce *noise.ConfigurationError
	require.True(t, errors.As(err, &ce))
	require.NotEmpty(t, ce.Node)
}
