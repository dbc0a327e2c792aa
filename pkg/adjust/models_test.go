package adjust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullReturnsRawUnchanged(t *testing.T) {
	n := 9
	gauges, ids := interiorGauges(n, 8)
	raw := make([]float64, n*n)
	for i := range raw {
		raw[i] = float64(i) * 0.2
	}
	obs := make([]float64, len(gauges))
	for i, id := range ids {
		obs[i] = raw[id] + 5
	}

	a, err := New(ModelNull, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

// The additive model floors at zero: gauges reading far below the raw field
// drive strong negative corrections, but the output never goes negative.
func TestAdditiveOutputNonNegative(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 1)
	obs := constField(len(gauges), 0)

	a, err := New(ModelAdditive, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i, v := range out {
		assert.GreaterOrEqual(t, v, 0.0, "cell %d", i)
	}
}

// Gauges that agree with the raw field produce ratio 1 everywhere, so the
// multiplicative correction reproduces the raw field.
func TestMultiplicativeIdentity(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 5)
	obs := constField(len(gauges), 5)

	a, err := New(ModelMultiply, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, raw[i], out[i], 1e-12, "cell %d", i)
	}
}

// Agreement between gauges and raw makes both mixed error terms vanish.
func TestMixedIdentity(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 4)
	obs := constField(len(gauges), 4)

	a, err := New(ModelMixed, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, raw[i], out[i], 1e-12, "cell %d", i)
	}
}

func TestGaugeOnlyIgnoresRawMagnitude(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 1000)
	obs := constField(len(gauges), 7)

	a, err := New(ModelGaugeOnly, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, 7.0, out[i], 1e-12, "cell %d", i)
	}
}

// A gauge reading above the raw field must pull the additive correction up
// around it.
func TestAdditiveRaisesFieldNearWetGauge(t *testing.T) {
	n := 9
	gauges, ids := interiorGauges(n, 8)
	raw := constField(n*n, 2)
	obs := make([]float64, len(gauges))
	for i := range obs {
		obs[i] = 2
	}
	obs[0] = 6 // one gauge reads 4 above the field

	a, err := New(ModelAdditive, gauges, gridCoords(n), DefaultOptions())
	require.NoError(t, err)
	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)

	at := ids[0]
	assert.Greater(t, out[at], raw[at], "field at the wet gauge must increase")
	assert.InDelta(t, 6.0, out[at], 1e-9, "exact hit at the gauge location")
	assert.False(t, math.IsNaN(out[0]))
}
