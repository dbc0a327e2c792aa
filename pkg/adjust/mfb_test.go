package adjust

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMFBMeanFactorTwo(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 3)
	obs := constField(len(gauges), 6)

	opts := DefaultOptions()
	opts.MFB.Method = MFBMean
	a, err := New(ModelMFB, gauges, gridCoords(n), opts)
	require.NoError(t, err)

	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, 2*raw[i], out[i], 1e-12, "cell %d", i)
	}
}

func TestMFBMedianFactor(t *testing.T) {
	n := 9
	gauges, _ := interiorGauges(n, 8)
	raw := constField(n*n, 4)
	obs := constField(len(gauges), 2)

	opts := DefaultOptions()
	opts.MFB.Method = MFBMedian
	a, err := New(ModelMFB, gauges, gridCoords(n), opts)
	require.NoError(t, err)

	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, 0.5*raw[i], out[i], 1e-12, "cell %d", i)
	}
}

// A perfectly linear gauge/raw relation passes the robustness gate and the
// inverse slope becomes the correction factor.
func TestMFBLinRegrPerfectFit(t *testing.T) {
	n := 9
	gauges, ids := interiorGauges(n, 8)
	raw := constField(n*n, 1)
	obs := make([]float64, len(gauges))
	for i, id := range ids {
		obs[i] = float64(i + 1) // 1..8
		raw[id] = 0.5 * obs[i]  // rawAtObs = obs/2 with a single neighbor
	}

	opts := DefaultOptions()
	opts.Neighbors = 1
	a, err := New(ModelMFB, gauges, gridCoords(n), opts)
	require.NoError(t, err)

	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	for i := range out {
		assert.InDelta(t, 2*raw[i], out[i], 1e-9, "cell %d", i)
	}
}

// An uncorrelated gauge/raw relation fails the robustness gate; the field is
// left uncorrected.
func TestMFBLinRegrNotRobust(t *testing.T) {
	n := 9
	gauges, ids := interiorGauges(n, 8)
	raw := constField(n*n, 1)
	obs := make([]float64, len(gauges))
	for i, id := range ids {
		obs[i] = float64(i + 1)
		if i%2 == 0 {
			raw[id] = 1
		} else {
			raw[id] = 1.1
		}
	}

	opts := DefaultOptions()
	opts.Neighbors = 1
	a, err := New(ModelMFB, gauges, gridCoords(n), opts)
	require.NoError(t, err)

	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out, "non-robust regression must leave the field unchanged")
}

// Ratios turning infinite (raw zero at a gauge) are masked; if fewer finite
// ratios remain than MinGauges the field is returned unchanged.
func TestMFBMaskedRatios(t *testing.T) {
	n := 9
	gauges, ids := interiorGauges(n, 8)
	raw := constField(n*n, 2)
	obs := constField(len(gauges), 4)
	for _, id := range ids[:5] {
		raw[id] = 0 // five gauges sit on zero raw cells
	}

	opts := DefaultOptions()
	opts.Neighbors = 1
	opts.MFB.Method = MFBMean
	a, err := New(ModelMFB, gauges, gridCoords(n), opts)
	require.NoError(t, err)

	out, err := a.Adjust(obs, raw)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestLinregressAgainstKnownFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}
	slope, r, p := linregress(x, y)
	assert.InDelta(t, 1.98, slope, 0.05)
	assert.Greater(t, r, 0.99)
	assert.Less(t, p, 1e-4)
}

func TestLinregressDegenerate(t *testing.T) {
	slope, r, p := linregress([]float64{1, 2}, []float64{3, 4})
	assert.Equal(t, 0.0, slope)
	assert.Equal(t, 0.0, r)
	assert.True(t, math.IsInf(p, 1))
}

func TestOriginSlope(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{2, 4, 6}
	assert.InDelta(t, 2.0, originSlope(x, y), 1e-12)
	assert.Equal(t, 0.0, originSlope([]float64{0, 0}, []float64{1, 2}))
}
