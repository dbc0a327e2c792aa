package adjust

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// mfbModel derives a single multiplicative correction factor for the entire
// domain, also known as the mean field bias.
type mfbModel struct {
	opts      MFBOptions
	minGauges int
}

func (mfbModel) spreads() bool { return false }

func (m mfbModel) correct(in modelInput) ([]float64, error) {
	// Ratios may turn NaN or Inf when the raw value at a gauge is zero;
	// those pairs are masked out.
	ratios := make([]float64, 0, len(in.ix))
	x := make([]float64, 0, len(in.ix))
	y := make([]float64, 0, len(in.ix))
	for _, i := range in.ix {
		r := in.obs[i] / in.rawAtObs[i]
		if math.IsNaN(r) || math.IsInf(r, 0) {
			continue
		}
		ratios = append(ratios, r)
		x = append(x, in.obs[i])
		y = append(y, in.rawAtObs[i])
	}
	if len(ratios) < m.minGauges {
		return append([]float64(nil), in.raw...), nil
	}

	corrfact := 1.0
	switch m.opts.Method {
	case MFBMean:
		if len(ratios) > 0 {
			corrfact = stat.Mean(ratios, nil)
		}
	case MFBMedian:
		if len(ratios) > 0 {
			corrfact = median(ratios)
		}
	case MFBLinRegr:
		// The gauge observation is the explanatory variable; the correction
		// factor is the inverse slope of a through-origin refit.
		slope, r, p := linregress(x, y)
		if slope > m.opts.MinSlope && r > m.opts.MinCorrelation && p < m.opts.MaxPValue {
			if s := originSlope(x, y); s != 0 && !math.IsNaN(s) && !math.IsInf(s, 0) {
				corrfact = 1 / s
			}
		}
	}
	if math.IsNaN(corrfact) || math.IsInf(corrfact, 0) {
		corrfact = 1
	}

	out := make([]float64, len(in.raw))
	for i := range out {
		out[i] = corrfact * in.raw[i]
	}
	return out, nil
}

// linregress fits y against x by ordinary least squares and returns the
// slope, the Pearson correlation and the two-sided p-value of the slope.
// Degenerate inputs report a hopeless fit (zero slope, infinite p) rather
// than an error, so the caller falls back to no correction.
func linregress(x, y []float64) (slope, r, p float64) {
	n := len(x)
	if n < 3 {
		return 0, 0, math.Inf(1)
	}
	_, slope = stat.LinearRegression(x, y, nil, false)
	r = stat.Correlation(x, y, nil)
	if math.IsNaN(slope) || math.IsNaN(r) {
		return 0, 0, math.Inf(1)
	}
	df := float64(n - 2)
	if 1-r*r <= 0 {
		return slope, r, 0
	}
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return slope, r, 2 * dist.Survival(math.Abs(t))
}

// originSlope fits y = s*x through the origin by least squares.
func originSlope(x, y []float64) float64 {
	den := floats.Dot(x, x)
	if den == 0 {
		return 0
	}
	return floats.Dot(x, y) / den
}
