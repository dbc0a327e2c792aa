package adjust

import (
	"math"

	"gaugeadjust/pkg/spatial"
)

// CrossValidate performs leave-one-out cross-validation of the adjustment.
//
// Each gauge with a valid observation, a valid raw-at-gauge value and a valid
// raw value directly at its location is withheld in turn; the adjustment is
// re-derived from the remaining gauges and evaluated at the withheld
// location. The returned slices pair the observations with the estimates at
// the gauge locations; gauges outside the valid set carry NaN in the
// estimate vector. When fewer valid gauges remain than Options.MinGauges,
// the estimate vector is entirely NaN.
//
// The per-iteration interpolators are scoped to the held-out constellation
// and never touch the adjuster's cached default instance.
func (a *Adjuster) CrossValidate(obs, raw []float64) (observed, estimated []float64, err error) {
	if err := a.checkShape(obs, raw); err != nil {
		return nil, nil, err
	}
	rawAtObs, ix, err := a.validPairs(obs, raw)
	if err != nil {
		return nil, nil, err
	}
	// The estimate is compared against the raw value directly at the gauge,
	// so that value must be valid too.
	exact, err := a.atObsExact.evaluate(raw, obs)
	if err != nil {
		return nil, nil, err
	}
	ix = intersect(ix, validIndices(exact, a.opts.MinValue))

	observed = append([]float64(nil), obs...)
	estimated = make([]float64, len(obs))
	for i := range estimated {
		estimated[i] = math.NaN()
	}
	if len(ix) < a.opts.MinGauges {
		return observed, estimated, nil
	}
	for _, i := range ix {
		held := exclude(ix, i)
		out, err := a.apply(obs,
			[]float64{exact[i]},
			[]spatial.Point{a.obsCoords[i]},
			rawAtObs, held)
		if err != nil {
			return nil, nil, err
		}
		estimated[i] = out[0]
	}
	return observed, estimated, nil
}
