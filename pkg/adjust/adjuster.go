package adjust

import (
	"fmt"

	"gaugeadjust/pkg/spatial"
)

// Adjuster corrects raw fields against gauge observations using a fixed error
// model. The coordinate sets are immutable for its lifetime; fresh gauge and
// raw values are supplied per call. Construction resolves the neighbor index
// and the default interpolator once, so repeated calls with the same
// constellation stay cheap.
type Adjuster struct {
	obsCoords []spatial.Point
	rawCoords []spatial.Point
	opts      Options
	model     errorModel

	// atObs reduces the configured neighborhood per gauge; atObsExact is a
	// single-neighbor variant used by cross-validation to read the raw field
	// directly at a gauge.
	atObs      *rawAtObs
	atObsExact *rawAtObs
	cache      *ipCache
}

// New creates an Adjuster for the given error model and coordinate sets.
// Callers never mutate the supplied coordinate slices after construction.
func New(model Model, obsCoords, rawCoords []spatial.Point, opts Options) (*Adjuster, error) {
	opts.setDefaults()
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(obsCoords) == 0 {
		return nil, fmt.Errorf("%w: no observation coordinates", ErrInvalidInput)
	}
	if len(rawCoords) == 0 {
		return nil, fmt.Errorf("%w: no raw field coordinates", ErrInvalidInput)
	}
	m, err := newErrorModel(model, opts)
	if err != nil {
		return nil, err
	}
	atObs, err := newRawAtObs(obsCoords, rawCoords, opts.Neighbors, opts.Statistic)
	if err != nil {
		return nil, err
	}
	atObsExact, err := newRawAtObs(obsCoords, rawCoords, 1, opts.Statistic)
	if err != nil {
		return nil, err
	}
	cache, err := newIPCache(opts.NewInterpolator, obsCoords, rawCoords)
	if err != nil {
		return nil, err
	}
	return &Adjuster{
		obsCoords:  obsCoords,
		rawCoords:  rawCoords,
		opts:       opts,
		model:      m,
		atObs:      atObs,
		atObsExact: atObsExact,
		cache:      cache,
	}, nil
}

// Adjust returns the raw field corrected by the gauge observations. When
// fewer than Options.MinGauges valid gauge/raw pairs exist, the raw field is
// returned unchanged. The input slices are never modified.
func (a *Adjuster) Adjust(obs, raw []float64) ([]float64, error) {
	if err := a.checkShape(obs, raw); err != nil {
		return nil, err
	}
	return a.apply(obs, raw, nil, nil, nil)
}

func (a *Adjuster) checkShape(obs, raw []float64) error {
	if len(obs) != len(a.obsCoords) {
		return fmt.Errorf("%w: %d observations for %d observation coordinates", ErrShapeMismatch, len(obs), len(a.obsCoords))
	}
	if len(raw) != len(a.rawCoords) {
		return fmt.Errorf("%w: %d raw values for %d raw coordinates", ErrShapeMismatch, len(raw), len(a.rawCoords))
	}
	return nil
}

// apply runs the shared adjustment pipeline. targets other than nil redirect
// the output to explicit coordinates, in which case raw must carry one value
// per target; rawAtObs and ix can be supplied precomputed (both or neither)
// to skip the validity pass, as cross-validation does to freeze the valid
// set while holding one gauge out.
func (a *Adjuster) apply(obs, raw []float64, targets []spatial.Point, rawAtObs []float64, ix []int) ([]float64, error) {
	if rawAtObs == nil || ix == nil {
		var err error
		rawAtObs, ix, err = a.validPairs(obs, raw)
		if err != nil {
			return nil, err
		}
	}
	if len(ix) < a.opts.MinGauges {
		// Too sparse to trust a correction; hand back the field as-is.
		return append([]float64(nil), raw...), nil
	}
	in := modelInput{obs: obs, raw: raw, rawAtObs: rawAtObs, ix: ix}
	if a.model.spreads() {
		ip, err := a.cache.get(ix, targets)
		if err != nil {
			return nil, err
		}
		in.ip = ip
	}
	return a.model.correct(in)
}

// validPairs returns the raw values at the gauges and the ascending indices
// of gauges whose observation and raw-at-gauge values are both valid.
func (a *Adjuster) validPairs(obs, raw []float64) ([]float64, []int, error) {
	rawAtObs, err := a.atObs.evaluate(raw, obs)
	if err != nil {
		return nil, nil, err
	}
	ix := intersect(
		validIndices(obs, a.opts.MinValue),
		validIndices(rawAtObs, a.opts.MinValue),
	)
	return rawAtObs, ix, nil
}
