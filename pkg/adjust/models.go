package adjust

import (
	"fmt"

	"gaugeadjust/pkg/interpolation"
)

// modelInput carries the per-call state an error model works on. ix holds the
// valid gauge indices; rawAtObs is indexed by gauge, raw by target.
type modelInput struct {
	obs      []float64
	raw      []float64
	rawAtObs []float64
	ix       []int
	ip       interpolation.Interpolator
}

// errorModel computes the corrected field from valid gauge/raw pairs. The
// engine owns the shared entry logic (validity gating, minimum-gauge
// fallback, interpolator caching); models only implement the correction.
type errorModel interface {
	// spreads reports whether the model interpolates per-gauge errors in
	// space. The engine supplies an interpolator only when true.
	spreads() bool
	correct(in modelInput) ([]float64, error)
}

func newErrorModel(model Model, opts Options) (errorModel, error) {
	switch model {
	case ModelAdditive:
		return additiveModel{}, nil
	case ModelMultiply:
		return multiplyModel{}, nil
	case ModelMixed:
		return mixedModel{}, nil
	case ModelMFB:
		return mfbModel{opts: opts.MFB, minGauges: opts.MinGauges}, nil
	case ModelGaugeOnly:
		return gaugeOnlyModel{}, nil
	case ModelNull:
		return nullModel{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown model %q", ErrConfiguration, model)
	}
}

// additiveModel interpolates the difference obs-rawAtObs and adds it to the
// raw field, flooring the result at zero.
type additiveModel struct{}

func (additiveModel) spreads() bool { return true }

func (additiveModel) correct(in modelInput) ([]float64, error) {
	errField := make([]float64, len(in.ix))
	for j, i := range in.ix {
		errField[j] = in.obs[i] - in.rawAtObs[i]
	}
	spread, err := in.ip.Interpolate(errField)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(in.raw))
	for i := range out {
		v := in.raw[i] + spread[i]
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out, nil
}

// multiplyModel interpolates the ratio obs/rawAtObs and multiplies the raw
// field with it.
type multiplyModel struct{}

func (multiplyModel) spreads() bool { return true }

func (multiplyModel) correct(in modelInput) ([]float64, error) {
	ratio := make([]float64, len(in.ix))
	for j, i := range in.ix {
		ratio[j] = in.obs[i] / in.rawAtObs[i]
	}
	spread, err := in.ip.Interpolate(ratio)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(in.raw))
	for i := range out {
		out[i] = in.raw[i] * spread[i]
	}
	return out, nil
}

// mixedModel estimates an additive term epsilon and a multiplicative term
// delta per gauge by a joint least-squares solve of
//
//	obs = raw*(1+delta) + epsilon
//
// minimizing delta²+epsilon², interpolates both independently, and applies
// raw*(1+delta) + epsilon. epsilon dominates for small deviations between
// raw and gauge, delta for large ones.
type mixedModel struct{}

func (mixedModel) spreads() bool { return true }

func (mixedModel) correct(in modelInput) ([]float64, error) {
	epsilon := make([]float64, len(in.ix))
	delta := make([]float64, len(in.ix))
	for j, i := range in.ix {
		epsilon[j] = (in.obs[i] - in.rawAtObs[i]) / (in.rawAtObs[i]*in.rawAtObs[i] + 1)
		delta[j] = (in.obs[i]-epsilon[j])/in.rawAtObs[i] - 1
	}
	spreadEps, err := in.ip.Interpolate(epsilon)
	if err != nil {
		return nil, err
	}
	spreadDelta, err := in.ip.Interpolate(delta)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(in.raw))
	for i := range out {
		out[i] = (1+spreadDelta[i])*in.raw[i] + spreadEps[i]
	}
	return out, nil
}

// gaugeOnlyModel discards the raw field and interpolates the gauge
// observations directly.
type gaugeOnlyModel struct{}

func (gaugeOnlyModel) spreads() bool { return true }

func (gaugeOnlyModel) correct(in modelInput) ([]float64, error) {
	vals := make([]float64, len(in.ix))
	for j, i := range in.ix {
		vals[j] = in.obs[i]
	}
	return in.ip.Interpolate(vals)
}

// nullModel returns the raw field unchanged.
type nullModel struct{}

func (nullModel) spreads() bool { return false }

func (nullModel) correct(in modelInput) ([]float64, error) {
	return append([]float64(nil), in.raw...), nil
}
