package adjust

import (
	"fmt"

	"gaugeadjust/pkg/interpolation"
)

// Model selects the error model driving an Adjuster.
type Model string

const (
	// ModelAdditive assumes a heterogeneous additive error.
	ModelAdditive Model = "additive"
	// ModelMultiply assumes a heterogeneous multiplicative error.
	ModelMultiply Model = "multiply"
	// ModelMixed assumes independent additive and multiplicative error terms.
	ModelMixed Model = "mixed"
	// ModelMFB applies one multiplicative mean-field-bias factor to the whole
	// domain.
	ModelMFB Model = "mfb"
	// ModelGaugeOnly interpolates the gauge observations and ignores the raw
	// field except for validity screening.
	ModelGaugeOnly Model = "gaugeonly"
	// ModelNull returns the raw field unchanged. Control variant for
	// benchmark verification.
	ModelNull Model = "null"
)

// Statistic reduces the raw values in the neighborhood of a gauge to one
// representative raw-at-gauge value.
type Statistic string

const (
	// StatisticMean averages the neighbor values.
	StatisticMean Statistic = "mean"
	// StatisticMedian takes the median of the neighbor values.
	StatisticMedian Statistic = "median"
	// StatisticBest picks the neighbor value closest to the gauge
	// observation.
	StatisticBest Statistic = "best"
)

// MFBMethod selects how the mean-field-bias correction factor is derived.
type MFBMethod string

const (
	// MFBMean uses the mean of the gauge/raw ratios.
	MFBMean MFBMethod = "mean"
	// MFBMedian uses the median of the gauge/raw ratios.
	MFBMedian MFBMethod = "median"
	// MFBLinRegr derives the factor from the inverse slope of a linear
	// regression, guarded by robustness thresholds.
	MFBLinRegr MFBMethod = "linregr"
)

// MFBOptions control the mean-field-bias model.
type MFBOptions struct {
	Method MFBMethod
	// MinSlope, MinCorrelation and MaxPValue decide whether a linear
	// regression is robust enough to trust. A fit failing any of them leaves
	// the field uncorrected.
	MinSlope       float64
	MinCorrelation float64
	MaxPValue      float64
}

// Options are the construction parameters of an Adjuster. They are read-only
// after construction. Start from DefaultOptions and override fields as
// needed: zero-valued Neighbors, Statistic, MFB.Method and NewInterpolator
// fall back to their defaults, while MinGauges, MinValue and the MFB
// thresholds are taken as given (MinGauges
// zero disables the minimum-gauge fallback).
type Options struct {
	// Neighbors is the number of raw neighbors used to compute the raw value
	// at a gauge location. Defaults to 9.
	Neighbors int
	// Statistic reduces those neighbors to one value. Defaults to
	// StatisticMedian.
	Statistic Statistic
	// MinGauges is the minimum number of valid gauge/raw pairs required for
	// an adjustment; below it, the raw field is returned unchanged.
	MinGauges int
	// MinValue is the validity threshold: gauge or raw-at-gauge values below
	// it are excluded from the adjustment.
	MinValue float64
	// MFB controls the mean-field-bias model and is ignored by the others.
	MFB MFBOptions
	// NewInterpolator supplies the spatial interpolation capability used to
	// spread per-gauge errors onto the raw field. Defaults to inverse
	// distance weighting.
	NewInterpolator interpolation.Factory
}

// DefaultOptions returns the canonical parameter set: 9 median-aggregated
// neighbors, 5 minimum gauges, zero minimum value, a robust-linregr mean
// field bias and inverse distance weighting.
func DefaultOptions() Options {
	return Options{
		Neighbors: 9,
		Statistic: StatisticMedian,
		MinGauges: 5,
		MinValue:  0,
		MFB: MFBOptions{
			Method:         MFBLinRegr,
			MinSlope:       0.1,
			MinCorrelation: 0.5,
			MaxPValue:      0.01,
		},
		NewInterpolator: interpolation.IDWFactory(interpolation.Options{}),
	}
}

func (o *Options) setDefaults() {
	if o.Neighbors == 0 {
		o.Neighbors = 9
	}
	if o.Statistic == "" {
		o.Statistic = StatisticMedian
	}
	if o.MFB.Method == "" {
		o.MFB.Method = MFBLinRegr
	}
	if o.NewInterpolator == nil {
		o.NewInterpolator = interpolation.IDWFactory(interpolation.Options{})
	}
}

func (o *Options) validate() error {
	if o.Neighbors < 1 {
		return fmt.Errorf("%w: neighbor count %d", ErrConfiguration, o.Neighbors)
	}
	switch o.Statistic {
	case StatisticMean, StatisticMedian, StatisticBest:
	default:
		return fmt.Errorf("%w: unknown statistic %q", ErrConfiguration, o.Statistic)
	}
	switch o.MFB.Method {
	case MFBMean, MFBMedian, MFBLinRegr:
	default:
		return fmt.Errorf("%w: unknown mean field bias method %q", ErrConfiguration, o.MFB.Method)
	}
	return nil
}
