// Package adjust corrects a dense but biased field (for example remotely
// sensed rainfall) using sparse trusted point observations (rain gauges).
//
// The error of the dense field is quantified at the gauge locations and
// modelled as additive (ModelAdditive), multiplicative (ModelMultiply,
// ModelMFB) or a mixture of both (ModelMixed). For spatially heterogeneous
// models the per-gauge error is interpolated to every raw location and
// applied there; ModelMFB instead derives a single correction factor for the
// whole domain. ModelGaugeOnly discards the raw field and interpolates the
// gauges directly, and ModelNull serves as an unadjusted control for
// verification experiments.
//
// An Adjuster is created once per (gauge, raw) coordinate constellation and
// then called with fresh data per time step, so the neighbor search and the
// default interpolator preprocessing only happen once:
//
//	a, err := adjust.New(adjust.ModelAdditive, gaugeCoords, rawCoords, adjust.DefaultOptions())
//	if err != nil { ... }
//	corrected, err := a.Adjust(gaugeValues, rawValues)
//
// Invalid values (NaN, Inf or below Options.MinValue) are screened out per
// call. When fewer valid gauge/raw pairs remain than Options.MinGauges, the
// raw field is returned unchanged rather than half-adjusted; that fallback is
// deliberate domain policy, not an error.
//
// CrossValidate performs leave-one-out cross-validation: each valid gauge in
// turn is withheld and re-estimated from the remaining ones, producing paired
// (observed, estimated) vectors for accuracy scoring (see package verify).
package adjust
