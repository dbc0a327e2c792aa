// Package interpolation provides spatial point-interpolation capabilities
// that spread values known at scattered source locations to arbitrary target
// locations. Interpolators are constructed once per (source, target)
// constellation; the expensive neighbor preprocessing happens at construction
// and calling Interpolate afterwards is cheap.
package interpolation

import (
	"errors"

	"gaugeadjust/pkg/spatial"
)

var (
	// ErrNoSource indicates construction without any source points.
	ErrNoSource = errors.New("interpolation: at least one source point is required")
	// ErrNoTarget indicates construction without any target points.
	ErrNoTarget = errors.New("interpolation: at least one target point is required")
	// ErrValueCount indicates a value vector whose length disagrees with the
	// source coordinates the interpolator was built with.
	ErrValueCount = errors.New("interpolation: value count does not match source count")
)

// Interpolator produces one value per target location from one value per
// source location. Implementations are fixed to the (source, target)
// coordinates supplied at construction.
type Interpolator interface {
	Interpolate(values []float64) ([]float64, error)
}

// Factory constructs an Interpolator for a (source, target) constellation.
// Factories must be cheap to invoke repeatedly with arbitrary coordinate
// subsets; callers rebuild interpolators whenever the constellation changes.
type Factory func(src, trg []spatial.Point) (Interpolator, error)
