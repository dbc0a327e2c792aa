package interpolation

import "gaugeadjust/pkg/spatial"

// Nearest assigns each target the value of its single nearest source point.
type Nearest struct {
	nsrc      int
	neighbors [][]int
}

// NewNearest builds a nearest-neighbor interpolator for the given source and
// target coordinates.
func NewNearest(src, trg []spatial.Point) (*Nearest, error) {
	if len(src) == 0 {
		return nil, ErrNoSource
	}
	if len(trg) == 0 {
		return nil, ErrNoTarget
	}
	index, err := spatial.NewNeighborIndex(src)
	if err != nil {
		return nil, err
	}
	neighbors, err := index.Query(trg, 1)
	if err != nil {
		return nil, err
	}
	return &Nearest{nsrc: len(src), neighbors: neighbors}, nil
}

// Interpolate returns one value per target location.
func (ip *Nearest) Interpolate(values []float64) ([]float64, error) {
	if len(values) != ip.nsrc {
		return nil, ErrValueCount
	}
	out := make([]float64, len(ip.neighbors))
	for t, nb := range ip.neighbors {
		out[t] = values[nb[0]]
	}
	return out, nil
}

// NearestFactory returns a Factory producing nearest-neighbor interpolators.
func NearestFactory() Factory {
	return func(src, trg []spatial.Point) (Interpolator, error) {
		return NewNearest(src, trg)
	}
}
