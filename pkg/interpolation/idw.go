package interpolation

import (
	"math"

	"gaugeadjust/pkg/spatial"
)

// exactHitDistance is the distance below which a target is considered to
// coincide with a source point and takes its value directly.
const exactHitDistance = 1e-12

// Options control inverse distance weighting.
type Options struct {
	// Neighbors is the number of nearest source points contributing to each
	// target. Defaults to 4 and is clamped to the number of source points.
	Neighbors int
	// Power is the exponent applied to the distance in the weight 1/d^p.
	// Defaults to 2.
	Power float64
}

// IDW interpolates by inverse distance weighting over the k nearest source
// points of each target. Neighbor indices and distances are resolved once at
// construction; Interpolate is a weighted sum per target.
type IDW struct {
	nsrc      int
	power     float64
	neighbors [][]int
	distances [][]float64
}

// NewIDW builds an inverse distance weighting interpolator for the given
// source and target coordinates.
func NewIDW(src, trg []spatial.Point, opts Options) (*IDW, error) {
	if len(src) == 0 {
		return nil, ErrNoSource
	}
	if len(trg) == 0 {
		return nil, ErrNoTarget
	}
	k := opts.Neighbors
	if k < 1 {
		k = 4
	}
	if k > len(src) {
		k = len(src)
	}
	power := opts.Power
	if power == 0 {
		power = 2
	}

	index, err := spatial.NewNeighborIndex(src)
	if err != nil {
		return nil, err
	}
	neighbors, err := index.Query(trg, k)
	if err != nil {
		return nil, err
	}

	distances := make([][]float64, len(trg))
	for t, nb := range neighbors {
		distances[t] = make([]float64, len(nb))
		for j, s := range nb {
			distances[t][j] = spatial.Distance(trg[t], src[s])
		}
	}

	return &IDW{
		nsrc:      len(src),
		power:     power,
		neighbors: neighbors,
		distances: distances,
	}, nil
}

// Interpolate returns one value per target location.
func (ip *IDW) Interpolate(values []float64) ([]float64, error) {
	if len(values) != ip.nsrc {
		return nil, ErrValueCount
	}
	out := make([]float64, len(ip.neighbors))
	for t, nb := range ip.neighbors {
		var weightSum, valueSum float64
		hit := false
		for j, s := range nb {
			d := ip.distances[t][j]
			if d < exactHitDistance {
				out[t] = values[s]
				hit = true
				break
			}
			w := 1 / math.Pow(d, ip.power)
			weightSum += w
			valueSum += w * values[s]
		}
		if !hit {
			out[t] = valueSum / weightSum
		}
	}
	return out, nil
}

// IDWFactory returns a Factory producing IDW interpolators with the given
// options.
func IDWFactory(opts Options) Factory {
	return func(src, trg []spatial.Point) (Interpolator, error) {
		return NewIDW(src, trg, opts)
	}
}
