package adjust

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"gaugeadjust/pkg/spatial"
)

// rawAtObs looks up the raw-field value "at" each gauge location by reducing
// the k nearest raw values to one representative. The neighbor indices depend
// only on the two coordinate sets, so they are resolved once and reused for
// every field.
type rawAtObs struct {
	neighbors [][]int
	stat      Statistic
}

func newRawAtObs(obsCoords, rawCoords []spatial.Point, k int, statistic Statistic) (*rawAtObs, error) {
	index, err := spatial.NewNeighborIndex(rawCoords)
	if err != nil {
		return nil, err
	}
	neighbors, err := index.Query(obsCoords, k)
	if err != nil {
		return nil, err
	}
	return &rawAtObs{neighbors: neighbors, stat: statistic}, nil
}

// evaluate returns one raw value per gauge. obs is only consulted by
// StatisticBest, which needs the observation as reference; the other
// statistics accept a nil obs.
func (r *rawAtObs) evaluate(raw, obs []float64) ([]float64, error) {
	out := make([]float64, len(r.neighbors))
	buf := make([]float64, 0, len(r.neighbors[0]))
	for i, nb := range r.neighbors {
		// A single neighbor needs no aggregation.
		if len(nb) == 1 {
			out[i] = raw[nb[0]]
			continue
		}
		buf = buf[:0]
		for _, s := range nb {
			buf = append(buf, raw[s])
		}
		switch r.stat {
		case StatisticMean:
			out[i] = stat.Mean(buf, nil)
		case StatisticMedian:
			out[i] = median(buf)
		case StatisticBest:
			if obs == nil {
				return nil, fmt.Errorf("%w: statistic %q requires observation values", ErrConfiguration, StatisticBest)
			}
			out[i] = best(obs[i], buf)
		default:
			return nil, fmt.Errorf("%w: unknown statistic %q", ErrConfiguration, r.stat)
		}
	}
	return out, nil
}

// median returns the middle order statistic, averaging the two central
// elements for even counts. The input is not modified.
func median(v []float64) float64 {
	s := append([]float64(nil), v...)
	sort.Float64s(s)
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

// best returns the candidate whose absolute difference from ref is smallest.
func best(ref float64, candidates []float64) float64 {
	pick := candidates[0]
	for _, c := range candidates[1:] {
		if math.Abs(c-ref) < math.Abs(pick-ref) {
			pick = c
		}
	}
	return pick
}
