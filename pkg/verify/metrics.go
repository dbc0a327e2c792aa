// Package verify scores paired observed/estimated value vectors, such as the
// output of leave-one-out cross-validation.
package verify

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch indicates observed and estimated vectors of unequal
// length.
var ErrLengthMismatch = errors.New("verify: observed and estimated must have equal length")

// Metrics summarize the agreement between observed and estimated values.
type Metrics struct {
	// N is the number of pairs that entered the score; pairs with a
	// non-finite member are skipped.
	N int
	// Bias is the mean of estimated-observed.
	Bias float64
	// MAE is the mean absolute error.
	MAE float64
	// RMSE is the root mean square error.
	RMSE float64
	// Correlation is the Pearson correlation coefficient, NaN when fewer
	// than two pairs remain.
	Correlation float64
}

// Evaluate computes Metrics over all pairs where both members are finite.
func Evaluate(observed, estimated []float64) (Metrics, error) {
	if len(observed) != len(estimated) {
		return Metrics{}, ErrLengthMismatch
	}
	var o, e []float64
	for i := range observed {
		if !finite(observed[i]) || !finite(estimated[i]) {
			continue
		}
		o = append(o, observed[i])
		e = append(e, estimated[i])
	}
	m := Metrics{N: len(o), Correlation: math.NaN()}
	if m.N == 0 {
		m.Bias = math.NaN()
		m.MAE = math.NaN()
		m.RMSE = math.NaN()
		return m, nil
	}
	var sumDiff, sumAbs, sumSq float64
	for i := range o {
		d := e[i] - o[i]
		sumDiff += d
		sumAbs += math.Abs(d)
		sumSq += d * d
	}
	n := float64(m.N)
	m.Bias = sumDiff / n
	m.MAE = sumAbs / n
	m.RMSE = math.Sqrt(sumSq / n)
	if m.N >= 2 {
		m.Correlation = stat.Correlation(o, e, nil)
	}
	return m, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
