package adjust

import "math"

// validIndices returns the indices of values that are finite and not below
// minval, in ascending order.
func validIndices(values []float64, minval float64) []int {
	ids := make([]int, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < minval {
			continue
		}
		ids = append(ids, i)
	}
	return ids
}

// intersect returns the values present in both ascending-sorted slices.
func intersect(a, b []int) []int {
	out := make([]int, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	return out
}

// exclude returns ids without the element held, preserving order.
func exclude(ids []int, held int) []int {
	out := make([]int, 0, len(ids)-1)
	for _, i := range ids {
		if i != held {
			out = append(out, i)
		}
	}
	return out
}
