// Package spatial provides nearest-neighbor indexing over point coordinates.
// It backs the raw-at-gauge lookups and the interpolators with a KD-tree so
// that neighbor queries stay cheap even for large fields.
package spatial

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"
)

var (
	// ErrInvalidInput indicates an empty or degenerate coordinate set.
	ErrInvalidInput = errors.New("spatial: empty or degenerate coordinate set")
)

// Point is an N-dimensional coordinate. All points handled by one index must
// share the same dimensionality.
type Point []float64

// node attaches the original slice position to a point so that KD-tree query
// results can be mapped back to coordinate indices.
type node struct {
	pt Point
	id int
}

// Compare implements the kdtree.Comparable interface.
func (n node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return n.pt[d] - c.(node).pt[d]
}

// Dims returns the number of dimensions of the point.
func (n node) Dims() int { return len(n.pt) }

// Distance returns the squared Euclidean distance between two points.
func (n node) Distance(c kdtree.Comparable) float64 {
	q := c.(node)
	var sum float64
	for d := range n.pt {
		diff := n.pt[d] - q.pt[d]
		sum += diff * diff
	}
	return sum
}

// nodes is a collection of node that satisfies kdtree.Interface.
type nodes []node

func (p nodes) Index(i int) kdtree.Comparable         { return p[i] }
func (p nodes) Len() int                              { return len(p) }
func (p nodes) Slice(start, end int) kdtree.Interface { return p[start:end] }

// Pivot implements the kdtree.Interface method.
func (p nodes) Pivot(d kdtree.Dim) int {
	return kdtree.Partition(nodePlane{nodes: p, Dim: d}, kdtree.MedianOfRandoms(nodePlane{nodes: p, Dim: d}, 100))
}

// nodePlane implements sort.Interface and kdtree.SortSlicer for nodes.
type nodePlane struct {
	nodes
	kdtree.Dim
}

func (p nodePlane) Less(i, j int) bool {
	return p.nodes[i].pt[p.Dim] < p.nodes[j].pt[p.Dim]
}

func (p nodePlane) Slice(start, end int) kdtree.SortSlicer {
	return nodePlane{nodes: p.nodes[start:end], Dim: p.Dim}
}

func (p nodePlane) Swap(i, j int) {
	p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
}

// NeighborIndex answers k-nearest-neighbor queries against a fixed coordinate
// set. It is a pure function of the geometry: building it involves no data
// values, so one index is reused across all adjustment calls.
type NeighborIndex struct {
	tree *kdtree.Tree
	dims int
	size int
}

// NewNeighborIndex builds a KD-tree over the given coordinates.
func NewNeighborIndex(coords []Point) (*NeighborIndex, error) {
	if len(coords) == 0 {
		return nil, fmt.Errorf("%w: no coordinates to index", ErrInvalidInput)
	}
	dims := len(coords[0])
	if dims == 0 {
		return nil, fmt.Errorf("%w: zero-dimensional coordinates", ErrInvalidInput)
	}
	ns := make(nodes, len(coords))
	for i, c := range coords {
		if len(c) != dims {
			return nil, fmt.Errorf("%w: coordinate %d has %d dimensions, want %d", ErrInvalidInput, i, len(c), dims)
		}
		ns[i] = node{pt: c, id: i}
	}
	return &NeighborIndex{
		tree: kdtree.New(ns, true),
		dims: dims,
		size: len(coords),
	}, nil
}

// Size returns the number of indexed coordinates.
func (x *NeighborIndex) Size() int { return x.size }

// Dims returns the dimensionality of the indexed coordinates.
func (x *NeighborIndex) Dims() int { return x.dims }

// Query returns, for each query point, the indices of the k nearest indexed
// coordinates ordered nearest first. A k larger than the number of indexed
// points is clamped to it.
func (x *NeighborIndex) Query(queries []Point, k int) ([][]int, error) {
	if len(queries) == 0 {
		return nil, fmt.Errorf("%w: no query points", ErrInvalidInput)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: neighbor count %d", ErrInvalidInput, k)
	}
	if k > x.size {
		k = x.size
	}
	out := make([][]int, len(queries))
	for qi, q := range queries {
		if len(q) != x.dims {
			return nil, fmt.Errorf("%w: query %d has %d dimensions, want %d", ErrInvalidInput, qi, len(q), x.dims)
		}
		if k == 1 {
			c, _ := x.tree.Nearest(node{pt: q})
			out[qi] = []int{c.(node).id}
			continue
		}
		keeper := kdtree.NewNKeeper(k)
		x.tree.NearestSet(keeper, node{pt: q})
		got := make([]kdtree.ComparableDist, 0, keeper.Len())
		for _, item := range keeper.Heap {
			// The keeper seeds its heap with an infinite-distance sentinel.
			if item.Comparable == nil {
				continue
			}
			got = append(got, item)
		}
		sort.Slice(got, func(i, j int) bool { return got[i].Dist < got[j].Dist })
		ids := make([]int, len(got))
		for i, item := range got {
			ids[i] = item.Comparable.(node).id
		}
		out[qi] = ids
	}
	return out, nil
}

// Distance returns the Euclidean distance between two points of equal
// dimensionality.
func Distance(a, b Point) float64 {
	var sum float64
	for d := range a {
		diff := a[d] - b[d]
		sum += diff * diff
	}
	return math.Sqrt(sum)
}
