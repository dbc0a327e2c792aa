package adjust

import (
	"sync"

	"gaugeadjust/pkg/interpolation"
	"gaugeadjust/pkg/spatial"
)

// ipCache owns the spatial interpolator instances of an Adjuster.
//
// The default instance covers the common case of every gauge being valid and
// the raw coordinates as targets; its expensive preprocessing is done once at
// construction. Calls with a reduced valid subset get a scoped instance,
// memoized one-deep keyed on the subset so repeated calls with the same
// missing gauges do not rebuild it. Scoped instances for explicit targets
// (the cross-validation path) are never stored; each is local to its call.
type ipCache struct {
	factory   interpolation.Factory
	obsCoords []spatial.Point
	rawCoords []spatial.Point
	def       interpolation.Interpolator

	mu     sync.Mutex
	lastIx []int
	last   interpolation.Interpolator
}

func newIPCache(factory interpolation.Factory, obsCoords, rawCoords []spatial.Point) (*ipCache, error) {
	def, err := factory(obsCoords, rawCoords)
	if err != nil {
		return nil, err
	}
	return &ipCache{
		factory:   factory,
		obsCoords: obsCoords,
		rawCoords: rawCoords,
		def:       def,
	}, nil
}

// get returns an interpolator for the given valid subset and targets. nil
// targets means the default target set (the raw coordinates).
func (c *ipCache) get(ix []int, targets []spatial.Point) (interpolation.Interpolator, error) {
	if targets != nil {
		return c.factory(c.subset(ix), targets)
	}
	if len(ix) == len(c.obsCoords) {
		return c.def, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last != nil && equalInts(c.lastIx, ix) {
		return c.last, nil
	}
	ip, err := c.factory(c.subset(ix), c.rawCoords)
	if err != nil {
		return nil, err
	}
	c.lastIx = append([]int(nil), ix...)
	c.last = ip
	return ip, nil
}

func (c *ipCache) subset(ix []int) []spatial.Point {
	pts := make([]spatial.Point, len(ix))
	for j, i := range ix {
		pts[j] = c.obsCoords[i]
	}
	return pts
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
