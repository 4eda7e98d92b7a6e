package main

import (
	"math"

	"github.com/paulmach/orb"
)

// rayCast reports whether a horizontal ray from (lon, lat) to the right
// crosses the ring boundary an odd number of times (even-odd rule). The ring
// is implicitly closed: the last point connects back to the first. Zero-length
// edges contribute no crossing.
func rayCast(lon, lat float64, ring orb.Ring) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		yi, yj := ring[i][1], ring[j][1]
		if (yi > lat) != (yj > lat) {
			xi, xj := ring[i][0], ring[j][0]
			if lon < (xj-xi)*(lat-yi)/(yj-yi)+xi {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// ringsBound scans all points once to produce the axis-aligned bounding box.
func ringsBound(rings []orb.Ring) orb.Bound {
	b := orb.Bound{
		Min: orb.Point{math.Inf(1), math.Inf(1)},
		Max: orb.Point{math.Inf(-1), math.Inf(-1)},
	}
	for _, ring := range rings {
		for _, p := range ring {
			b.Min[0] = math.Min(b.Min[0], p[0])
			b.Min[1] = math.Min(b.Min[1], p[1])
			b.Max[0] = math.Max(b.Max[0], p[0])
			b.Max[1] = math.Max(b.Max[1], p[1])
		}
	}
	return b
}

// degenerateBound reports an inverted or zero-area rectangle. Queries over a
// degenerate viewport return nothing rather than erroring.
func degenerateBound(b orb.Bound) bool {
	return b.Min[0] >= b.Max[0] || b.Min[1] >= b.Max[1]
}

// boundsWithinEpsilon reports whether every edge of the two rectangles is
// within eps degrees of its counterpart.
func boundsWithinEpsilon(a, b orb.Bound, eps float64) bool {
	return math.Abs(a.Min[0]-b.Min[0]) < eps &&
		math.Abs(a.Min[1]-b.Min[1]) < eps &&
		math.Abs(a.Max[0]-b.Max[0]) < eps &&
		math.Abs(a.Max[1]-b.Max[1]) < eps
}

// validRing requires at least 3 points, all finite.
func validRing(ring orb.Ring) bool {
	if len(ring) < 3 {
		return false
	}
	for _, p := range ring {
		if math.IsNaN(p[0]) || math.IsNaN(p[1]) || math.IsInf(p[0], 0) || math.IsInf(p[1], 0) {
			return false
		}
	}
	return true
}
