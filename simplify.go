package main

import (
	"fmt"

	"github.com/jellydator/ttlcache/v3"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// strideForZoom picks a point-skipping stride, coarser the farther out the
// view is. Detail is a pure function of zoom.
func strideForZoom(zoom float64) int {
	switch {
	case zoom >= 4.0:
		return 1
	case zoom >= 2.0:
		return 2
	case zoom >= 1.0:
		return 4
	case zoom >= 0.5:
		return 8
	default:
		return 16
	}
}

// toleranceForZoom picks a Douglas-Peucker tolerance in degrees, coarser the
// farther out the view is. Zero means full detail.
func toleranceForZoom(zoom float64) float64 {
	switch {
	case zoom >= 4.0:
		return 0
	case zoom >= 2.0:
		return 0.1
	case zoom >= 1.0:
		return 0.5
	case zoom >= 0.5:
		return 1.0
	case zoom >= 0.3:
		return 2.0
	default:
		return 5.0
	}
}

// DecimateRing keeps every stride-th point. The stride is clamped so a ring
// that started with at least 3 points never drops below 3.
func DecimateRing(ring orb.Ring, stride int) orb.Ring {
	if stride <= 1 || len(ring) < 3 {
		return ring
	}
	if max := len(ring) / 3; stride > max {
		stride = max
	}
	if stride <= 1 {
		return ring
	}

	out := make(orb.Ring, 0, len(ring)/stride+1)
	for i := 0; i < len(ring); i += stride {
		out = append(out, ring[i])
	}
	return out
}

// LODCache memoizes tolerance-simplified rings per country. Simplification is
// deterministic, so results are reusable across frames; capacity eviction is
// least-recently-used and a miss simply recomputes.
type LODCache struct {
	cache *ttlcache.Cache[string, []orb.Ring]
}

func NewLODCache(capacity uint64) *LODCache {
	return &LODCache{
		cache: ttlcache.New(
			ttlcache.WithCapacity[string, []orb.Ring](capacity),
		),
	}
}

// RingsForZoom returns the country's rings at the detail level for the given
// zoom. At or above the close-in threshold the full-detail rings come back
// untouched.
func (lc *LODCache) RingsForZoom(c *Country, zoom float64) []orb.Ring {
	tolerance := toleranceForZoom(zoom)
	if tolerance == 0 {
		return c.rings
	}

	key := fmt.Sprintf("%s|%.1f", c.Name, tolerance)
	if item := lc.cache.Get(key); item != nil {
		return item.Value()
	}

	dp := simplify.DouglasPeucker(tolerance)
	out := make([]orb.Ring, 0, len(c.rings))
	for _, ring := range c.rings {
		// The simplifier mutates its input, so work on a clone.
		s, ok := dp.Simplify(ring.Clone()).(orb.Ring)
		if !ok || len(s) < 3 {
			s = ring
		}
		out = append(out, s)
	}

	lc.cache.Set(key, out, ttlcache.DefaultTTL)
	return out
}

// Len reports the number of cached entries.
func (lc *LODCache) Len() int { return lc.cache.Len() }
