package main

import "github.com/paulmach/orb"

const (
	// viewportMargin expands the viewport by a fraction of its width so
	// boundaries do not pop in at the edges while panning.
	viewportMargin = 0.1

	// recullEpsilon is the viewport drift, in degrees per edge, under which
	// the previous cull result is reused.
	recullEpsilon = 1.0
)

// ViewportCuller narrows the country set to what can appear on screen. It
// remembers the last viewport and skips the index query when the view moved
// less than recullEpsilon on every edge; the margin keeps that shortcut from
// changing what is rendered.
type ViewportCuller struct {
	index *SpatialIndex

	last       orb.Bound
	hasLast    bool
	candidates []*Country
}

func NewViewportCuller(index *SpatialIndex) *ViewportCuller {
	return &ViewportCuller{index: index}
}

// VisibleCountries returns the countries whose bounding box intersects the
// margin-expanded viewport. A degenerate viewport is empty.
func (vc *ViewportCuller) VisibleCountries(view orb.Bound) []*Country {
	if degenerateBound(view) {
		return nil
	}
	if vc.hasLast && boundsWithinEpsilon(view, vc.last, recullEpsilon) {
		return vc.candidates
	}

	vc.candidates = vc.index.QueryRect(view)
	vc.last = view
	vc.hasLast = true
	return vc.candidates
}

// Invalidate drops the cached viewport, forcing the next cull to recompute.
func (vc *ViewportCuller) Invalidate() {
	vc.hasLast = false
	vc.candidates = nil
}

// CullRingPoints filters a ring to the points inside the viewport, keeping
// one extra point on each side of every contiguous visible run so the drawn
// boundary does not clip at the screen edge. A ring with no visible points is
// kept whole when its box still overlaps the view (the viewport may sit
// entirely inside a large polygon). Results with fewer than 3 points are
// dropped, signalled by nil.
func CullRingPoints(ring orb.Ring, view orb.Bound) orb.Ring {
	n := len(ring)
	if n < 3 {
		return nil
	}

	visible := make([]bool, n)
	visibleCount := 0
	for i, p := range ring {
		if view.Contains(p) {
			visible[i] = true
			visibleCount++
		}
	}

	if visibleCount == n {
		return ring
	}
	if visibleCount == 0 {
		if ring.Bound().Intersects(view) {
			return ring
		}
		return nil
	}

	keep := make([]bool, n)
	for i := range ring {
		if visible[i] {
			keep[(i+n-1)%n] = true
			keep[i] = true
			keep[(i+1)%n] = true
		}
	}

	out := make(orb.Ring, 0, visibleCount+2)
	for i, p := range ring {
		if keep[i] {
			out = append(out, p)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}
