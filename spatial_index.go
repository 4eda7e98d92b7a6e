package main

import (
	"sort"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
)

// countryEntry wraps a country for R-tree storage.
type countryEntry struct {
	country *Country
	rect    rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *countryEntry) Bounds() rtreego.Rect { return e.rect }

// SpatialIndex answers point and rectangle queries over country bounding
// boxes, with ray-cast confirmation for point hits.
type SpatialIndex struct {
	tree *rtreego.Rtree
}

// NewSpatialIndex builds the R-tree over the full country list. Building
// against a partial load is a programming error, so a size mismatch panics.
func NewSpatialIndex(countries []*Country) *SpatialIndex {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, c := range countries {
		tree.Insert(&countryEntry{country: c, rect: boundRect(c.bound)})
	}
	if tree.Size() != len(countries) {
		panic("spatial index out of sync with country list")
	}
	return &SpatialIndex{tree: tree}
}

// QueryPoint returns the country containing the geographic point, or nil.
// R-tree candidates are confirmed with the ray cast; overlapping claims
// resolve to the country loaded first.
func (si *SpatialIndex) QueryPoint(lon, lat float64) *Country {
	rect, err := rtreego.NewRect(rtreego.Point{lon, lat}, []float64{1e-9, 1e-9})
	if err != nil {
		return nil
	}

	var hit *Country
	for _, item := range si.tree.SearchIntersect(rect) {
		c := item.(*countryEntry).country
		if hit != nil && c.seq >= hit.seq {
			continue
		}
		if c.ContainsPoint(lon, lat) {
			hit = c
		}
	}
	return hit
}

// QueryRect returns the countries whose bounding box intersects the
// rectangle, in insertion order. A degenerate rectangle matches nothing.
func (si *SpatialIndex) QueryRect(view orb.Bound) []*Country {
	if degenerateBound(view) {
		return nil
	}

	rect, err := rtreego.NewRect(
		rtreego.Point{view.Min[0], view.Min[1]},
		[]float64{view.Max[0] - view.Min[0], view.Max[1] - view.Min[1]},
	)
	if err != nil {
		return nil
	}

	items := si.tree.SearchIntersect(rect)
	countries := make([]*Country, 0, len(items))
	for _, item := range items {
		countries = append(countries, item.(*countryEntry).country)
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].seq < countries[j].seq
	})
	return countries
}

// boundRect converts an orb bounding box to an rtreego rectangle. rtreego
// rejects zero-length sides, so degenerate boxes get a hair of extent.
func boundRect(b orb.Bound) rtreego.Rect {
	w := b.Max[0] - b.Min[0]
	h := b.Max[1] - b.Min[1]
	if w <= 0 {
		w = 1e-9
	}
	if h <= 0 {
		h = 1e-9
	}
	rect, err := rtreego.NewRect(rtreego.Point{b.Min[0], b.Min[1]}, []float64{w, h})
	if err != nil {
		panic(err)
	}
	return rect
}
