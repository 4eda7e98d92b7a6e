package main

import (
	"hash/fnv"
	"math/rand"

	"github.com/paulmach/orb"
)

// Country is a named collection of exterior polygon rings with a bounding box
// cached at construction. Rings are immutable after load; only the selected
// flag ever changes.
type Country struct {
	Name       string
	Code       string
	Population int64

	rings []orb.Ring
	bound orb.Bound
	color [3]uint8

	selected bool
	seq      int
}

// NewCountry computes the bounding box in a single pass over all rings and
// assigns the base fill color. The color is seeded from the name so a country
// keeps its color across reloads.
func NewCountry(name, code string, population int64, rings []orb.Ring) *Country {
	h := fnv.New64a()
	h.Write([]byte(name))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	return &Country{
		Name:       name,
		Code:       code,
		Population: population,
		rings:      rings,
		bound:      ringsBound(rings),
		color: [3]uint8{
			uint8(100 + rng.Intn(101)),
			uint8(100 + rng.Intn(101)),
			uint8(100 + rng.Intn(101)),
		},
	}
}

// ContainsPoint reports whether the point lies inside any of the country's
// rings. Points outside the cached bounding box are rejected without touching
// the ring geometry. Multiple rings are a union of exteriors; holes are not
// subtracted.
func (c *Country) ContainsPoint(lon, lat float64) bool {
	if !c.bound.Contains(orb.Point{lon, lat}) {
		return false
	}
	for _, ring := range c.rings {
		if rayCast(lon, lat, ring) {
			return true
		}
	}
	return false
}

// Bound returns the cached bounding box.
func (c *Country) Bound() orb.Bound { return c.bound }

// Rings returns the full-detail rings.
func (c *Country) Rings() []orb.Ring { return c.rings }

// Selected reports the transient selection flag.
func (c *Country) Selected() bool { return c.selected }

// DrawColor returns the fill color, brightened by a flat +50 per channel when
// the country is selected.
func (c *Country) DrawColor() [3]uint8 {
	if !c.selected {
		return c.color
	}
	var out [3]uint8
	for i, ch := range c.color {
		v := int(ch) + 50
		if v > 255 {
			v = 255
		}
		out[i] = uint8(v)
	}
	return out
}

// CountryManager holds the loaded countries in insertion order and tracks the
// at-most-one selection.
type CountryManager struct {
	byName   map[string]*Country
	ordered  []*Country
	selected *Country
}

func NewCountryManager() *CountryManager {
	return &CountryManager{byName: make(map[string]*Country)}
}

func (m *CountryManager) Add(c *Country) {
	c.seq = len(m.ordered)
	m.byName[c.Name] = c
	m.ordered = append(m.ordered, c)
}

func (m *CountryManager) Get(name string) *Country {
	return m.byName[name]
}

// Countries returns the countries in insertion order.
func (m *CountryManager) Countries() []*Country { return m.ordered }

func (m *CountryManager) Len() int { return len(m.ordered) }

// Select marks the given country as selected, clearing any prior selection so
// no stale flag survives. A nil country clears the selection entirely.
func (m *CountryManager) Select(c *Country) {
	if m.selected != nil {
		m.selected.selected = false
	}
	m.selected = c
	if c != nil {
		c.selected = true
	}
}

// Selected returns the currently selected country, or nil.
func (m *CountryManager) Selected() *Country { return m.selected }
