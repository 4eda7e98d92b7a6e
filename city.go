package main

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	"go.uber.org/zap"
)

// quotaViewWidth is the viewport width, in degrees, at or under which city
// visibility switches from the global population floor to per-country quotas.
const quotaViewWidth = 10.0

// City is a named point feature owned by a country. The owner is a foreign
// key by country code, not an ownership relation; it may not resolve.
type City struct {
	Name        string
	Point       orb.Point
	Population  int64
	CountryCode string

	// rank is the city's position in its country's population-sorted group,
	// or -1 when the owner was never loaded.
	rank int
}

// CityIndex groups cities by owning country, pre-sorted descending by
// population, and answers zoom-driven visibility queries.
type CityIndex struct {
	cities      []*City
	byCountry   map[string][]*City
	populations map[string]int64
}

// NewCityIndex groups and ranks the cities. The sort is stable, so equal
// populations keep their load order. Cities whose country code is not among
// the loaded populations are retained but excluded from quota ranking.
func NewCityIndex(cities []*City, populations map[string]int64, logger *zap.Logger) *CityIndex {
	ci := &CityIndex{
		cities:      cities,
		byCountry:   make(map[string][]*City),
		populations: populations,
	}

	unresolved := make(map[string]bool)
	for _, c := range cities {
		if _, ok := populations[c.CountryCode]; !ok {
			c.rank = -1
			if !unresolved[c.CountryCode] {
				unresolved[c.CountryCode] = true
				logger.Warn("city references unknown country",
					zap.String("city", c.Name),
					zap.String("code", c.CountryCode))
			}
			continue
		}
		ci.byCountry[c.CountryCode] = append(ci.byCountry[c.CountryCode], c)
	}

	for _, group := range ci.byCountry {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Population > group[j].Population
		})
		for i, c := range group {
			c.rank = i
		}
	}
	return ci
}

// Cities returns all cities in load order.
func (ci *CityIndex) Cities() []*City { return ci.cities }

// VisibleCities returns the cities to draw for the viewport and zoom. Wide
// views use a global population floor keyed on viewport width; views at or
// under quotaViewWidth degrees show each country's top cities up to a
// zoom-scaled share of its quota. Cities with an unresolved owner fall back
// to the population floor. For a fixed viewport the result only grows as the
// zoom increases.
func (ci *CityIndex) VisibleCities(view orb.Bound, zoom float64) []*City {
	if degenerateBound(view) {
		return nil
	}

	width := view.Max[0] - view.Min[0]
	floor := populationFloor(width)
	var out []*City

	if width > quotaViewWidth {
		for _, c := range ci.cities {
			if view.Contains(c.Point) && c.Population >= floor {
				out = append(out, c)
			}
		}
		return out
	}

	frac := quotaFraction(zoom)
	for _, c := range ci.cities {
		if !view.Contains(c.Point) {
			continue
		}
		if c.rank < 0 {
			if c.Population >= floor {
				out = append(out, c)
			}
			continue
		}
		quota := ci.countryQuota(c.CountryCode)
		shown := int(math.Ceil(float64(quota) * frac))
		if c.rank < shown {
			out = append(out, c)
		}
	}
	return out
}

// countryQuota is the number of cities a country may show at full zoom: its
// population in millions, but at least 3.
func (ci *CityIndex) countryQuota(code string) int {
	quota := int(ci.populations[code] / 1_000_000)
	if quota < 3 {
		quota = 3
	}
	return quota
}

// populationFloor maps viewport width in degrees to the minimum population a
// city needs to be drawn; wider views demand bigger cities.
func populationFloor(viewportWidth float64) int64 {
	switch {
	case viewportWidth > 180: // world view
		return 5_000_000
	case viewportWidth > 60: // continental view
		return 2_000_000
	case viewportWidth > 20: // regional view
		return 1_000_000
	case viewportWidth > 5: // country view
		return 500_000
	default: // local view
		return 100_000
	}
}

// quotaFraction is the share of a country's city quota shown at the given
// zoom. The steps only go up as the view closes in, so the visible set never
// shrinks under increasing zoom.
func quotaFraction(zoom float64) float64 {
	switch {
	case zoom >= 10:
		return 1.0
	case zoom >= 5:
		return 0.75
	case zoom >= 2:
		return 0.5
	default:
		return 0.3
	}
}
