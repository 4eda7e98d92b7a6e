package main

import "go.uber.org/zap"

// World owns the loaded dataset and its query structures. Everything here is
// built once during the load phase and read-only afterwards, except the
// selection flag.
type World struct {
	Countries *CountryManager
	Index     *SpatialIndex
	Culler    *ViewportCuller
	Cities    *CityIndex
	LOD       *LODCache
}

func NewWorld(countries []*Country, cities []*City, lodCapacity uint64, logger *zap.Logger) *World {
	mgr := NewCountryManager()
	for _, c := range countries {
		mgr.Add(c)
	}

	index := NewSpatialIndex(mgr.Countries())

	populations := make(map[string]int64, len(countries))
	for _, c := range countries {
		if c.Code != "" {
			populations[c.Code] = c.Population
		}
	}

	return &World{
		Countries: mgr,
		Index:     index,
		Culler:    NewViewportCuller(index),
		Cities:    NewCityIndex(cities, populations, logger),
		LOD:       NewLODCache(lodCapacity),
	}
}

// SelectAt converts a click to geographic space and selects the country under
// it, clearing any prior selection. A click on open water clears the
// selection and returns nil.
func (w *World) SelectAt(t *Transform, x, y float64) *Country {
	lon, lat := t.ScreenToGeo(x, y)
	c := w.Index.QueryPoint(lon, lat)
	w.Countries.Select(c)
	return c
}
