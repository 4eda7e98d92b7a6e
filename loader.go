package main

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

// LoadCountries reads a GeoJSON FeatureCollection of country boundaries.
// Only exterior rings are kept. Malformed rings are skipped with a warning;
// a feature left with no usable ring is dropped, the rest of the load
// continues.
func LoadCountries(path string, logger *zap.Logger) ([]*Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading countries file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing countries geojson: %w", err)
	}

	countries := make([]*Country, 0, len(fc.Features))
	for idx, f := range fc.Features {
		name := featureName(f.Properties, idx)
		code, _ := f.Properties["SOV_A3"].(string)
		population := propertyInt(f.Properties, "POP_EST")

		var rings []orb.Ring
		for _, ring := range exteriorRings(f.Geometry) {
			ring = trimClosingPoint(ring)
			if !validRing(ring) {
				logger.Warn("skipping malformed ring",
					zap.String("country", name),
					zap.Int("points", len(ring)))
				continue
			}
			rings = append(rings, ring)
		}
		if len(rings) == 0 {
			logger.Warn("dropping country with no usable rings", zap.String("country", name))
			continue
		}

		countries = append(countries, NewCountry(name, code, population, rings))
	}

	logger.Info("countries loaded", zap.Int("count", len(countries)))
	return countries, nil
}

// LoadCities reads a GeoJSON FeatureCollection of city point features with
// NAME, POP_MAX and SOV_A3 properties. Non-point features are skipped.
func LoadCities(path string, logger *zap.Logger) ([]*City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading cities file: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing cities geojson: %w", err)
	}

	cities := make([]*City, 0, len(fc.Features))
	for idx, f := range fc.Features {
		point, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		population := propertyInt(f.Properties, "POP_MAX")
		if population < 0 {
			population = 0
		}
		code, _ := f.Properties["SOV_A3"].(string)
		cities = append(cities, &City{
			Name:        featureName(f.Properties, idx),
			Point:       point,
			Population:  population,
			CountryCode: code,
		})
	}

	logger.Info("cities loaded", zap.Int("count", len(cities)))
	return cities, nil
}

// LoadWorld loads both layers and assembles the query structures. A missing
// cities layer is tolerated; the viewer just draws no cities.
func LoadWorld(cfg *Config, logger *zap.Logger) (*World, error) {
	countries, err := LoadCountries(cfg.CountriesFile, logger)
	if err != nil {
		return nil, err
	}

	cities, err := LoadCities(cfg.CitiesFile, logger)
	if err != nil {
		logger.Warn("cities layer unavailable", zap.Error(err))
		cities = nil
	}

	return NewWorld(countries, cities, cfg.LODCacheCapacity, logger), nil
}

// featureName tries the property names the datasets disagree on, in the same
// priority order the datasets were authored against.
func featureName(props geojson.Properties, idx int) string {
	for _, key := range []string{"NAME_EN", "ADMIN", "NAME"} {
		if name, ok := props[key].(string); ok && name != "" {
			return name
		}
	}
	return fmt.Sprintf("Country_%d", idx)
}

// propertyInt reads a numeric property that JSON decoding may have produced
// as a float.
func propertyInt(props geojson.Properties, key string) int64 {
	switch v := props[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}

// exteriorRings extracts the outer boundary of each polygon; interior rings
// (holes) are not modeled.
func exteriorRings(g orb.Geometry) []orb.Ring {
	switch geom := g.(type) {
	case orb.Polygon:
		if len(geom) > 0 {
			return []orb.Ring{geom[0]}
		}
	case orb.MultiPolygon:
		rings := make([]orb.Ring, 0, len(geom))
		for _, poly := range geom {
			if len(poly) > 0 {
				rings = append(rings, poly[0])
			}
		}
		return rings
	}
	return nil
}

// trimClosingPoint drops the duplicated closing point GeoJSON rings carry;
// rings here are implicitly closed.
func trimClosingPoint(ring orb.Ring) orb.Ring {
	if n := len(ring); n > 1 && ring[0] == ring[n-1] {
		return ring[:n-1]
	}
	return ring
}
