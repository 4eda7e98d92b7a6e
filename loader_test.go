package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const countriesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"ADMIN": "Testland", "SOV_A3": "TST", "POP_EST": 40000000},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[-10,-10],[10,-10],[10,10],[-10,10],[-10,-10]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Other", "SOV_A3": "OTH", "POP_EST": 8000000.0},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[20,20],[30,20],[30,30],[20,30],[20,20]]],
          [[[40,40],[41,40],[40,40]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Empty"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[1,1],[0,0]]]
      }
    }
  ]
}`

const citiesGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"NAME": "Testville", "POP_MAX": 2500000, "SOV_A3": "TST"},
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Not A City", "POP_MAX": 1},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Otherton", "POP_MAX": 400000, "SOV_A3": "OTH"},
      "geometry": {"type": "Point", "coordinates": [25, 25]}
    }
  ]
}`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCountries(t *testing.T) {
	path := writeTempFile(t, "countries.geo.json", countriesGeoJSON)

	countries, err := LoadCountries(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, countries, 2, "feature with no usable ring is dropped")

	testland := countries[0]
	assert.Equal(t, "Testland", testland.Name)
	assert.Equal(t, "TST", testland.Code)
	assert.Equal(t, int64(40_000_000), testland.Population)
	require.Len(t, testland.Rings(), 1)
	assert.Len(t, testland.Rings()[0], 4, "closing point is trimmed")
	assert.True(t, testland.ContainsPoint(0, 0))

	other := countries[1]
	assert.Equal(t, "Other", other.Name)
	assert.Len(t, other.Rings(), 1, "degenerate second polygon is skipped")
}

func TestLoadCities(t *testing.T) {
	path := writeTempFile(t, "cities.geo.json", citiesGeoJSON)

	cities, err := LoadCities(path, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, cities, 2, "non-point features are skipped")

	assert.Equal(t, "Testville", cities[0].Name)
	assert.Equal(t, int64(2_500_000), cities[0].Population)
	assert.Equal(t, "TST", cities[0].CountryCode)
	assert.Equal(t, "Otherton", cities[1].Name)
}

func TestLoadCountriesErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCountries(filepath.Join(t.TempDir(), "nope.json"), zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		path := writeTempFile(t, "bad.json", "{not geojson")
		_, err := LoadCountries(path, zap.NewNop())
		assert.Error(t, err)
	})
}

func TestLoadWorld(t *testing.T) {
	cfg := testConfig()
	cfg.CountriesFile = writeTempFile(t, "countries.geo.json", countriesGeoJSON)
	cfg.CitiesFile = writeTempFile(t, "cities.geo.json", citiesGeoJSON)

	world, err := LoadWorld(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, world.Countries.Len())
	assert.Len(t, world.Cities.Cities(), 2)

	t.Run("missing cities layer is tolerated", func(t *testing.T) {
		cfg.CitiesFile = filepath.Join(t.TempDir(), "absent.json")
		world, err := LoadWorld(cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Empty(t, world.Cities.Cities())
	})
}
