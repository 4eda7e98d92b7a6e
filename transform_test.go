package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		ViewportWidth:    1200,
		ViewportHeight:   800,
		InitialZoom:      1.0,
		MinZoom:          0.3,
		MaxZoom:          50.0,
		ZoomSpeed:        1.1,
		LODCacheCapacity: 64,
	}
}

func TestTransformRoundTrip(t *testing.T) {
	states := []struct {
		name       string
		panX, panY float64
		zoom       float64
	}{
		{"initial", 600, 400, 1.0},
		{"panned", -350.5, 1200.25, 1.0},
		{"zoomed out", 0, 0, 0.3},
		{"zoomed in", 123.4, -56.7, 50.0},
	}

	for _, state := range states {
		t.Run(state.name, func(t *testing.T) {
			tr := NewTransform(testConfig())
			tr.PanX, tr.PanY, tr.Zoom = state.panX, state.panY, state.zoom

			for x := 0.0; x <= 1200; x += 150 {
				for y := 0.0; y <= 800; y += 100 {
					lon, lat := tr.ScreenToGeo(x, y)
					x2, y2 := tr.GeoToScreen(lon, lat)
					assert.InDelta(t, x, x2, 1.0)
					assert.InDelta(t, y, y2, 1.0)
				}
			}
		})
	}
}

func TestTransformGeoRoundTrip(t *testing.T) {
	tr := NewTransform(testConfig())
	tr.ZoomAt(4.2, 300, 200)
	tr.Pan(-80, 35)

	for _, p := range [][2]float64{{0, 0}, {-180, 90}, {180, -90}, {4.9, 52.37}} {
		x, y := tr.GeoToScreen(p[0], p[1])
		lon, lat := tr.ScreenToGeo(x, y)
		assert.InDelta(t, p[0], lon, 1e-9)
		assert.InDelta(t, p[1], lat, 1e-9)
	}
}

func TestZoomAnchoring(t *testing.T) {
	t.Run("anchor stays put", func(t *testing.T) {
		tr := NewTransform(testConfig())
		const ax, ay = 321.0, 456.0

		beforeLon, beforeLat := tr.ScreenToGeo(ax, ay)
		for _, factor := range []float64{1.1, 2.0, 0.5, 1.7} {
			tr.ZoomAt(factor, ax, ay)
			lon, lat := tr.ScreenToGeo(ax, ay)
			assert.InDelta(t, beforeLon, lon, 1e-6)
			assert.InDelta(t, beforeLat, lat, 1e-6)
		}
	})

	t.Run("saturated zoom leaves pan untouched", func(t *testing.T) {
		tr := NewTransform(testConfig())
		tr.Zoom = tr.MaxZoom
		panX, panY := tr.PanX, tr.PanY

		tr.ZoomAt(2.0, 100, 100)

		assert.Equal(t, tr.MaxZoom, tr.Zoom)
		assert.Equal(t, panX, tr.PanX)
		assert.Equal(t, panY, tr.PanY)
	})

	t.Run("zoom clamps to bounds", func(t *testing.T) {
		tr := NewTransform(testConfig())
		tr.ZoomAt(1000, 0, 0)
		assert.Equal(t, tr.MaxZoom, tr.Zoom)
		tr.ZoomAt(1e-6, 0, 0)
		assert.Equal(t, tr.MinZoom, tr.Zoom)
	})
}

func TestPanShiftsScreenCoordinates(t *testing.T) {
	tr := NewTransform(testConfig())
	x1, y1 := tr.GeoToScreen(10, 20)

	tr.Pan(30, -15)

	x2, y2 := tr.GeoToScreen(10, 20)
	assert.InDelta(t, x1+30, x2, 1e-9)
	assert.InDelta(t, y1-15, y2, 1e-9)
}

func TestViewportBounds(t *testing.T) {
	tr := NewTransform(testConfig())
	tr.PanX, tr.PanY = 0, 0

	view := tr.ViewportBounds(0)
	require.False(t, degenerateBound(view))
	assert.InDelta(t, -180.0, view.Min[0], 1e-9)
	assert.InDelta(t, 180.0, view.Max[0], 1e-9)
	assert.InDelta(t, -90.0, view.Min[1], 1e-9)
	assert.InDelta(t, 90.0, view.Max[1], 1e-9)

	expanded := tr.ViewportBounds(0.1)
	assert.InDelta(t, -216.0, expanded.Min[0], 1e-9)
	assert.InDelta(t, 216.0, expanded.Max[0], 1e-9)
}
