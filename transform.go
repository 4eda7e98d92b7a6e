package main

import (
	"math"

	"github.com/paulmach/orb"
)

// Transform maps geographic degrees to screen pixels under the current pan
// offset and zoom factor. The mapping is a flat equirectangular projection:
// longitude spans the viewport width, latitude the viewport height.
type Transform struct {
	PanX, PanY float64
	Zoom       float64
	Width      int
	Height     int

	MinZoom   float64
	MaxZoom   float64
	ZoomSpeed float64
}

// NewTransform starts centered the way the original viewer does, with the pan
// offset at half the viewport.
func NewTransform(cfg *Config) *Transform {
	return &Transform{
		PanX:      float64(cfg.ViewportWidth) / 2,
		PanY:      float64(cfg.ViewportHeight) / 2,
		Zoom:      cfg.InitialZoom,
		Width:     cfg.ViewportWidth,
		Height:    cfg.ViewportHeight,
		MinZoom:   cfg.MinZoom,
		MaxZoom:   cfg.MaxZoom,
		ZoomSpeed: cfg.ZoomSpeed,
	}
}

// GeoToScreen converts a geographic coordinate to screen pixels. Results stay
// in floating point; only the renderer truncates to integers.
func (t *Transform) GeoToScreen(lon, lat float64) (float64, float64) {
	x := (lon+180)/360*float64(t.Width)*t.Zoom + t.PanX
	y := (-lat+90)/180*float64(t.Height)*t.Zoom + t.PanY
	return x, y
}

// ScreenToGeo is the algebraic inverse of GeoToScreen.
func (t *Transform) ScreenToGeo(x, y float64) (float64, float64) {
	nx := (x - t.PanX) / (float64(t.Width) * t.Zoom)
	ny := (y - t.PanY) / (float64(t.Height) * t.Zoom)
	return nx*360 - 180, -(ny*180 - 90)
}

// Pan shifts the view by a screen-pixel delta. There is no clamping; panning
// past the data extent just yields an empty viewport.
func (t *Transform) Pan(dx, dy float64) {
	t.PanX += dx
	t.PanY += dy
}

// ZoomAt scales the zoom factor about a screen anchor, adjusting the pan
// offset so the geographic point under the anchor stays under it. When the
// zoom saturates at a bound the pan offset is left untouched.
func (t *Transform) ZoomAt(factor, anchorX, anchorY float64) {
	lon, lat := t.ScreenToGeo(anchorX, anchorY)

	old := t.Zoom
	t.Zoom = math.Min(math.Max(t.Zoom*factor, t.MinZoom), t.MaxZoom)
	if t.Zoom == old {
		return
	}

	newX, newY := t.GeoToScreen(lon, lat)
	t.PanX += anchorX - newX
	t.PanY += anchorY - newY
}

// ViewportBounds returns the geographic rectangle visible on screen, expanded
// on every side by margin as a fraction of the viewport width. The margin
// hides pop-in at the edges while panning.
func (t *Transform) ViewportBounds(margin float64) orb.Bound {
	minLon, maxLat := t.ScreenToGeo(0, 0)
	maxLon, minLat := t.ScreenToGeo(float64(t.Width), float64(t.Height))

	m := (maxLon - minLon) * margin
	return orb.Bound{
		Min: orb.Point{minLon - m, minLat - m},
		Max: orb.Point{maxLon + m, maxLat + m},
	}
}
