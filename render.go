package main

// ScreenPoint is a pixel coordinate, truncated from the float transform for
// drawing.
type ScreenPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// RegionDraw is one country's fill instruction: its color and its visible
// rings projected to screen space.
type RegionDraw struct {
	Name  string          `json:"name"`
	Color [3]uint8        `json:"color"`
	Rings [][]ScreenPoint `json:"rings"`
}

// CityDraw is one city marker with its label text and screen position.
type CityDraw struct {
	Name       string      `json:"name"`
	Point      ScreenPoint `json:"point"`
	Population int64       `json:"population"`
}

// Frame is everything the renderer collaborator needs for one tick.
type Frame struct {
	Regions  []RegionDraw `json:"regions"`
	Cities   []CityDraw   `json:"cities"`
	Selected string       `json:"selected,omitempty"`
	Zoom     float64      `json:"zoom"`
}

// BuildFrame assembles draw instructions for the current transform: the
// viewport rectangle is computed once, countries are culled against it, ring
// detail is picked for the zoom, and surviving points are projected to screen
// space. Cities follow the same viewport.
func (w *World) BuildFrame(t *Transform) Frame {
	view := t.ViewportBounds(viewportMargin)
	frame := Frame{Zoom: t.Zoom}

	for _, c := range w.Culler.VisibleCountries(view) {
		draw := RegionDraw{Name: c.Name, Color: c.DrawColor()}
		for _, ring := range w.LOD.RingsForZoom(c, t.Zoom) {
			culled := CullRingPoints(ring, view)
			if culled == nil {
				continue
			}
			points := make([]ScreenPoint, len(culled))
			for i, p := range culled {
				x, y := t.GeoToScreen(p[0], p[1])
				points[i] = ScreenPoint{X: int(x), Y: int(y)}
			}
			draw.Rings = append(draw.Rings, points)
		}
		if len(draw.Rings) > 0 {
			frame.Regions = append(frame.Regions, draw)
		}
	}

	for _, city := range w.Cities.VisibleCities(view, t.Zoom) {
		x, y := t.GeoToScreen(city.Point[0], city.Point[1])
		frame.Cities = append(frame.Cities, CityDraw{
			Name:       city.Name,
			Point:      ScreenPoint{X: int(x), Y: int(y)},
			Population: city.Population,
		})
	}

	if selected := w.Countries.Selected(); selected != nil {
		frame.Selected = selected.Name
	}
	return frame
}
