package main

import "github.com/kelseyhightower/envconfig"

// Config holds the runtime settings for the viewer core and its HTTP surface.
type Config struct {
	Addr          string `envconfig:"MAP_ADDR" default:":8080"`
	CountriesFile string `envconfig:"MAP_COUNTRIES_FILE" default:"countries.geo.json"`
	CitiesFile    string `envconfig:"MAP_CITIES_FILE" default:"cities.geo.json"`

	// Viewport dimensions are fixed for the lifetime of the process; the
	// windowing collaborator owns resizing and restarts with new values.
	ViewportWidth  int `envconfig:"MAP_VIEWPORT_WIDTH" default:"1200"`
	ViewportHeight int `envconfig:"MAP_VIEWPORT_HEIGHT" default:"800"`

	InitialZoom float64 `envconfig:"MAP_INITIAL_ZOOM" default:"1.0"`
	MinZoom     float64 `envconfig:"MAP_MIN_ZOOM" default:"0.3"`
	MaxZoom     float64 `envconfig:"MAP_MAX_ZOOM" default:"50"`
	ZoomSpeed   float64 `envconfig:"MAP_ZOOM_SPEED" default:"1.1"`

	LODCacheCapacity uint64 `envconfig:"MAP_LOD_CACHE_CAPACITY" default:"512"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
