package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

var (
	globalWorld     *World
	globalTransform *Transform
	stateMutex      sync.RWMutex

	globalConfig *Config
	logger       *zap.Logger
)

// GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	stateMutex.RLock()
	loaded := globalWorld != nil
	numCountries := 0
	numCities := 0
	if loaded {
		numCountries = globalWorld.Countries.Len()
		numCities = len(globalWorld.Cities.Cities())
	}
	stateMutex.RUnlock()

	status := "ready"
	if !loaded {
		status = "waiting for map data"
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    status,
		"countries": numCountries,
		"cities":    numCities,
	})
}

// POST /reload - re-read the data files, replacing the whole dataset
func reloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	world, err := LoadWorld(globalConfig, logger)
	if err != nil {
		logger.Error("reload failed", zap.Error(err))
		http.Error(w, "reload failed", http.StatusInternalServerError)
		return
	}

	stateMutex.Lock()
	globalWorld = world
	globalTransform = NewTransform(globalConfig)
	stateMutex.Unlock()

	logger.Info("map data reloaded", zap.Int("countries", world.Countries.Len()))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success":   true,
		"countries": world.Countries.Len(),
	})
}

// POST /pan - shift the view by a screen-pixel delta
func panHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		DX float64 `json:"dx"`
		DY float64 `json:"dy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stateMutex.Lock()
	globalTransform.Pan(req.DX, req.DY)
	stateMutex.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

// POST /zoom - scale the zoom factor about a screen anchor
func zoomHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Factor float64 `json:"factor"`
		X      float64 `json:"x"`
		Y      float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Factor <= 0 {
		req.Factor = globalConfig.ZoomSpeed
	}

	stateMutex.Lock()
	globalTransform.ZoomAt(req.Factor, req.X, req.Y)
	zoom := globalTransform.Zoom
	stateMutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"zoom": zoom})
}

// POST /select - click-to-select at a screen coordinate
func selectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	stateMutex.Lock()
	selected := globalWorld.SelectAt(globalTransform, req.X, req.Y)
	stateMutex.Unlock()

	name := ""
	if selected != nil {
		name = selected.Name
		logger.Debug("country selected", zap.String("name", name))
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"selected": name})
}

// GET /frame - draw instructions for the current pan/zoom state
func frameHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stateMutex.Lock()
	frame := globalWorld.BuildFrame(globalTransform)
	stateMutex.Unlock()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(frame)
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	globalConfig = cfg

	logger, err = NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	world, err := LoadWorld(cfg, logger)
	if err != nil {
		logger.Fatal("loading map data", zap.Error(err))
	}

	stateMutex.Lock()
	globalWorld = world
	globalTransform = NewTransform(cfg)
	stateMutex.Unlock()

	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/reload", reloadHandler)
	http.HandleFunc("/pan", panHandler)
	http.HandleFunc("/zoom", zoomHandler)
	http.HandleFunc("/select", selectHandler)
	http.HandleFunc("/frame", frameHandler)

	logger.Info("map viewer server starting",
		zap.String("addr", cfg.Addr),
		zap.Int("countries", world.Countries.Len()),
		zap.Int("cities", len(world.Cities.Cities())))

	if err := http.ListenAndServe(cfg.Addr, nil); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
