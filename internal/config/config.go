package config

import (
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// RenderSettings holds render configuration
type RenderSettings struct {
	mu       sync.RWMutex
	fpsLimit int
	vsync    bool
	winW     int
	winH     int
}

var globalRenderSettings = &RenderSettings{
	fpsLimit: 120, // default value
	vsync:    true,
	winW:     900,
	winH:     600,
}

// fileSettings mirrors the optional YAML settings file. Pointers
// distinguish unset fields from explicit zero values.
type fileSettings struct {
	FPSLimit *int  `yaml:"fps_limit"`
	VSync    *bool `yaml:"vsync"`
	Width    *int  `yaml:"width"`
	Height   *int  `yaml:"height"`
}

// Load seeds the settings from a YAML file. A missing file keeps the
// defaults; a malformed file is reported and otherwise ignored.
func Load(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("failed to read settings file", "path", path, "error", err)
		}
		return
	}

	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		slog.Warn("failed to parse settings file", "path", path, "error", err)
		return
	}

	if fs.FPSLimit != nil {
		SetFPSLimit(*fs.FPSLimit)
	}
	if fs.VSync != nil {
		SetVSync(*fs.VSync)
	}
	if fs.Width != nil && fs.Height != nil {
		SetWindowSize(*fs.Width, *fs.Height)
	}
	slog.Info("loaded settings", "path", path)
}

// FPSLimit returns the current frame rate cap; 0 means uncapped.
func FPSLimit() int {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if limit < 0 {
		limit = 0
	}
	if limit > 1000 {
		limit = 1000
	}

	globalRenderSettings.fpsLimit = limit
}

// VSync reports whether buffer swaps wait for the display refresh.
func VSync() bool {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.vsync
}

// SetVSync toggles swap synchronization
func SetVSync(on bool) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()
	globalRenderSettings.vsync = on
}

// WindowSize returns the initial window dimensions
func WindowSize() (int, int) {
	globalRenderSettings.mu.RLock()
	defer globalRenderSettings.mu.RUnlock()
	return globalRenderSettings.winW, globalRenderSettings.winH
}

// SetWindowSize sets the initial window dimensions
func SetWindowSize(width, height int) {
	globalRenderSettings.mu.Lock()
	defer globalRenderSettings.mu.Unlock()

	// Clamp to reasonable values
	if width < 320 {
		width = 320
	}
	if height < 240 {
		height = 240
	}

	globalRenderSettings.winW = width
	globalRenderSettings.winH = height
}
