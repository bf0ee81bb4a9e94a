// Package config handles configuration loading and management.
package config

import (
	"github.com/Faultbox/leaf-daycycle/internal/daynight"
	"github.com/Faultbox/leaf-daycycle/internal/garden"
	lmath "github.com/Faultbox/leaf-daycycle/pkg/math"
)

// Config holds all settings.
type Config struct {
	Cycle    CycleConfig    `yaml:"cycle"`
	Lighting LightingConfig `yaml:"lighting"`
	Skybox   SkyboxConfig   `yaml:"skybox"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Audio    AudioConfig    `yaml:"audio"`
	Garden   GardenConfig   `yaml:"garden"`
	Observer ObserverConfig `yaml:"observer"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// CycleConfig holds time and smoothing settings.
type CycleConfig struct {
	DayLengthMinutes float64             `yaml:"day_length_minutes"` // Real minutes per game day
	StartHour        float64             `yaml:"start_hour"`
	TickRate         int                 `yaml:"tick_rate"` // Updates per second for headless drivers
	Thresholds       daynight.Thresholds `yaml:"thresholds"`
	SmoothingRate    float64             `yaml:"smoothing_rate"`
	Smoothing        string              `yaml:"smoothing"` // linear or exponential
}

// LightingConfig holds the per-period anchors.
type LightingConfig struct {
	Anchors daynight.Anchors `yaml:"anchors"`
}

// SkyboxConfig holds background assets and the clear color used for each.
type SkyboxConfig struct {
	Assets daynight.SkyboxSet      `yaml:"assets"`
	Tints  map[string]lmath.Color `yaml:"tints"`
}

// ViewerConfig holds window settings for the sky viewer.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AudioConfig holds ambience settings. Tracks maps a period name
// (night, sunrise, day, sunset) to a WAV file.
type AudioConfig struct {
	Enabled bool              `yaml:"enabled"`
	Volume  float64           `yaml:"volume"`
	Tracks  map[string]string `yaml:"tracks"`
}

// GardenConfig lists the plants the simulation starts with.
type GardenConfig struct {
	Plants []garden.PlantSpec `yaml:"plants"`
}

// ObserverConfig holds the state stream settings. An empty Addr disables it.
type ObserverConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Cycle: CycleConfig{
			DayLengthMinutes: 20,
			StartHour:        6,
			TickRate:         30,
			Thresholds:       daynight.DefaultThresholds(),
			SmoothingRate:    1,
			Smoothing:        "linear",
		},
		Lighting: LightingConfig{
			Anchors: daynight.DefaultAnchors(),
		},
		Skybox: SkyboxConfig{
			Assets: daynight.SkyboxSet{
				Day:     "sky_day",
				Night:   "sky_night",
				Sunrise: "sky_sunrise",
				Sunset:  "sky_sunset",
			},
			Tints: map[string]lmath.Color{
				"sky_day":     {R: 0.45, G: 0.68, B: 0.95},
				"sky_night":   {R: 0.02, G: 0.03, B: 0.10},
				"sky_sunrise": {R: 0.90, G: 0.55, B: 0.40},
				"sky_sunset":  {R: 0.80, G: 0.35, B: 0.30},
			},
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Audio: AudioConfig{
			Enabled: false,
			Volume:  0.7,
		},
		Garden: GardenConfig{
			Plants: []garden.PlantSpec{
				{Name: "Fern", Stages: []float64{2, 4, 6, 0}, WaterHours: 12, DroughtHours: 6},
				{Name: "Moonflower", Stages: []float64{3, 3, 0}, WaterHours: 10, DroughtHours: 8, NightBlooming: true},
			},
		},
		Observer: ObserverConfig{
			Addr: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the cycle sections into engine settings. The smoothing
// mode must already be valid (see Validate).
func (c *Config) Settings() daynight.Settings {
	mode, _ := daynight.ParseSmoothingMode(c.Cycle.Smoothing)
	return daynight.Settings{
		DayLengthMinutes: c.Cycle.DayLengthMinutes,
		StartHour:        c.Cycle.StartHour,
		Thresholds:       c.Cycle.Thresholds,
		Anchors:          c.Lighting.Anchors,
		Skyboxes:         c.Skybox.Assets,
		SmoothingRate:    c.Cycle.SmoothingRate,
		Smoothing:        mode,
	}
}
