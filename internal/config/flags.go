package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagDayLength  = flag.Float64("day-length", 0, "Real minutes per game day")
	flagStartHour  = flag.Float64("start-hour", -1, "Hour of day to start at (0-24)")
	flagSmoothing  = flag.String("smoothing", "", "Lighting smoothing: linear or exponential")
	flagObserve    = flag.String("observe", "", "Listen address for the state stream")
	flagWindowed   = flag.Bool("windowed", false, "Run the viewer in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run the viewer in fullscreen mode")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagDayLength > 0 {
		cfg.Cycle.DayLengthMinutes = *flagDayLength
	}
	if *flagStartHour >= 0 {
		cfg.Cycle.StartHour = *flagStartHour
	}
	if *flagSmoothing != "" {
		cfg.Cycle.Smoothing = *flagSmoothing
	}
	if *flagObserve != "" {
		cfg.Observer.Addr = *flagObserve
	}
	if *flagWindowed {
		cfg.Viewer.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
