package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the full runtime configuration for the scene monitor.
type Config struct {
	// ConsoleAddr is the console's OSC control endpoint, host:port.
	ConsoleAddr string
	// ScenePath is the scene file to watch.
	ScenePath string

	ProbeTimeout time.Duration
	ReadTimeout  time.Duration
	SendGap      time.Duration
	PollInterval time.Duration
	Debounce     time.Duration
	QueueSize    int

	// MetricsAddr serves the Prometheus endpoint when non-empty.
	MetricsAddr string

	Fader FaderConfig
}

// FaderConfig is the replaceable calibration table for the fader curve.
// Empty anchors mean the built-in calibration.
type FaderConfig struct {
	FloorDB   float64
	CeilingDB float64
	Anchors   []AnchorConfig
}

type AnchorConfig struct {
	DB   float64 `toml:"db"`
	Norm float64 `toml:"norm"`
}

func Default() Config {
	return Config{
		ProbeTimeout: 2 * time.Second,
		ReadTimeout:  time.Second,
		SendGap:      100 * time.Millisecond,
		PollInterval: 500 * time.Millisecond,
		Debounce:     500 * time.Millisecond,
		QueueSize:    64,
	}
}

// fileConfig is the raw TOML shape; durations arrive as strings.
type fileConfig struct {
	ConsoleAddr  string     `toml:"console_addr"`
	ScenePath    string     `toml:"scene_path"`
	ProbeTimeout string     `toml:"probe_timeout"`
	ReadTimeout  string     `toml:"read_timeout"`
	SendGap      string     `toml:"send_gap"`
	PollInterval string     `toml:"poll_interval"`
	Debounce     string     `toml:"debounce"`
	QueueSize    int        `toml:"queue_size"`
	MetricsAddr  string     `toml:"metrics_addr"`
	Fader        faderTable `toml:"fader"`
}

type faderTable struct {
	FloorDB   float64        `toml:"floor_db"`
	CeilingDB float64        `toml:"ceiling_db"`
	Anchors   []AnchorConfig `toml:"anchors"`
}

// Load reads path and overlays whatever it defines onto the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("console_addr") {
		cfg.ConsoleAddr = strings.TrimSpace(raw.ConsoleAddr)
	}
	if meta.IsDefined("scene_path") {
		cfg.ScenePath = strings.TrimSpace(raw.ScenePath)
	}
	for _, d := range []struct {
		key string
		raw string
		dst *time.Duration
	}{
		{"probe_timeout", raw.ProbeTimeout, &cfg.ProbeTimeout},
		{"read_timeout", raw.ReadTimeout, &cfg.ReadTimeout},
		{"send_gap", raw.SendGap, &cfg.SendGap},
		{"poll_interval", raw.PollInterval, &cfg.PollInterval},
		{"debounce", raw.Debounce, &cfg.Debounce},
	} {
		if !meta.IsDefined(d.key) {
			continue
		}
		parsed, err := time.ParseDuration(strings.TrimSpace(d.raw))
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", d.key, err)
		}
		*d.dst = parsed
	}
	if meta.IsDefined("queue_size") {
		cfg.QueueSize = raw.QueueSize
	}
	if meta.IsDefined("metrics_addr") {
		cfg.MetricsAddr = strings.TrimSpace(raw.MetricsAddr)
	}
	if meta.IsDefined("fader") {
		cfg.Fader = FaderConfig(raw.Fader)
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.ConsoleAddr) == "" {
		return fmt.Errorf("config missing console_addr")
	}
	if strings.TrimSpace(cfg.ScenePath) == "" {
		return fmt.Errorf("config missing scene_path")
	}
	if cfg.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive")
	}
	if cfg.Debounce < 0 {
		return fmt.Errorf("debounce must not be negative")
	}
	if cfg.SendGap < 0 {
		return fmt.Errorf("send_gap must not be negative")
	}
	if cfg.QueueSize <= 0 {
		return fmt.Errorf("queue_size must be positive")
	}
	return nil
}
