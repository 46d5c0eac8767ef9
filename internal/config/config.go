// Package config loads folio settings from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "folio"

type Config struct {
	FPS     int    `koanf:"fps"`
	Seed    uint64 `koanf:"seed"` // 0 picks a random seed
	Content string `koanf:"content"`

	Waves    WavesConfig    `koanf:"waves"`
	Nav      NavConfig      `koanf:"nav"`
	Progress ProgressConfig `koanf:"progress"`
}

// WavesConfig controls the background field.
type WavesConfig struct {
	Stroke             string  `koanf:"stroke"`
	Background         string  `koanf:"background"`
	Opacity            float64 `koanf:"opacity"`              // terminals need more than the 5% a canvas uses
	RegenerateOnResize bool    `koanf:"regenerate_on_resize"` // respace strands on resize
}

// NavConfig controls the navigation bar.
type NavConfig struct {
	CompactThreshold float64 `koanf:"compact_threshold"` // rows scrolled before the bar condenses
	Breakpoint       int     `koanf:"breakpoint"`        // columns at which inline links replace the menu
}

// ProgressConfig controls the scroll progress spring.
type ProgressConfig struct {
	Stiffness float64 `koanf:"stiffness"`
	Damping   float64 `koanf:"damping"`
	RestDelta float64 `koanf:"rest_delta"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		FPS: 30,
		Waves: WavesConfig{
			Stroke:     "#FFFFFF",
			Background: "#050505",
			Opacity:    0.22,
		},
		Nav: NavConfig{
			CompactThreshold: 3,
			Breakpoint:       80,
		},
		Progress: ProgressConfig{
			Stiffness: 100,
			Damping:   30,
			RestDelta: 0.001,
		},
	}
}

// Load merges config files over the defaults. Later files win:
// $XDG_CONFIG_HOME/folio/config.toml, ./folio.toml, then explicit.
// A missing explicit file is an error; missing search paths are skipped.
func Load(explicit string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if explicit != "" {
		path := expandPath(explicit)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Content = expandPath(cfg.Content)
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	d := Default()
	if c.FPS <= 0 || c.FPS > 240 {
		c.FPS = d.FPS
	}
	if c.Waves.Opacity <= 0 || c.Waves.Opacity > 1 {
		c.Waves.Opacity = d.Waves.Opacity
	}
	if c.Nav.Breakpoint <= 0 {
		c.Nav.Breakpoint = d.Nav.Breakpoint
	}
	if c.Progress.Stiffness <= 0 {
		c.Progress.Stiffness = d.Progress.Stiffness
	}
	if c.Progress.Damping <= 0 {
		c.Progress.Damping = d.Progress.Damping
	}
	if c.Progress.RestDelta <= 0 {
		c.Progress.RestDelta = d.Progress.RestDelta
	}
}

func searchPaths() []string {
	var paths []string
	if p, err := xdg.SearchConfigFile(filepath.Join(appName, "config.toml")); err == nil {
		paths = append(paths, p)
	}
	paths = append(paths, appName+".toml")
	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
