package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"affinelab/internal/geom"
)

type Config struct {
	SaveDirectory   string       `toml:"save_directory"`
	AnimationFrames int          `toml:"animation_frames"`
	FrameDelayMS    int          `toml:"frame_delay_ms"`
	Shape           [][2]float64 `toml:"shape"`
}

func defaultConfig() *Config {
	tri := geom.Triangle()
	shape := make([][2]float64, len(tri))
	for i, pt := range tri {
		shape[i] = [2]float64{pt.X, pt.Y}
	}
	return &Config{
		AnimationFrames: defaultFrames,
		FrameDelayMS:    int(defaultFrameDelay / time.Millisecond),
		Shape:           shape,
	}
}

// defaultConfigPath is ~/.config/affinelab/config.toml, or "" when the
// config directory is unknown.
func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "affinelab", "config.toml")
}

// loadConfig reads path over the defaults. When explicit is false a missing
// file is not an error.
func loadConfig(path string, explicit bool) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := config.normalize(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) normalize() error {
	if c.AnimationFrames < 1 {
		return fmt.Errorf("animation_frames must be at least 1, got %d", c.AnimationFrames)
	}
	if c.FrameDelayMS < 0 {
		return fmt.Errorf("frame_delay_ms must not be negative, got %d", c.FrameDelayMS)
	}
	if len(c.Shape) < 3 {
		return fmt.Errorf("shape needs at least 3 points, got %d", len(c.Shape))
	}
	for i, xy := range c.Shape {
		for _, v := range xy {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("shape point %d is not finite: %v", i, xy)
			}
		}
	}

	if v := c.SaveDirectory; v != "" {
		if strings.HasPrefix(v, "~") {
			if home, err := os.UserHomeDir(); err == nil {
				v = filepath.Join(home, strings.TrimPrefix(v, "~"))
			}
		}
		if !filepath.IsAbs(v) {
			if absPath, err := filepath.Abs(v); err == nil {
				v = absPath
			}
		}
		c.SaveDirectory = v
	}
	return nil
}

// Polygon is the starting shape.
func (c *Config) Polygon() geom.Polygon {
	p := make(geom.Polygon, len(c.Shape))
	for i, xy := range c.Shape {
		p[i] = geom.Point{X: xy[0], Y: xy[1]}
	}
	return p
}

func (c *Config) FrameDelay() time.Duration {
	return time.Duration(c.FrameDelayMS) * time.Millisecond
}

// GetSavePath joins filename onto the save directory, creating the
// directory if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
