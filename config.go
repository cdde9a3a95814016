package easel

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig configures the window opened by Run. It can be written by hand or
// loaded from a YAML file:
//
//	title: Dashboard
//	width: 640
//	height: 480
//	tps: 60
//	background: midnightblue
type RunConfig struct {
	Title         string `yaml:"title,omitempty"`
	Width         int    `yaml:"width,omitempty"`
	Height        int    `yaml:"height,omitempty"`
	TPS           int    `yaml:"tps,omitempty"`
	Debug         bool   `yaml:"debug,omitempty"`
	ShowFPS       bool   `yaml:"show_fps,omitempty"`
	ScreenshotDir string `yaml:"screenshot_dir,omitempty"`

	// Background is an SVG color keyword, or empty for no clear.
	Background string `yaml:"background,omitempty"`
}

// Default window settings applied by withDefaults.
const (
	defaultWidth  = 640
	defaultHeight = 480
	defaultTPS    = 60
)

// ParseRunConfig decodes a YAML document into a RunConfig with defaults
// applied. Unknown keys are rejected.
func ParseRunConfig(data []byte) (RunConfig, error) {
	var cfg RunConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return RunConfig{}, fmt.Errorf("parse run config: %w", err)
	}
	if cfg.Background != "" {
		if _, ok := ColorByName(cfg.Background); !ok {
			return RunConfig{}, fmt.Errorf("parse run config: unknown background color %q", cfg.Background)
		}
	}
	return cfg.withDefaults(), nil
}

// LoadRunConfig reads and parses the YAML file at path.
func LoadRunConfig(path string) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("read run config: %w", err)
	}
	return ParseRunConfig(data)
}

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.TPS <= 0 {
		c.TPS = defaultTPS
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = "screenshots"
	}
	return c
}
