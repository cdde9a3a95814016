package easel

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseRunConfig(t *testing.T) {
	cfg, err := ParseRunConfig([]byte(`
title: Dashboard
width: 800
height: 600
tps: 30
debug: true
show_fps: true
screenshot_dir: shots
background: midnightblue
`))
	if err != nil {
		t.Fatal(err)
	}
	want := RunConfig{
		Title: "Dashboard", Width: 800, Height: 600, TPS: 30,
		Debug: true, ShowFPS: true, ScreenshotDir: "shots", Background: "midnightblue",
	}
	if cfg != want {
		t.Errorf("cfg = %+v, want %+v", cfg, want)
	}
}

func TestParseRunConfigDefaults(t *testing.T) {
	for _, doc := range []string{"", "title: x\n"} {
		cfg, err := ParseRunConfig([]byte(doc))
		if err != nil {
			t.Fatalf("%q: %v", doc, err)
		}
		if cfg.Width != defaultWidth || cfg.Height != defaultHeight || cfg.TPS != defaultTPS {
			t.Errorf("%q: defaults not applied: %+v", doc, cfg)
		}
		if cfg.ScreenshotDir != "screenshots" {
			t.Errorf("%q: ScreenshotDir = %q", doc, cfg.ScreenshotDir)
		}
	}
}

func TestParseRunConfigErrors(t *testing.T) {
	tests := []struct {
		doc, want string
	}{
		{"widht: 10\n", "widht"},
		{"background: notacolor\n", "unknown background"},
		{"width: [1\n", "parse run config"},
	}
	for _, tt := range tests {
		_, err := ParseRunConfig([]byte(tt.doc))
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%q: err = %v, want mention of %q", tt.doc, err, tt.want)
		}
	}
}

func TestLoadRunConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("title: From File\nwidth: 320\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRunConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "From File" || cfg.Width != 320 || cfg.Height != defaultHeight {
		t.Errorf("cfg = %+v", cfg)
	}
	if _, err := LoadRunConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}
