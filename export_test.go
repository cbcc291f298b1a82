package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"affinelab/internal/geom"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}

func rgb(img image.Image, x, y int) (uint32, uint32, uint32) {
	r, g, b, _ := img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.png")
	s := scene{
		original: geom.Triangle(),
		current:  geom.Translate(geom.Triangle(), 200, 100),
		errorMsg: "Invalid input. Please enter valid numbers for Rotate.",
	}
	if err := renderPNG(s, path); err != nil {
		t.Fatalf("renderPNG: %v", err)
	}

	img := decodePNG(t, path)
	if b := img.Bounds(); b.Dx() != worldWidth || b.Dy() != worldHeight {
		t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), worldWidth, worldHeight)
	}

	tests := []struct {
		name    string
		at      geom.Point
		r, g, b uint32
	}{
		{"original fill", s.original.Centroid(), 100, 150, 255},
		{"current fill", s.current.Centroid(), 255, 150, 150},
		{"background", geom.Point{X: 725, Y: 475}, 255, 255, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := rgb(img, int(tt.at.X), int(tt.at.Y))
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("pixel at %v = (%d,%d,%d), want (%d,%d,%d)", tt.at, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestRenderPNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "scene.png")
	if err := renderPNG(scene{original: geom.Triangle(), current: geom.Triangle()}, path); err == nil {
		t.Error("renderPNG into a missing directory should fail")
	}
}

func TestExportCmd(t *testing.T) {
	m := newTestModel(t)
	m.config.SaveDirectory = t.TempDir()

	cmd := m.handleInput(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if cmd == nil {
		t.Fatal("p should return an export command")
	}
	msg, ok := cmd().(exportedMsg)
	if !ok {
		t.Fatalf("export returned %T", msg)
	}
	if msg.err != nil {
		t.Fatalf("export error: %v", msg.err)
	}
	if !strings.HasPrefix(filepath.Base(msg.path), "transform-") || filepath.Ext(msg.path) != ".png" {
		t.Errorf("unexpected export path %q", msg.path)
	}
	if _, err := os.Stat(msg.path); err != nil {
		t.Errorf("exported file missing: %v", err)
	}

	next, _ := m.Update(msg)
	if got := next.(model).successMessage; !strings.Contains(got, msg.path) {
		t.Errorf("successMessage = %q, want path", got)
	}
}
