package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"affinelab/internal/geom"
)

var (
	pngGrid      = color.RGBA{220, 220, 220, 255}
	pngAxes      = color.RGBA{150, 150, 150, 255}
	pngOrigFill  = color.RGBA{100, 150, 255, 255}
	pngOrigEdge  = color.RGBA{0, 0, 255, 255}
	pngCurFill   = color.RGBA{255, 150, 150, 255}
	pngCurEdge   = color.RGBA{255, 0, 0, 255}
	pngErrorText = color.RGBA{255, 50, 50, 255}
)

type exportedMsg struct {
	path string
	err  error
}

// scene is what a PNG export draws.
type scene struct {
	original geom.Polygon
	current  geom.Polygon
	errorMsg string
}

// renderPNG draws s on an 800×600 image and writes it to filename.
func renderPNG(s scene, filename string) error {
	dc := gg.NewContext(worldWidth, worldHeight)
	dc.SetColor(color.White)
	dc.Clear()

	dc.SetLineWidth(1)
	dc.SetColor(pngGrid)
	for x := 0; x < worldWidth; x += gridStep {
		dc.DrawLine(float64(x), 0, float64(x), worldHeight)
		dc.Stroke()
	}
	for y := 0; y < worldHeight; y += gridStep {
		dc.DrawLine(0, float64(y), worldWidth, float64(y))
		dc.Stroke()
	}

	dc.SetLineWidth(2)
	dc.SetColor(pngAxes)
	dc.DrawLine(worldWidth/2, 0, worldWidth/2, worldHeight)
	dc.Stroke()
	dc.DrawLine(0, worldHeight/2, worldWidth, worldHeight/2)
	dc.Stroke()

	drawPolygonPNG(dc, s.original, pngOrigFill, pngOrigEdge)
	drawPolygonPNG(dc, s.current, pngCurFill, pngCurEdge)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    16,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	dc.SetColor(color.Black)
	dc.DrawStringAnchored(infoText, 10, 10, 0, 1)
	if s.errorMsg != "" {
		dc.SetColor(pngErrorText)
		dc.DrawStringAnchored(s.errorMsg, 10, 100, 0, 1)
	}

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func drawPolygonPNG(dc *gg.Context, p geom.Polygon, fill, edge color.Color) {
	if len(p) == 0 {
		return
	}
	dc.NewSubPath()
	for _, pt := range p {
		dc.LineTo(pt.X, pt.Y)
	}
	dc.ClosePath()
	dc.SetColor(fill)
	dc.FillPreserve()
	dc.SetColor(edge)
	dc.SetLineWidth(3)
	dc.Stroke()
}

func (m *model) snapshot() scene {
	return scene{
		original: m.original.Clone(),
		current:  m.current.Clone(),
		errorMsg: m.errorMessage,
	}
}

// exportCmd writes the scene to a timestamped PNG in the save directory.
func (m *model) exportCmd() tea.Cmd {
	s := m.snapshot()
	name := fmt.Sprintf("transform-%s.png", time.Now().Format("20060102-150405"))
	config := m.config
	return func() tea.Msg {
		path, err := config.GetSavePath(name)
		if err != nil {
			return exportedMsg{err: err}
		}
		if err := renderPNG(s, path); err != nil {
			return exportedMsg{err: err}
		}
		if absPath, err := filepath.Abs(path); err == nil {
			path = absPath
		}
		return exportedMsg{path: path}
	}
}
