package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"affinelab/internal/geom"
)

// transition animates a polygon change. frames holds the intermediate
// shapes; the final shape is model.current once the last frame is shown.
type transition struct {
	frames []geom.Polygon
	frame  int
}

type frameMsg struct{}

func newTransition(from, to geom.Polygon, n int) *transition {
	return &transition{frames: geom.Frames(from, to, n)}
}

// shape is the polygon to draw for the current frame.
func (t *transition) shape() geom.Polygon {
	return t.frames[t.frame]
}

// advance moves to the next frame and reports whether any remain.
func (t *transition) advance() bool {
	t.frame++
	return t.frame < len(t.frames)
}

func tickFrame(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{} })
}

// animate starts t, or returns nil when there is nothing to show.
func (m *model) animate(t *transition) tea.Cmd {
	if t == nil || len(t.frames) == 0 {
		return nil
	}
	m.anim = t
	return tickFrame(m.config.FrameDelay())
}

// stepAnimation handles one frame tick. When the transition finishes, input
// that arrived during it is replayed in order until another transition starts.
func (m *model) stepAnimation() tea.Cmd {
	if m.anim == nil {
		return nil
	}
	if m.anim.advance() {
		return tickFrame(m.config.FrameDelay())
	}
	m.anim = nil

	var cmds []tea.Cmd
	for len(m.pending) > 0 && m.anim == nil {
		msg := m.pending[0]
		m.pending = m.pending[1:]
		cmds = append(cmds, m.handleInput(msg))
	}
	return tea.Batch(cmds...)
}

// displayed is the polygon the view should draw right now.
func (m *model) displayed() geom.Polygon {
	if m.anim != nil {
		return m.anim.shape()
	}
	return m.current
}
