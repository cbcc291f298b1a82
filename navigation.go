package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"affinelab/internal/geom"
)

const nudgeStep = 10.0

// nudgeDelta maps an arrow key to a translation. Shift doubles the step.
func nudgeDelta(key string) (dx, dy float64, ok bool) {
	speed := nudgeStep * getMoveSpeed(key)
	switch key {
	case "left", "shift+left":
		return -speed, 0, true
	case "right", "shift+right":
		return speed, 0, true
	case "up", "shift+up":
		return 0, -speed, true
	case "down", "shift+down":
		return 0, speed, true
	}
	return 0, 0, false
}

func getMoveSpeed(key string) float64 {
	switch key {
	case "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// handleNudge moves the shape with the arrow keys. Each nudge is an
// ordinary translate and can be undone.
func (m *model) handleNudge(key string) (tea.Cmd, bool) {
	dx, dy, ok := nudgeDelta(key)
	if !ok {
		return nil, false
	}
	m.successMessage = ""
	m.logger.Debug("nudge", "dx", dx, "dy", dy)
	return m.animate(m.record(geom.Translate(m.current, dx, dy))), true
}
