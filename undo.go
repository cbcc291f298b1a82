package main

import "affinelab/internal/geom"

// History holds polygon snapshots taken before each mutation.
type History struct {
	snapshots []geom.Polygon
}

func (h *History) Push(p geom.Polygon) {
	h.snapshots = append(h.snapshots, p.Clone())
}

// Pop removes and returns the most recent snapshot.
func (h *History) Pop() (geom.Polygon, bool) {
	if len(h.snapshots) == 0 {
		return nil, false
	}
	last := len(h.snapshots) - 1
	p := h.snapshots[last]
	h.snapshots[last] = nil
	h.snapshots = h.snapshots[:last]
	return p, true
}

func (h *History) Len() int { return len(h.snapshots) }

func (h *History) Clear() { h.snapshots = h.snapshots[:0] }

// record snapshots the current polygon and replaces it with next.
func (m *model) record(next geom.Polygon) *transition {
	m.history.Push(m.current)
	return m.replace(next)
}

// undo restores the polygon from before the last mutation. It does nothing
// when there is no history.
func (m *model) undo() *transition {
	prev, ok := m.history.Pop()
	if !ok {
		return nil
	}
	m.toolbar.Highlight(CmdBack)
	m.logger.Debug("undo", "depth", m.history.Len())
	return m.replace(prev)
}

// reset restores the starting shape. It cannot be undone.
func (m *model) reset() {
	m.current = m.original.Clone()
	m.history.Clear()
	m.toolbar.ClearHighlight()
	m.logger.Debug("reset")
}

func (m *model) replace(next geom.Polygon) *transition {
	prev := m.current
	m.current = next
	return newTransition(prev, next, m.config.AnimationFrames)
}
