package main

import (
	"testing"

	"affinelab/internal/geom"
)

func TestHistoryLIFO(t *testing.T) {
	var h History
	s0 := geom.Triangle()
	s1 := geom.Translate(s0, 1, 1)

	h.Push(s0)
	h.Push(s1)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}

	got, ok := h.Pop()
	if !ok || !geom.Equal(got, s1, 0) {
		t.Errorf("first Pop() = %v, %v, want %v", got, ok, s1)
	}
	got, ok = h.Pop()
	if !ok || !geom.Equal(got, s0, 0) {
		t.Errorf("second Pop() = %v, %v, want %v", got, ok, s0)
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop() on empty history should report false")
	}
}

func TestHistorySnapshotsAreCopies(t *testing.T) {
	var h History
	p := geom.Triangle()
	h.Push(p)
	p[0] = geom.Point{X: -1, Y: -1}

	got, _ := h.Pop()
	if !geom.Equal(got, geom.Triangle(), 0) {
		t.Errorf("snapshot changed with its source: %v", got)
	}
}

func TestHistoryClear(t *testing.T) {
	var h History
	h.Push(geom.Triangle())
	h.Push(geom.Triangle())
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() = %d after Clear", h.Len())
	}
	if _, ok := h.Pop(); ok {
		t.Error("Pop() after Clear should report false")
	}
}
