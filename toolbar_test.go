package main

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 5, W: 4, H: 3}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 5, true},
		{13, 7, true},
		{14, 5, false},
		{10, 8, false},
		{9, 6, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestToolbarLayout(t *testing.T) {
	tb := NewToolbar()
	tb.Layout(120, 40)

	buttons := tb.Buttons()
	if len(buttons) != 8 {
		t.Fatalf("len(buttons) = %d, want 8", len(buttons))
	}
	for i, b := range buttons {
		got, ok := tb.ButtonAt(b.Rect.X, b.Rect.Y)
		if !ok || got.Command != b.Command {
			t.Errorf("ButtonAt(corner of %s) = %v, %v", b.Label, got.Label, ok)
		}
		if i > 0 && b.Rect.X <= buttons[i-1].Rect.X+buttons[i-1].Rect.W-1 {
			t.Errorf("%s overlaps %s", b.Label, buttons[i-1].Label)
		}
		if b.Rect.Y+b.Rect.H != 40-statusRows {
			t.Errorf("%s bottom = %d, want %d", b.Label, b.Rect.Y+b.Rect.H, 40-statusRows)
		}
	}

	if _, ok := tb.ButtonAt(0, 0); ok {
		t.Error("ButtonAt(0, 0) should miss")
	}
	cancel := tb.Cancel()
	if !tb.CancelAt(cancel.Rect.X, cancel.Rect.Y+1) {
		t.Error("CancelAt should hit the cancel rect")
	}
	if _, ok := tb.ButtonAt(cancel.Rect.X, cancel.Rect.Y); ok {
		t.Error("Cancel is not a toolbar button")
	}
}

func TestToolbarHighlightExclusive(t *testing.T) {
	tb := NewToolbar()
	if tb.Highlighted() != CmdNone {
		t.Fatalf("initial highlight = %v", tb.Highlighted())
	}

	tb.Highlight(CmdRotate)
	tb.Highlight(CmdReflectX)
	if tb.IsHighlighted(CmdRotate) || !tb.IsHighlighted(CmdReflectX) {
		t.Error("only the last highlighted command should be highlighted")
	}

	tb.Highlight(CmdCancel)
	if tb.IsHighlighted(CmdCancel) || !tb.IsHighlighted(CmdReflectX) {
		t.Error("Cancel is never highlighted")
	}

	tb.ClearHighlight()
	if tb.Highlighted() != CmdNone || tb.IsHighlighted(CmdNone) {
		t.Error("ClearHighlight should leave nothing highlighted")
	}
}

func TestToolbarHover(t *testing.T) {
	tb := NewToolbar()
	tb.Layout(120, 40)
	b := tb.Buttons()[2]

	tb.Hover(b.Rect.X, b.Rect.Y)
	if !tb.IsHovered(b.Command) {
		t.Errorf("%s should be hovered", b.Label)
	}
	c := tb.Cancel()
	tb.Hover(c.Rect.X, c.Rect.Y)
	if !tb.IsHovered(CmdCancel) || tb.IsHovered(b.Command) {
		t.Error("hover should move to Cancel")
	}
	tb.Hover(0, 0)
	if tb.IsHovered(CmdCancel) {
		t.Error("hover should clear off any button")
	}
}

func TestToolbarNarrowScreen(t *testing.T) {
	tb := NewToolbar()
	tb.Layout(20, 5)
	if x := tb.Buttons()[0].Rect.X; x != 0 {
		t.Errorf("first button x = %d, want 0", x)
	}
	if y := tb.Buttons()[0].Rect.Y; y < headerRows {
		t.Errorf("toolbar y = %d overlaps header", y)
	}
}
