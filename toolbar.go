package main

// Rect is a region of terminal cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

type Button struct {
	Label   string
	Command Command
	Rect    Rect
}

// Toolbar is the row of command buttons plus the Cancel button shown next
// to the input box. At most one toolbar button is highlighted; Cancel never is.
type Toolbar struct {
	buttons     []Button
	cancel      Button
	highlighted Command
	hovered     Command
}

var toolbarCommands = []struct {
	label string
	cmd   Command
}{
	{"Translate", CmdTranslate},
	{"Scale", CmdScale},
	{"Rotate", CmdRotate},
	{"Reflect X", CmdReflectX},
	{"Reflect Y", CmdReflectY},
	{"Shear", CmdShear},
	{"Reset", CmdReset},
	{"Back", CmdBack},
}

func NewToolbar() Toolbar {
	tb := Toolbar{
		buttons: make([]Button, len(toolbarCommands)),
		cancel:  Button{Label: "Cancel", Command: CmdCancel},
	}
	for i, c := range toolbarCommands {
		tb.buttons[i] = Button{Label: c.label, Command: c.cmd}
	}
	return tb
}

// Layout places the buttons for a screen of width×height cells: toolbar
// centred above the status line, Cancel at the right end of the input row.
func (tb *Toolbar) Layout(width, height int) {
	n := len(tb.buttons)
	total := n*buttonWidth + (n-1)*buttonSpacing
	startX := (width - total) / 2
	if startX < 0 {
		startX = 0
	}
	y := height - statusRows - toolbarRows
	if y < headerRows {
		y = headerRows
	}
	for i := range tb.buttons {
		tb.buttons[i].Rect = Rect{
			X: startX + i*(buttonWidth+buttonSpacing),
			Y: y,
			W: buttonWidth,
			H: buttonHeight,
		}
	}

	cx := width - cancelWidth - 1
	if cx < 0 {
		cx = 0
	}
	tb.cancel.Rect = Rect{X: cx, Y: 2, W: cancelWidth, H: buttonHeight}
}

// ButtonAt returns the toolbar button under cell (x, y). Cancel is not
// included; see CancelAt.
func (tb *Toolbar) ButtonAt(x, y int) (Button, bool) {
	for _, b := range tb.buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

func (tb *Toolbar) CancelAt(x, y int) bool {
	return tb.cancel.Rect.Contains(x, y)
}

func (tb *Toolbar) Highlight(cmd Command) {
	if cmd == CmdCancel {
		return
	}
	tb.highlighted = cmd
}

func (tb *Toolbar) ClearHighlight() { tb.highlighted = CmdNone }

func (tb *Toolbar) Highlighted() Command { return tb.highlighted }

func (tb *Toolbar) IsHighlighted(cmd Command) bool {
	return cmd != CmdNone && tb.highlighted == cmd
}

// Hover records the button under the mouse pointer, if any.
func (tb *Toolbar) Hover(x, y int) {
	tb.hovered = CmdNone
	if b, ok := tb.ButtonAt(x, y); ok {
		tb.hovered = b.Command
	} else if tb.CancelAt(x, y) {
		tb.hovered = CmdCancel
	}
}

func (tb *Toolbar) IsHovered(cmd Command) bool {
	return cmd != CmdNone && tb.hovered == cmd
}

func (tb *Toolbar) Buttons() []Button { return tb.buttons }

func (tb *Toolbar) Cancel() Button { return tb.cancel }
