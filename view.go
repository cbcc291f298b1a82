package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorBlue      = lipgloss.Color("33")
	colorLightBlue = lipgloss.Color("111")
	colorRed       = lipgloss.Color("196")
	colorPink      = lipgloss.Color("217")
	colorGrid      = lipgloss.Color("237")
	colorAxes      = lipgloss.Color("245")
	colorGreen     = lipgloss.Color("40")
	colorOrange    = lipgloss.Color("214")
	colorCancel    = lipgloss.Color("203")
	colorBlack     = lipgloss.Color("16")
	colorDim       = lipgloss.Color("240")
	colorActive    = lipgloss.Color("229")
)

var layerStyles = map[layer]lipgloss.Style{
	layerGrid:         lipgloss.NewStyle().Foreground(colorGrid),
	layerAxes:         lipgloss.NewStyle().Foreground(colorAxes),
	layerOriginalFill: lipgloss.NewStyle().Foreground(colorLightBlue),
	layerCurrentFill:  lipgloss.NewStyle().Foreground(colorPink),
	layerOriginalEdge: lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
	layerCurrentEdge:  lipgloss.NewStyle().Foreground(colorRed).Bold(true),
}

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Align(lipgloss.Center).
			Width(buttonWidth - 2)
	buttonHoverStyle  = buttonStyle.BorderForeground(colorLightBlue).Foreground(colorLightBlue)
	buttonActiveStyle = buttonStyle.Background(colorGreen).Foreground(colorBlack)
	buttonBackStyle   = buttonStyle.Background(colorOrange).Foreground(colorBlack)
	cancelStyle       = buttonStyle.Width(cancelWidth - 2).BorderForeground(colorCancel).Foreground(colorCancel)
	cancelHoverStyle  = cancelStyle.Background(colorCancel).Foreground(colorBlack)

	inputStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorActive)
	errorStyle       = lipgloss.NewStyle().Foreground(colorCancel)
	successStyle     = lipgloss.NewStyle().Foreground(colorGreen)
	statusStyle      = lipgloss.NewStyle().Foreground(colorDim)
	helpTitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	helpSectionStyle = lipgloss.NewStyle().Bold(true)
)

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.help {
		return m.helpView()
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")

	canvasRows := m.height - headerRows - toolbarRows - statusRows
	if canvasRows < 1 {
		canvasRows = 1
	}
	canvas := NewCanvas(m.width, canvasRows)
	canvas.DrawScene(m.original, m.displayed())
	b.WriteString(strings.Join(canvas.Render(layerStyles), "\n"))
	b.WriteString("\n")

	b.WriteString(m.toolbarView())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// headerView is always headerRows tall so the canvas and toolbar do not
// shift when the input box opens.
func (m model) headerView() string {
	lines := make([]string, 0, headerRows)
	lines = append(lines, infoText)

	if m.mode == ModeAwaitingInput {
		lines = append(lines, m.kind.Prompt())
		boxWidth := m.width - cancelWidth - 4
		if boxWidth < 4 {
			boxWidth = 4
		}
		shown := []rune(m.buffer)
		if len(shown) > boxWidth-1 {
			shown = shown[len(shown)-(boxWidth-1):]
		}
		box := inputStyle.Width(boxWidth).Render(string(shown) + "█")
		cancel := cancelStyle
		if m.toolbar.IsHovered(CmdCancel) {
			cancel = cancelHoverStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, box, " ", cancel.Render("Cancel"))
		lines = append(lines, strings.Split(row, "\n")...)
	} else {
		lines = append(lines, "", "", "", "")
	}

	if m.errorMessage != "" {
		lines = append(lines, errorStyle.Render(m.errorMessage))
	} else {
		lines = append(lines, "")
	}

	for len(lines) < headerRows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:headerRows], "\n")
}

func (m model) toolbarView() string {
	buttons := m.toolbar.Buttons()
	rendered := make([]string, 0, 2*len(buttons))
	for i, btn := range buttons {
		if i > 0 {
			rendered = append(rendered, strings.Repeat(" ", buttonSpacing))
		}
		rendered = append(rendered, m.buttonStyle(btn.Command).Render(btn.Label))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

	indent := 0
	if len(buttons) > 0 {
		indent = buttons[0].Rect.X
	}
	return lipgloss.NewStyle().PaddingLeft(indent).Render(row)
}

func (m model) buttonStyle(cmd Command) lipgloss.Style {
	switch {
	case m.toolbar.IsHighlighted(cmd) && cmd == CmdBack:
		return buttonBackStyle
	case m.toolbar.IsHighlighted(cmd):
		return buttonActiveStyle
	case m.toolbar.IsHovered(cmd):
		return buttonHoverStyle
	}
	return buttonStyle
}

func (m model) statusLine() string {
	if m.successMessage != "" {
		return successStyle.Render(m.successMessage)
	}
	c := m.current.Centroid()
	hint := "t/s/r/h transform  x/y reflect  u undo  0 reset  p png  ? help  q quit"
	if m.mode == ModeAwaitingInput {
		hint = "enter apply  esc cancel  ctrl+v paste"
	}
	return statusStyle.Render(fmt.Sprintf("center %s  history %d  %s", c, m.history.Len(), hint))
}

var helpLines = []string{
	"Transform Demo Help",
	"===================",
	"",
	"Transforms (click a button or press the key):",
	"  t   Translate by tx,ty",
	"  s   Scale by sx,sy about the center",
	"  r   Rotate by an angle in degrees about the center",
	"  h   Shear by shx,shy about the center",
	"  x   Reflect across the horizontal line through the center",
	"  y   Reflect across the vertical line through the center",
	"",
	"Input box:",
	"  enter    Apply the values",
	"  esc      Cancel (same as the Cancel button)",
	"  ctrl+v   Paste from clipboard",
	"",
	"General:",
	"  u/b   Undo the last change",
	"  0     Reset to the original triangle (clears undo history)",
	"  p     Save the scene as PNG",
	"  c     Copy current coordinates to the clipboard",
	"  ?     Toggle this help",
	"  q     Quit",
}

func (m model) helpView() string {
	var b strings.Builder
	for i, line := range helpLines {
		switch {
		case i == 0:
			line = helpTitleStyle.Render(line)
		case strings.HasSuffix(line, ":"):
			line = helpSectionStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(statusStyle.Render("press any key to return"))
	return b.String()
}
