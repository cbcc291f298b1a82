package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"affinelab/internal/geom"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.toolbar.Layout(m.width, m.height)
		return m, nil

	case frameMsg:
		return m, m.stepAnimation()

	case exportedMsg:
		if msg.err != nil {
			m.errorMessage = "Export failed: " + msg.err.Error()
			m.logger.Error("export failed", "err", msg.err)
		} else {
			m.successMessage = "Saved to " + msg.path
			m.logger.Info("exported", "path", msg.path)
		}
		return m, nil

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.toolbar.Hover(msg.X, msg.Y)
			return m, nil
		}
		if m.anim != nil {
			m.pending = append(m.pending, msg)
			return m, nil
		}
		return m, m.handleInput(msg)

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.anim != nil {
			m.pending = append(m.pending, msg)
			return m, nil
		}
		return m, m.handleInput(msg)
	}
	return m, nil
}

// handleInput routes a key or mouse event. It is never called while a
// transition is running.
func (m *model) handleInput(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.help {
			m.help = false
			return nil
		}
		if m.mode == ModeAwaitingInput {
			return m.handleInputKey(msg)
		}
		return m.handleIdleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if m.help {
				m.help = false
				return nil
			}
			return m.handleClick(msg.X, msg.Y)
		}
	}
	return nil
}

func (m *model) handleClick(x, y int) tea.Cmd {
	if m.mode == ModeAwaitingInput {
		if m.toolbar.CancelAt(x, y) {
			m.cancelInput()
		}
		return nil
	}

	m.errorMessage = ""
	b, ok := m.toolbar.ButtonAt(x, y)
	if !ok {
		return nil
	}
	return m.runCommand(b.Command)
}

func (m *model) handleIdleKey(msg tea.KeyMsg) tea.Cmd {
	if cmd, ok := m.handleNudge(msg.String()); ok {
		return cmd
	}

	switch msg.String() {
	case "q":
		return tea.Quit
	case "?":
		m.help = true
	case "t":
		return m.runCommand(CmdTranslate)
	case "s":
		return m.runCommand(CmdScale)
	case "r":
		return m.runCommand(CmdRotate)
	case "x":
		return m.runCommand(CmdReflectX)
	case "y":
		return m.runCommand(CmdReflectY)
	case "h":
		return m.runCommand(CmdShear)
	case "0":
		return m.runCommand(CmdReset)
	case "u", "b":
		return m.runCommand(CmdBack)
	case "p":
		return m.exportCmd()
	case "c":
		m.copyCoordinates()
	}
	return nil
}

func (m *model) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyEscape {
		m.cancelInput()
		return nil
	}

	m.errorMessage = ""
	switch msg.Type {
	case tea.KeyEnter:
		return m.commitInput()
	case tea.KeyBackspace:
		if r := []rune(m.buffer); len(r) > 0 {
			m.buffer = string(r[:len(r)-1])
		}
	case tea.KeyCtrlV:
		m.pasteClipboard()
	case tea.KeySpace:
		m.buffer += " "
	case tea.KeyRunes:
		if msg.Paste {
			m.buffer += cleanClipboardText(string(msg.Runes))
		} else {
			m.buffer += string(msg.Runes)
		}
	}
	return nil
}

// runCommand executes a toolbar command. Commands are only accepted while idle.
func (m *model) runCommand(cmd Command) tea.Cmd {
	if m.mode != ModeIdle {
		return nil
	}
	m.successMessage = ""

	if kind, ok := commandKind(cmd); ok {
		m.beginInput(kind)
		return nil
	}

	switch cmd {
	case CmdReflectX:
		m.toolbar.Highlight(cmd)
		m.logger.Info("reflect", "axis", "x")
		return m.animate(m.record(geom.ReflectX(m.current)))
	case CmdReflectY:
		m.toolbar.Highlight(cmd)
		m.logger.Info("reflect", "axis", "y")
		return m.animate(m.record(geom.ReflectY(m.current)))
	case CmdReset:
		m.reset()
	case CmdBack:
		return m.animate(m.undo())
	}
	return nil
}

func (m *model) beginInput(kind Kind) {
	m.mode = ModeAwaitingInput
	m.kind = kind
	m.buffer = ""
	m.errorMessage = ""
	m.toolbar.Highlight(kindCommand(kind))
	m.logger.Debug("awaiting input", "kind", kind)
}

func (m *model) cancelInput() {
	m.mode = ModeIdle
	m.kind = KindNone
	m.buffer = ""
	m.errorMessage = ""
	m.toolbar.ClearHighlight()
	m.logger.Debug("input cancelled")
}

// commitInput applies the buffered parameters. On bad input nothing changes
// except the error message, and the box stays open for another try.
func (m *model) commitInput() tea.Cmd {
	params, err := parseParams(m.kind, m.buffer)
	if err != nil {
		var ie *InputError
		if errors.As(err, &ie) {
			m.errorMessage = ie.Message()
		} else {
			m.errorMessage = err.Error()
		}
		m.buffer = ""
		m.logger.Warn("rejected input", "err", err)
		return nil
	}

	m.mode = ModeIdle
	m.buffer = ""
	m.errorMessage = ""
	m.logger.Info("transform", "kind", params.Kind, "params", params.Values)
	return m.animate(m.record(params.Apply(m.current)))
}
