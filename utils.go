package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard access is swapped out in tests.
var (
	readClipboard  = readClipboardText
	writeClipboard = clipboard.WriteAll
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText keeps printable characters only. The input box is a
// single line, so newlines and tabs are dropped too.
func cleanClipboardText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 32 && r != 127 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func (m *model) pasteClipboard() {
	text, err := readClipboard()
	if err != nil {
		m.logger.Warn("clipboard read failed", "err", err)
		return
	}
	m.buffer += cleanClipboardText(text)
}

func (m *model) copyCoordinates() {
	text := m.current.String()
	if err := writeClipboard(text); err != nil {
		m.errorMessage = "Could not copy to clipboard"
		m.logger.Warn("clipboard write failed", "err", err)
		return
	}
	m.successMessage = "Copied " + text
}
