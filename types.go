package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"affinelab/internal/geom"
)

type model struct {
	width  int
	height int

	original geom.Polygon
	current  geom.Polygon
	history  History

	mode   Mode
	kind   Kind
	buffer string

	errorMessage   string
	successMessage string

	toolbar Toolbar
	anim    *transition
	pending []tea.Msg
	help    bool

	config *Config
	logger *log.Logger
}
