// Package tui is a terminal preview of a layer projected by a mercatorgl
// camera, drawn with braille dots.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqsense/mercatorgl"
	"github.com/seqsense/mercatorgl/internal/geo"
)

const (
	panFraction = 0.1
	zoomStep    = 0.5
	minZoom     = 0
	maxZoom     = 22
	pitchStep   = 5
	maxPitch    = 60
	bearingStep = 15
	maxLatitude = 85
)

type Model struct {
	width  int
	height int

	title   string
	layer   *geo.Layer
	camera  mercatorgl.Camera
	initial mercatorgl.Camera

	keys keyMap
	help help.Model
}

// New returns a model showing l through c. The camera viewport is replaced
// by the terminal size.
func New(title string, l *geo.Layer, c mercatorgl.Camera) Model {
	return Model{
		title:   title,
		layer:   l,
		camera:  c,
		initial: c,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
}

func (m Model) Init() tea.Cmd { return nil }
