package tui

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.pan(0, panFraction)
		case key.Matches(msg, m.keys.Down):
			m.pan(0, -panFraction)
		case key.Matches(msg, m.keys.Left):
			m.pan(-panFraction, 0)
		case key.Matches(msg, m.keys.Right):
			m.pan(panFraction, 0)
		case key.Matches(msg, m.keys.ZoomIn):
			m.camera.Zoom = math.Min(maxZoom, m.camera.Zoom+zoomStep)
		case key.Matches(msg, m.keys.ZoomOut):
			m.camera.Zoom = math.Max(minZoom, m.camera.Zoom-zoomStep)
		case key.Matches(msg, m.keys.PitchUp):
			m.camera.Pitch = math.Min(maxPitch, m.camera.Pitch+pitchStep)
		case key.Matches(msg, m.keys.PitchDown):
			m.camera.Pitch = math.Max(0, m.camera.Pitch-pitchStep)
		case key.Matches(msg, m.keys.RotateLeft):
			m.camera.Bearing = wrapBearing(m.camera.Bearing - bearingStep)
		case key.Matches(msg, m.keys.RotateRight):
			m.camera.Bearing = wrapBearing(m.camera.Bearing + bearingStep)
		case key.Matches(msg, m.keys.Reset):
			m.camera = m.initial
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// pan moves the center by fractions of the map size along the screen axes,
// x to the right and y up.
func (m *Model) pan(fx, fy float64) {
	w, h := m.mapDots()
	m.camera = m.camera.Pan(fx*float64(w), -fy*float64(h))
	m.camera.Center.Lat = math.Max(-maxLatitude, math.Min(maxLatitude, m.camera.Center.Lat))
}

func wrapBearing(b float64) float64 {
	b = math.Mod(b, 360)
	if b > 180 {
		b -= 360
	} else if b <= -180 {
		b += 360
	}
	return b
}
