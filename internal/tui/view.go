package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seqsense/mercatorgl"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	c, u := m.frame()
	header := titleStyle.Render(" mercatorview ") + dimStyle.Render(" "+m.title)
	status := dimStyle.Render(" " + m.statusLine(u))
	helpView := m.help.View(m.keys)

	cols, rows := m.mapCells()
	canvas := mapStyle.Width(cols).Height(rows).Render(strings.Join(m.render(cols, rows, c, u), "\n"))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, canvas, status, helpView)
	return appStyle.Render(ui)
}

// mapCells returns the size of the map area in terminal cells.
func (m Model) mapCells() (cols, rows int) {
	chrome := 2 + lipgloss.Height(m.help.View(m.keys))
	return max(1, m.width), max(1, m.height-chrome)
}

// mapDots returns the size of the map area in braille dots.
func (m Model) mapDots() (w, h int) {
	cols, rows := m.mapCells()
	return cols * 2, rows * 4
}

// viewCamera returns the camera with the map area as its viewport.
func (m Model) viewCamera() mercatorgl.Camera {
	c := m.camera
	w, h := m.mapDots()
	c.ViewportWidth = float64(w)
	c.ViewportHeight = float64(h)
	c.Near = 0
	return c.WithDefaults()
}

// frame returns the view camera and its uniforms.
func (m Model) frame() (mercatorgl.Camera, *mercatorgl.Uniforms) {
	c := m.viewCamera()
	u := &mercatorgl.Uniforms{}
	c.Uniforms(u)
	return c, u
}

func (m Model) render(cols, rows int, c mercatorgl.Camera, u *mercatorgl.Uniforms) []string {
	buf := newBrailleBuf(cols, rows)
	if m.layer == nil {
		return buf.lines()
	}

	limit := 4 * math.Max(c.ViewportWidth, c.ViewportHeight)

	project := func(p mercatorgl.LngLat) (x, y int, ok bool) {
		sx, sy, ok := c.ClipToScreen(u.LngLatToClip(p.Vertex()).Float64())
		if !ok || math.Abs(sx) > limit || math.Abs(sy) > limit {
			return 0, 0, false
		}
		return int(math.Floor(sx)), int(math.Floor(sy)), true
	}

	for _, line := range m.layer.Lines {
		for i := 1; i < len(line); i++ {
			x0, y0, ok0 := project(line[i-1])
			x1, y1, ok1 := project(line[i])
			if ok0 && ok1 {
				buf.drawLine(x0, y0, x1, y1)
			}
		}
	}
	for _, p := range m.layer.Points {
		if x, y, ok := project(p); ok {
			buf.setDot(x, y)
		}
	}
	return buf.lines()
}

func (m Model) statusLine(u *mercatorgl.Uniforms) string {
	mode := "direct"
	if u.Offset() {
		mode = "offset"
	}
	return fmt.Sprintf("%.6f, %.6f  zoom %.2f  pitch %.0f  bearing %.0f  %s",
		m.camera.Center.Lng, m.camera.Center.Lat,
		m.camera.Zoom, m.camera.Pitch, m.camera.Bearing, mode)
}
