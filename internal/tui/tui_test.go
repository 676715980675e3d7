package tui

import (
	"math"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqsense/mercatorgl"
	"github.com/seqsense/mercatorgl/internal/geo"
)

func TestBrailleBuf(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setDot(0, 0)
	b.setDot(1, 3)
	b.setDot(2, 1)
	b.setDot(-1, 0)
	b.setDot(4, 0)
	b.setDot(0, 4)

	lines := b.lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	expected := string([]rune{0x2800 + 0x01 + 0x80, 0x2800 + 0x02})
	if lines[0] != expected {
		t.Errorf("expected %q, got %q", expected, lines[0])
	}
}

func TestBrailleBufLine(t *testing.T) {
	b := newBrailleBuf(4, 1)
	b.drawLine(0, 0, 7, 0)
	if expected := strings.Repeat(string(rune(0x2809)), 4); b.lines()[0] != expected {
		t.Errorf("expected %q, got %q", expected, b.lines()[0])
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	l := &geo.Layer{
		Points: []mercatorgl.LngLat{{Lng: 139.767, Lat: 35.681}},
	}
	m := New("test", l, mercatorgl.Camera{
		Center: mercatorgl.LngLat{Lng: 139.767, Lat: 35.681},
		Zoom:   14,
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(Model)
}

func send(m Model, keys ...string) Model {
	for _, k := range keys {
		updated, _ := m.Update(keyMsg(k))
		m = updated.(Model)
	}
	return m
}

func TestModelKeys(t *testing.T) {
	testCases := map[string]struct {
		keys  []string
		check func(t *testing.T, before, after mercatorgl.Camera)
	}{
		"ZoomIn": {
			keys: []string{"+"},
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Zoom != before.Zoom+zoomStep {
					t.Errorf("expected zoom %f, got %f", before.Zoom+zoomStep, after.Zoom)
				}
			},
		},
		"ZoomClamp": {
			keys: strings.Split(strings.Repeat("+", 40), ""),
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Zoom != maxZoom {
					t.Errorf("expected zoom %d, got %f", maxZoom, after.Zoom)
				}
			},
		},
		"PitchClamp": {
			keys: strings.Split(strings.Repeat("w", 20), ""),
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Pitch != maxPitch {
					t.Errorf("expected pitch %d, got %f", maxPitch, after.Pitch)
				}
			},
		},
		"RotateWrap": {
			keys: strings.Split(strings.Repeat("d", 13), ""),
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Bearing != -165 {
					t.Errorf("expected bearing -165, got %f", after.Bearing)
				}
			},
		},
		"PanRight": {
			keys: []string{"right"},
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Center.Lng <= before.Center.Lng || math.Abs(after.Center.Lat-before.Center.Lat) > 1e-9 {
					t.Errorf("expected the center to move east, got %v", after.Center)
				}
			},
		},
		"PanUp": {
			keys: []string{"up"},
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after.Center.Lat <= before.Center.Lat {
					t.Errorf("expected the center to move north, got %v", after.Center)
				}
			},
		},
		"PanUpRotated": {
			keys: []string{"d", "d", "d", "d", "d", "d", "up"},
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				// Bearing 90 looks east.
				if after.Center.Lng <= before.Center.Lng {
					t.Errorf("expected the center to move east, got %v", after.Center)
				}
			},
		},
		"Reset": {
			keys: []string{"+", "w", "d", "right", "r"},
			check: func(t *testing.T, before, after mercatorgl.Camera) {
				if after != before {
					t.Errorf("expected %v, got %v", before, after)
				}
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			m := newTestModel(t)
			tt.check(t, m.camera, send(m, tt.keys...).camera)
		})
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	if m.View() == "" {
		t.Fatal("expected a view")
	}

	cols, rows := m.mapCells()
	c, u := m.frame()
	canvas := m.render(cols, rows, c, u)
	if len(canvas) != rows {
		t.Fatalf("expected %d rows, got %d", rows, len(canvas))
	}

	// The layer point is at the camera center.
	var found bool
	for y, line := range canvas {
		for x, r := range []rune(line) {
			if r == ' ' {
				continue
			}
			if abs(x-cols/2) > 1 || abs(y-rows/2) > 1 {
				t.Errorf("unexpected dot at cell (%d, %d)", x, y)
			}
			found = true
		}
	}
	if !found {
		t.Error("expected the point to be drawn")
	}

}

func TestModelStatusLine(t *testing.T) {
	m := newTestModel(t)
	m.camera.Zoom = 11

	// OffsetThreshold is reached at zoom 12.
	testCases := []struct {
		keys []string
		zoom float64
		mode string
	}{
		{zoom: 11, mode: "direct"},
		{keys: []string{"+"}, zoom: 11.5, mode: "direct"},
		{keys: []string{"+"}, zoom: 12, mode: "offset"},
		{keys: []string{"+", "+"}, zoom: 13, mode: "offset"},
		{keys: []string{"-", "-", "-"}, zoom: 11.5, mode: "direct"},
	}
	for _, tt := range testCases {
		m = send(m, tt.keys...)
		if m.camera.Zoom != tt.zoom {
			t.Fatalf("expected zoom %f, got %f", tt.zoom, m.camera.Zoom)
		}
		_, u := m.frame()
		if status := m.statusLine(u); !strings.Contains(status, tt.mode) {
			t.Errorf("expected the %s projection at zoom %.1f, got %q", tt.mode, tt.zoom, status)
		}
	}
}
