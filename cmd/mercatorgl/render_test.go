package main

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/seqsense/mercatorgl"
	"github.com/seqsense/mercatorgl/internal/geo"
)

func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return x-y <= 2 || y-x <= 2 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestRenderLayer(t *testing.T) {
	c := mercatorgl.Camera{
		Center:         mercatorgl.LngLat{Lng: 139.767, Lat: 35.681},
		Zoom:           15,
		ViewportWidth:  640,
		ViewportHeight: 480,
	}
	l := &geo.Layer{
		Points: []mercatorgl.LngLat{c.Center},
		Lines: [][]mercatorgl.LngLat{{
			{Lng: c.Center.Lng - 0.005, Lat: c.Center.Lat},
			{Lng: c.Center.Lng + 0.005, Lat: c.Center.Lat},
		}},
	}

	img, err := renderLayer(c, l, 6)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 640 || b.Dy() != 480 {
		t.Fatalf("unexpected size %v", b)
	}
	if got := img.RGBAAt(320, 240); !near(got, pointColor) {
		t.Errorf("center expected to be a point, got %v", got)
	}
	if got := img.RGBAAt(200, 240); got == backgroundColor {
		t.Error("line expected to be drawn west of the center")
	}
	if got := img.RGBAAt(320, 100); got != backgroundColor {
		t.Errorf("expected background north of the line, got %v", got)
	}
	if got := img.RGBAAt(639, 0); got != backgroundColor {
		t.Errorf("expected background in the corner, got %v", got)
	}
}

func TestRunRender(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "points.csv")
	out := filepath.Join(dir, "points.png")
	if err := os.WriteFile(in, []byte("lng,lat\n139.76,35.68\n139.77,35.69\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := runConsole(t, nil, "render -o "+out+" -point-size 3 "+in)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(rows[0], " ") != "wrote "+out+" 2" {
		t.Errorf("unexpected output %v", rows)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != fitViewportWidth || cfg.Height != fitViewportHeight {
		t.Errorf("expected fitted viewport size, got %dx%d", cfg.Width, cfg.Height)
	}
}
