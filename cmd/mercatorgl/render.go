package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/seqsense/mercatorgl"
	"github.com/seqsense/mercatorgl/internal/geo"
)

const (
	fitViewportWidth  = 1024
	fitViewportHeight = 768
	fitMaxZoom        = 18
	lineWidth         = 1.5
	captionSize       = 12
)

var (
	backgroundColor = color.RGBA{0x10, 0x14, 0x1c, 0xff}
	lineColor       = color.RGBA{0x4c, 0xa0, 0xe0, 0xff}
	pointColor      = color.RGBA{0xf0, 0x90, 0x30, 0xff}
	captionColor    = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
)

func runRender(cmd *commandContext, args []string) ([][]string, error) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "out.png", "output PNG file")
	pointSize := fs.Float64("point-size", 4, "point diameter in pixels")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, errArgumentNumber
	}

	l, err := geo.Load(fs.Arg(0))
	if err != nil {
		return nil, err
	}
	var c mercatorgl.Camera
	if cmd.camera != nil {
		c = *cmd.camera
	} else {
		c = fitCamera(l.Bounds)
		mercatorgl.Logger().Info("mercatorgl: camera fitted to layer",
			"lng", c.Center.Lng, "lat", c.Center.Lat, "zoom", c.Zoom)
	}

	img, err := renderLayer(c, l, *pointSize)
	if err != nil {
		return nil, err
	}
	f, err := os.Create(*out)
	if err != nil {
		return nil, err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return [][]string{{"wrote", *out, strconv.Itoa(l.Len())}}, nil
}

func fitCamera(b geo.Bounds) mercatorgl.Camera {
	return mercatorgl.Camera{
		Center:         b.Center(),
		Zoom:           b.FitZoom(fitViewportWidth*0.9, fitViewportHeight*0.9, fitMaxZoom),
		ViewportWidth:  fitViewportWidth,
		ViewportHeight: fitViewportHeight,
	}.WithDefaults()
}

type screenProjector struct {
	camera   mercatorgl.Camera
	uniforms mercatorgl.Uniforms
	limit    float64
}

func newScreenProjector(c mercatorgl.Camera) *screenProjector {
	p := &screenProjector{
		camera: c,
		limit:  4 * math.Max(c.ViewportWidth, c.ViewportHeight),
	}
	c.Uniforms(&p.uniforms)
	return p
}

// project runs the float32 path with precision compensation, as a vertex
// shader would.
func (p *screenProjector) project(ll mercatorgl.LngLat) (x, y float32, ok bool) {
	clip := p.uniforms.LngLatToClip(ll.Vertex())
	sx, sy, ok := p.camera.ClipToScreen(clip.Float64())
	if !ok || math.Abs(sx) > p.limit || math.Abs(sy) > p.limit {
		return 0, 0, false
	}
	return float32(sx), float32(sy), true
}

func renderLayer(c mercatorgl.Camera, l *geo.Layer, pointSize float64) (*image.RGBA, error) {
	w, h := int(c.ViewportWidth), int(c.ViewportHeight)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	p := newScreenProjector(c)
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Over

	for _, line := range l.Lines {
		for i := 1; i < len(line); i++ {
			x0, y0, ok0 := p.project(line[i-1])
			x1, y1, ok1 := p.project(line[i])
			if !ok0 || !ok1 {
				continue
			}
			segment(z, x0, y0, x1, y1, lineWidth/2)
		}
	}
	z.Draw(img, img.Bounds(), image.NewUniform(lineColor), image.Point{})

	z.Reset(w, h)
	z.DrawOp = draw.Over
	for _, pt := range l.Points {
		x, y, ok := p.project(pt)
		if !ok {
			continue
		}
		octagon(z, x, y, float32(pointSize/2))
	}
	z.Draw(img, img.Bounds(), image.NewUniform(pointColor), image.Point{})

	if err := caption(img, fmt.Sprintf("%.6f, %.6f  zoom %.2f  pitch %.0f  bearing %.0f",
		c.Center.Lng, c.Center.Lat, c.Zoom, c.Pitch, c.Bearing)); err != nil {
		return nil, err
	}
	return img, nil
}

func segment(z *vector.Rasterizer, x0, y0, x1, y1, halfWidth float32) {
	dx, dy := x1-x0, y1-y0
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*halfWidth, dx/l*halfWidth
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

func octagon(z *vector.Rasterizer, x, y, r float32) {
	for i := 0; i < 8; i++ {
		s, c := math.Sincos(float64(i) * math.Pi / 4)
		px, py := x+r*float32(c), y+r*float32(s)
		if i == 0 {
			z.MoveTo(px, py)
		} else {
			z.LineTo(px, py)
		}
	}
	z.ClosePath()
}

func caption(img *image.RGBA, text string) error {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    captionSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return err
	}
	defer face.Close()

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: face,
		Dot:  fixed.P(8, img.Bounds().Dy()-8),
	}
	d.DrawString(text)
	return nil
}
