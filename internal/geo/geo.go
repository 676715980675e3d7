// Package geo loads point and line layers from GeoJSON and CSV files.
package geo

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path"
	"strings"

	"github.com/seqsense/mercatorgl"
)

var ErrEmpty = errors.New("no geometries found")

// Bounds is a longitude/latitude bounding box. Elevation is not tracked.
type Bounds struct {
	Min, Max mercatorgl.LngLat
}

// Center returns the center of b. The latitude center is taken in mercator
// space so that the box is centered on screen.
func (b Bounds) Center() mercatorgl.LngLat {
	p0 := mercatorgl.LngLatToMercator(b.Min, 0)
	p1 := mercatorgl.LngLatToMercator(b.Max, 0)
	return mercatorgl.MercatorToLngLat(p0.Add(p1).Mul(0.5), 0)
}

// FitZoom returns the largest zoom showing b in a width x height viewport
// seen from above, capped at maxZoom.
func (b Bounds) FitZoom(width, height, maxZoom float64) float64 {
	p0 := mercatorgl.LngLatToMercator(b.Min, 0)
	p1 := mercatorgl.LngLatToMercator(b.Max, 0)
	d := p1.Sub(p0)
	dx, dy := math.Abs(d[0]), math.Abs(d[1])
	zoom := maxZoom
	if dx > 0 {
		zoom = math.Min(zoom, math.Log2(width/dx))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(height/dy))
	}
	return zoom
}

func (b *Bounds) extend(p mercatorgl.LngLat) {
	b.Min.Lng = math.Min(b.Min.Lng, p.Lng)
	b.Min.Lat = math.Min(b.Min.Lat, p.Lat)
	b.Max.Lng = math.Max(b.Max.Lng, p.Lng)
	b.Max.Lat = math.Max(b.Max.Lat, p.Lat)
}

// Layer is a set of points and polylines. Polygon rings are stored as
// closed lines.
type Layer struct {
	Points []mercatorgl.LngLat
	Lines  [][]mercatorgl.LngLat
	Bounds Bounds

	bounded bool
}

// Len returns the number of vertices in l.
func (l *Layer) Len() int {
	n := len(l.Points)
	for _, line := range l.Lines {
		n += len(line)
	}
	return n
}

func (l *Layer) addPoint(p mercatorgl.LngLat) {
	l.extend(p)
	l.Points = append(l.Points, p)
}

func (l *Layer) addLine(line []mercatorgl.LngLat) {
	if len(line) == 0 {
		return
	}
	for _, p := range line {
		l.extend(p)
	}
	l.Lines = append(l.Lines, line)
}

func (l *Layer) extend(p mercatorgl.LngLat) {
	p = mercatorgl.LngLat{Lng: p.Lng, Lat: p.Lat}
	if !l.bounded {
		l.Bounds = Bounds{Min: p, Max: p}
		l.bounded = true
		return
	}
	l.Bounds.extend(p)
}

// Coords returns every vertex of l, points first, as interleaved
// longitude, latitude and, for size 3, elevation.
func (l *Layer) Coords(size int) []float64 {
	coords := make([]float64, 0, l.Len()*size)
	add := func(p mercatorgl.LngLat) {
		coords = append(coords, p.Lng, p.Lat)
		if size == 3 {
			coords = append(coords, p.Elevation)
		}
	}
	for _, p := range l.Points {
		add(p)
	}
	for _, line := range l.Lines {
		for _, p := range line {
			add(p)
		}
	}
	return coords
}

// Load reads a layer from a .geojson, .json or .csv file.
func Load(path string) (*Layer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := Decode(path, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	mercatorgl.Logger().Info("mercatorgl: layer loaded", "path", path,
		"points", len(l.Points), "lines", len(l.Lines))
	return l, nil
}

// Decode reads a layer in the format given by the extension of name.
func Decode(name string, r io.Reader) (*Layer, error) {
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".geojson", ".json":
		return DecodeGeoJSON(r)
	case ".csv":
		return DecodeCSV(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q", ext)
	}
}
