package gl

import (
	"fmt"

	"github.com/seqsense/mercatorgl"
)

// Positions is a vertex array ready for upload: narrowed coordinates and
// the low parts compensating them.
type Positions struct {
	// Size is the number of components per vertex, 2 (lng, lat) or 3
	// (lng, lat, elevation).
	Size int
	// LngLat holds Size float32 components per vertex.
	LngLat []float32
	// Precision holds the longitude and latitude low parts per vertex.
	Precision []float32
}

// Len returns the number of vertices.
func (p *Positions) Len() int {
	if p.Size == 0 {
		return 0
	}
	return len(p.LngLat) / p.Size
}

// PackPositions narrows interleaved double precision coordinates with size
// components per vertex.
func PackPositions(coords []float64, size int) (*Positions, error) {
	if size != 2 && size != 3 {
		return nil, fmt.Errorf("vertex size must be 2 or 3, got %d", size)
	}
	if len(coords)%size != 0 {
		return nil, fmt.Errorf("%d coordinates do not form vertices of size %d", len(coords), size)
	}
	lngLat := make([]float32, len(coords))
	for i, c := range coords {
		lngLat[i] = float32(c)
	}
	return &Positions{
		Size:      size,
		LngLat:    lngLat,
		Precision: mercatorgl.SplitPrecision(coords, 0, size),
	}, nil
}
