package gl

import (
	webgl "github.com/seqsense/webgl-go"
)

// PositionBuffers holds the GPU copies of a Positions array.
type PositionBuffers struct {
	gl        *webgl.WebGL
	lngLat    webgl.Buffer
	precision webgl.Buffer
	size      int
	n         int
}

// NewPositionBuffers allocates the buffers.
func NewPositionBuffers(gl *webgl.WebGL) *PositionBuffers {
	return &PositionBuffers{
		gl:        gl,
		lngLat:    gl.CreateBuffer(),
		precision: gl.CreateBuffer(),
	}
}

// Upload replaces the buffer contents with p.
func (b *PositionBuffers) Upload(p *Positions) {
	b.size = p.Size
	b.n = p.Len()
	if b.n == 0 {
		return
	}
	b.gl.BindBuffer(b.gl.ARRAY_BUFFER, b.lngLat)
	b.gl.BufferData(b.gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(p.LngLat), b.gl.STATIC_DRAW)
	b.gl.BindBuffer(b.gl.ARRAY_BUFFER, b.precision)
	b.gl.BufferData(b.gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(p.Precision), b.gl.STATIC_DRAW)
}

// Len returns the number of uploaded vertices.
func (b *PositionBuffers) Len() int {
	return b.n
}

// Bind points the named vertex attributes of the program at the buffers.
// Attributes missing from the program are skipped.
func (b *PositionBuffers) Bind(p *Program, lngLatAttr, precisionAttr string) {
	if loc := b.gl.GetAttribLocation(p.program, lngLatAttr); loc >= 0 {
		b.gl.BindBuffer(b.gl.ARRAY_BUFFER, b.lngLat)
		b.gl.VertexAttribPointer(loc, b.size, b.gl.FLOAT, false, 0, 0)
		b.gl.EnableVertexAttribArray(loc)
	}
	if loc := b.gl.GetAttribLocation(p.program, precisionAttr); loc >= 0 {
		b.gl.BindBuffer(b.gl.ARRAY_BUFFER, b.precision)
		b.gl.VertexAttribPointer(loc, 2, b.gl.FLOAT, false, 0, 0)
		b.gl.EnableVertexAttribArray(loc)
	}
}
