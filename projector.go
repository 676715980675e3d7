package mercatorgl

import (
	"math"

	pcmat "github.com/seqsense/pcgol/mat"
)

// GLSL evaluates in float32; these mirror the #define values of
// ProjectionGLSL and are evaluated in float32 at package init.
var (
	pi32        = float32(3.1415926536)
	tileScale32 = float32(TileSize) / (pi32 * 2)
	radians32   = pi32 / 180
)

// LngLatToMercator is the CPU twin of mercator_gl_lngLatToMercator. Below
// OffsetThreshold it returns the absolute mercator position; from it on,
// the position relative to LngLatCenter.
func (u *Uniforms) LngLatToMercator(v Vertex) Vec4 {
	lng, lat, elev := v.LngLat[0], v.LngLat[1], v.LngLat[2]
	if !u.Offset() {
		return Vec4{
			(lng*radians32 + pi32) * tileScale32 * u.Scale,
			(pi32 - log32(tan32(pi32*0.25+lat*radians32*0.5))) * tileScale32 * u.Scale,
			elev,
			1,
		}
	}
	dx := (lng - u.LngLatCenter[0]) + v.Precision[0]
	dy := (lat - u.LngLatCenter[1]) + v.Precision[1]
	a := u.AngleDerivatives
	return Vec4{
		dx * a[0],
		-dy * (a[1] - dy*a[2]),
		elev,
		1,
	}
}

// MercatorToClip is the CPU twin of mercator_gl_mercatorToClip.
func (u *Uniforms) MercatorToClip(p Vec4) Vec4 {
	offset := u.Offset()
	if offset {
		p[3] = 0
	}
	c := transform32(u.ViewProjectionMatrix, p)
	if offset {
		for i := range c {
			c[i] += u.ClipCenter[i]
		}
	}
	return c
}

// LngLatToClip is the CPU twin of mercator_gl_lngLatToClip.
func (u *Uniforms) LngLatToClip(v Vertex) Vec4 {
	return u.MercatorToClip(u.LngLatToMercator(v))
}

// MetersToPixels is the CPU twin of mercator_gl_metersToPixels: the length
// in mercator pixels of meters measured at latitude lat.
func (u *Uniforms) MetersToPixels(meters, lat float32) float32 {
	return meters * (u.MeterDerivatives[0] + (lat-u.LngLatCenter[1])*u.MeterDerivatives[1])
}

func transform32(m pcmat.Mat4, v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[4*0+i]*v[0] + m[4*1+i]*v[1] + m[4*2+i]*v[2] + m[4*3+i]*v[3]
	}
	return out
}

func tan32(x float32) float32 {
	return float32(math.Tan(float64(x)))
}

func log32(x float32) float32 {
	return float32(math.Log(float64(x)))
}
