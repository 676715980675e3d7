package mercatorgl

import (
	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/mercatorgl/mat"
)

// LngLat is a geographic position in degrees with elevation in meters.
// Values outside [-180, 180] and [-90, 90] are projected as they are.
type LngLat struct {
	Lng       float64 `yaml:"lng"`
	Lat       float64 `yaml:"lat"`
	Elevation float64 `yaml:"elevation"`
}

// Vertex returns the float32 form of p as uploaded to the GPU: the narrowed
// coordinate and the low parts of longitude and latitude.
func (p LngLat) Vertex() Vertex {
	lng, lngLow := SplitFloat(p.Lng)
	lat, latLow := SplitFloat(p.Lat)
	return Vertex{
		LngLat:    pcmat.Vec3{lng, lat, float32(p.Elevation)},
		Precision: Vec2{lngLow, latLow},
	}
}

// Vec2 mirrors GLSL vec2.
type Vec2 [2]float32

// Vec3 mirrors GLSL vec3.
type Vec3 [3]float32

// Vec4 mirrors GLSL vec4.
type Vec4 [4]float32

// Float64 widens v.
func (v Vec4) Float64() mat.Vec4 {
	return mat.Vec4{float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3])}
}

// Vertex is a per-vertex projector input: longitude, latitude and elevation
// as float32, plus the low parts compensating the narrowed longitude and
// latitude.
type Vertex struct {
	LngLat    pcmat.Vec3
	Precision Vec2
}

// At returns a vertex on the ground without precision compensation.
func At(lng, lat float32) Vertex {
	return Vertex{LngLat: pcmat.Vec3{lng, lat, 0}}
}

// AtElevation returns a vertex at elev meters without precision
// compensation.
func AtElevation(lng, lat, elev float32) Vertex {
	return Vertex{LngLat: pcmat.Vec3{lng, lat, elev}}
}

// WithPrecision returns v with the given low parts.
func (v Vertex) WithPrecision(low Vec2) Vertex {
	v.Precision = low
	return v
}
