package mercatorgl

import (
	"math"

	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/mercatorgl/mat"
)

// Uniform names declared by ProjectionGLSL. Rendering code binds these to
// GPU uniform slots; renaming breaks the shader/CPU coupling.
const (
	UniformLngLatCenter         = "mercator_gl_lngLatCenter"
	UniformAngleDerivatives     = "mercator_gl_angleDerivatives"
	UniformMeterDerivatives     = "mercator_gl_meterDerivatives"
	UniformScale                = "mercator_gl_scale"
	UniformClipCenter           = "mercator_gl_clipCenter"
	UniformViewProjectionMatrix = "mercator_gl_viewProjectionMatrix"
)

// UniformNames lists every uniform in the order ForEach emits them.
var UniformNames = []string{
	UniformLngLatCenter,
	UniformAngleDerivatives,
	UniformMeterDerivatives,
	UniformScale,
	UniformClipCenter,
	UniformViewProjectionMatrix,
}

// Uniforms is the per-frame state read by the projection shader.
//
// A Uniforms is owned by its caller and rewritten in full by Update. It must
// not be updated from multiple goroutines without external locking.
type Uniforms struct {
	// LngLatCenter is the float32 camera center, the anchor of the offset
	// projection.
	LngLatCenter Vec2
	// AngleDerivatives are the mercator pixels per degree of longitude, per
	// degree of latitude, and the second-order latitude term, at the center.
	AngleDerivatives Vec3
	// MeterDerivatives are the mercator pixels per meter at the center and
	// their change per degree of latitude.
	MeterDerivatives Vec2
	// Scale is 2^zoom.
	Scale float32
	// ClipCenter is the clip space position of LngLatCenter.
	ClipCenter Vec4
	// ViewProjectionMatrix is projection·view narrowed to float32.
	ViewProjectionMatrix pcmat.Mat4
}

// NewUniforms allocates Uniforms for the given camera state.
func NewUniforms(center LngLat, zoom float64, view, projection mat.Mat4) *Uniforms {
	u := &Uniforms{}
	u.Update(center, zoom, view, projection)
	return u
}

// Update recomputes every uniform from the camera center, zoom, view and
// projection matrices. The center elevation is ignored.
func (u *Uniforms) Update(center LngLat, zoom float64, view, projection mat.Mat4) {
	u.UpdateViewProjection(center, zoom, projection.Mul(view))
}

// UpdateViewProjection is Update with an already combined view-projection
// matrix.
func (u *Uniforms) UpdateViewProjection(center LngLat, zoom float64, viewProjection mat.Mat4) {
	lat := center.Lat
	latCos := math.Cos(lat * degreesToRadians)
	latTan := math.Tan(lat * degreesToRadians)

	u.Scale = float32(math.Exp2(zoom))

	lng32, _ := SplitFloat(center.Lng)
	lat32, _ := SplitFloat(center.Lat)
	u.LngLatCenter = Vec2{lng32, lat32}

	ppdX, ppdY := PixelsPerDegree(lat, zoom)
	u.AngleDerivatives = Vec3{
		float32(ppdX),
		float32(ppdY),
		float32(-ppdX * degreesToRadians * latTan / latCos / 2),
	}

	ppm := PixelsPerMeter(lat, zoom)
	u.MeterDerivatives = Vec2{
		float32(ppm),
		float32(ppm * degreesToRadians * latTan),
	}

	// The anchor is the float32 center, so its clip position is computed
	// from the narrowed coordinate in double precision.
	anchor := LngLat{Lng: float64(lng32), Lat: float64(lat32)}
	u.ClipCenter = Vec4(LngLatToClip(anchor, zoom, viewProjection).Float32())

	u.ViewProjectionMatrix = viewProjection.Float32()

	Logger().Debug("mercatorgl: uniforms updated",
		"lng", center.Lng, "lat", center.Lat, "zoom", zoom, "offset", u.Offset())
}

// Offset reports whether vertices are projected relative to the center.
func (u *Uniforms) Offset() bool {
	return u.Scale >= OffsetThreshold
}

// ForEach calls fn with the name and value of every uniform. Values are of
// type Vec2, Vec3, Vec4, float32 or pcgol mat.Mat4 matching the GLSL
// declarations.
func (u *Uniforms) ForEach(fn func(name string, value interface{})) {
	fn(UniformLngLatCenter, u.LngLatCenter)
	fn(UniformAngleDerivatives, u.AngleDerivatives)
	fn(UniformMeterDerivatives, u.MeterDerivatives)
	fn(UniformScale, u.Scale)
	fn(UniformClipCenter, u.ClipCenter)
	fn(UniformViewProjectionMatrix, u.ViewProjectionMatrix)
}
