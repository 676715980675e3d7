package mercatorgl

import (
	"math"

	"github.com/seqsense/mercatorgl/mat"
)

// altitudeRatio is the camera altitude in viewport heights. It fixes the
// half field of view to atan(0.5/altitudeRatio) = atan(1/3).
const altitudeRatio = 1.5

// Camera is a slippy map camera pose. Angles are in degrees.
//
// Zero values are defaults: no pitch, north up, and a near plane at one
// viewport height (see WithDefaults). Pitch must stay below 90 degrees
// minus the half field of view; the matrices are not finite beyond it.
type Camera struct {
	Center         LngLat  `yaml:"center"`
	Zoom           float64 `yaml:"zoom"`
	Pitch          float64 `yaml:"pitch"`
	Bearing        float64 `yaml:"bearing"`
	ViewportWidth  float64 `yaml:"viewport_width"`
	ViewportHeight float64 `yaml:"viewport_height"`
	Near           float64 `yaml:"near"`
}

// WithDefaults returns c with unset fields filled.
func (c Camera) WithDefaults() Camera {
	if c.Near <= 0 {
		c.Near = c.ViewportHeight
	}
	return c
}

// ViewMatrix returns the view matrix of c. See BuildViewMatrix.
func (c Camera) ViewMatrix() mat.Mat4 {
	return BuildViewMatrix(c.Center, c.Zoom, c.Pitch, c.Bearing, c.ViewportHeight)
}

// ProjectionMatrix returns the projection matrix of c. See
// BuildProjectionMatrix.
func (c Camera) ProjectionMatrix() mat.Mat4 {
	c = c.WithDefaults()
	return BuildProjectionMatrix(c.Pitch, c.ViewportWidth, c.ViewportHeight, c.Near)
}

// Uniforms rewrites dst for the camera.
func (c Camera) Uniforms(dst *Uniforms) {
	dst.Update(c.Center, c.Zoom, c.ViewMatrix(), c.ProjectionMatrix())
}

// BuildViewMatrix returns the view matrix of a camera looking at center
// from 1.5 viewport heights away, tilted by pitch and rotated by bearing.
// It transforms absolute mercator positions at the given zoom, so that the
// center lands at the origin and north points up the screen.
//
// Operations apply to vectors in reverse order: the center is moved to the
// origin, y is flipped from mercator south to screen up, the map is rotated
// by bearing about the vertical axis, tilted by pitch about the horizontal
// axis, and pushed away from the camera.
func BuildViewMatrix(center LngLat, zoom, pitch, bearing, viewportHeight float64) mat.Mat4 {
	world := LngLatToMercator(LngLat{Lng: center.Lng, Lat: center.Lat}, zoom)
	return mat.Translate(0, 0, -altitudeRatio*viewportHeight).
		Mul(mat.RotateX(-pitch * degreesToRadians)).
		Mul(mat.RotateZ(bearing * degreesToRadians)).
		Mul(mat.Scale(1, -1, 1)).
		Mul(mat.Translate(-world[0], -world[1], 0))
}

// BuildProjectionMatrix returns the perspective projection of the camera.
// The far plane is placed just behind the farthest ground point visible at
// the given pitch. near <= 0 means one viewport height.
func BuildProjectionMatrix(pitch, viewportWidth, viewportHeight, near float64) mat.Mat4 {
	if near <= 0 {
		near = viewportHeight
	}
	altitude := altitudeRatio * viewportHeight
	pitchRadians := pitch * degreesToRadians
	halfFov := math.Atan(0.5 / altitudeRatio)

	if pitchRadians+halfFov >= math.Pi/2 {
		Logger().Warn("mercatorgl: pitch reaches the horizon, far plane is not finite",
			"pitch", pitch)
	}

	// Law of sines on the triangle camera / ground center / farthest
	// visible ground point.
	topHalfSurfaceDistance := math.Sin(halfFov) * altitude / math.Sin(math.Pi/2-pitchRadians-halfFov)
	far := (math.Cos(math.Pi/2-pitchRadians)*topHalfSurfaceDistance + altitude) * 1.01

	return mat.Perspective(2*halfFov, viewportWidth/viewportHeight, near, far)
}

// Pan returns c with the center moved by dx, dy viewport pixels, x to the
// right and y down the screen. Pitch is not taken into account.
func (c Camera) Pan(dx, dy float64) Camera {
	s, co := math.Sincos(c.Bearing * degreesToRadians)
	world := LngLatToMercator(c.Center, c.Zoom)
	world[0] += co*dx - s*dy
	world[1] += s*dx + co*dy
	c.Center = MercatorToLngLat(world, c.Zoom)
	return c
}

// ClipToScreen converts a clip space position to viewport pixels from the
// top left corner. ok is false behind the camera.
func (c Camera) ClipToScreen(clip mat.Vec4) (x, y float64, ok bool) {
	if clip[3] <= 0 {
		return 0, 0, false
	}
	x = (clip[0]/clip[3] + 1) / 2 * c.ViewportWidth
	y = (1 - clip[1]/clip[3]) / 2 * c.ViewportHeight
	return x, y, true
}
