// Package mercatorgl projects longitude/latitude coordinates to WebGL clip
// space, on the CPU and in GLSL, with enough precision for street-level
// zoom on 32-bit GPU floats.
//
// Below OffsetThreshold the web mercator formula is evaluated directly.
// From OffsetThreshold on, vertices are projected relative to the camera
// center with a second-order expansion of the mercator formula, and the
// center's own clip position is added back after the view-projection
// transform. Per-frame state lives in Uniforms; the GLSL block returned by
// InjectGLSL reads the same values under the names listed in uniform.go.
//
// A typical frame:
//
//	cam := mercatorgl.Camera{
//		Center:         mercatorgl.LngLat{Lng: 139.767, Lat: 35.681},
//		Zoom:           15,
//		Pitch:          45,
//		ViewportWidth:  1280,
//		ViewportHeight: 720,
//	}
//	var u mercatorgl.Uniforms
//	cam.Uniforms(&u)
//	u.ForEach(func(name string, value interface{}) {
//		// upload value to the uniform called name
//	})
package mercatorgl

import (
	"math"
)

const (
	// TileSize is the edge length of a zoom 0 world in mercator pixels.
	TileSize = 512
	// TileScale maps radians to mercator pixels at zoom 0.
	TileScale = TileSize / (2 * math.Pi)
	// OffsetThreshold is the scale (2^zoom) from which vertices are
	// projected relative to the camera center. Tuned, not derived.
	OffsetThreshold = 4096
	// EarthCircumference in meters.
	EarthCircumference = 40.03e6

	degreesToRadians = math.Pi / 180
	piQuarter        = math.Pi / 4
)
