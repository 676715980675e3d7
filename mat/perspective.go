package mat

import (
	"math"
)

// Perspective returns an OpenGL perspective projection with vertical field
// of view fovy in radians. Depth maps to [-1, 1] between near and far.
func Perspective(fovy, aspect, near, far float64) Mat4 {
	f := 1 / math.Tan(fovy/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
}
