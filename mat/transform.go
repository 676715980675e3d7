package mat

import (
	"math"
)

func Translate(x, y, z float64) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

func Scale(x, y, z float64) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Rotate returns a rotation of ang radians about the unit axis (x, y, z),
// counter-clockwise when looking against the axis.
func Rotate(x, y, z, ang float64) Mat4 {
	s, c := math.Sincos(ang)
	t := 1 - c

	return Mat4{
		c + x*x*t, y*x*t + z*s, z*x*t - y*s, 0,
		x*y*t - z*s, c + y*y*t, z*y*t + x*s, 0,
		x*z*t + y*s, y*z*t - x*s, c + z*z*t, 0,
		0, 0, 0, 1,
	}
}

func RotateX(ang float64) Mat4 {
	return Rotate(1, 0, 0, ang)
}

func RotateZ(ang float64) Mat4 {
	return Rotate(0, 0, 1, ang)
}
