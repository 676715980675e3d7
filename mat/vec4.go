package mat

// Vec4 is a homogeneous double precision vector.
type Vec4 [4]float64

func (v Vec4) Add(a Vec4) Vec4 {
	return Vec4{v[0] + a[0], v[1] + a[1], v[2] + a[2], v[3] + a[3]}
}

func (v Vec4) Sub(a Vec4) Vec4 {
	return Vec4{v[0] - a[0], v[1] - a[1], v[2] - a[2], v[3] - a[3]}
}

func (v Vec4) Mul(a float64) Vec4 {
	return Vec4{v[0] * a, v[1] * a, v[2] * a, v[3] * a}
}

func (v Vec4) Float32() [4]float32 {
	return [4]float32{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}
