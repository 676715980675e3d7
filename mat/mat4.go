// Package mat provides double precision 4x4 matrices and 4-vectors in the
// column-major layout WebGL expects.
//
// Camera and uniform computations are done in float64 and narrowed once to
// the float32 pcgol matrix uploaded to the GPU.
package mat

import (
	pcmat "github.com/seqsense/pcgol/mat"
)

// Mat4 is a column-major 4x4 matrix. Element (row i, column j) is m[4*j+i].
type Mat4 [16]float64

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m·a. Applied to a vector, a acts first.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*k+i] * a[4*j+k]
			}
			out[4*j+i] = sum
		}
	}
	return out
}

// Transform returns m·v.
func (m Mat4) Transform(v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[4*0+i]*v[0] + m[4*1+i]*v[1] + m[4*2+i]*v[2] + m[4*3+i]*v[3]
	}
	return out
}

// Float32 narrows the matrix to the precision the GPU receives.
func (m Mat4) Float32() pcmat.Mat4 {
	var out pcmat.Mat4
	for i := range m {
		out[i] = float32(m[i])
	}
	return out
}
