package mat

import (
	"math"
	"testing"
)

func TestMul(t *testing.T) {
	m0 := Translate(0.1, 0.2, 0.3)
	m1 := Scale(1.1, 1.2, 1.3)
	m2 := Rotate(1, 0, 0, 0.1)

	m := m0.Mul(m1).Mul(m2)
	v := Vec4{1, 2, 3, 1}

	stepwise := m0.Transform(m1.Transform(m2.Transform(v)))
	composed := m.Transform(v)
	for i := range v {
		if diff := composed[i] - stepwise[i]; math.Abs(diff) > 1e-12 {
			t.Errorf("v(%d) expected to be %0.6f, got %0.6f", i, stepwise[i], composed[i])
		}
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3).Mul(Rotate(0, 0, 1, 0.5))
	if r := Identity().Mul(m); r != m {
		t.Errorf("I·m expected to be %v, got %v", m, r)
	}
	if r := m.Mul(Identity()); r != m {
		t.Errorf("m·I expected to be %v, got %v", m, r)
	}
}

func TestRotate(t *testing.T) {
	testCases := map[string]struct {
		m        Mat4
		in       Vec4
		expected Vec4
	}{
		"XQuarter": {
			m:        RotateX(math.Pi / 2),
			in:       Vec4{0, 1, 0, 1},
			expected: Vec4{0, 0, 1, 1},
		},
		"ZQuarter": {
			m:        RotateZ(math.Pi / 2),
			in:       Vec4{1, 0, 0, 1},
			expected: Vec4{0, 1, 0, 1},
		},
		"ZHalf": {
			m:        RotateZ(math.Pi),
			in:       Vec4{1, 2, 3, 1},
			expected: Vec4{-1, -2, 3, 1},
		},
		"Diagonal": {
			m:        Rotate(1/math.Sqrt(3), 1/math.Sqrt(3), 1/math.Sqrt(3), 2*math.Pi/3),
			in:       Vec4{1, 0, 0, 1},
			expected: Vec4{0, 1, 0, 1},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			v := tt.m.Transform(tt.in)
			for i := range v {
				if math.Abs(v[i]-tt.expected[i]) > 1e-9 {
					t.Fatalf("expected %v, got %v", tt.expected, v)
				}
			}
		})
	}
}

func TestRotateOrder(t *testing.T) {
	a := RotateX(0.3).Mul(RotateZ(0.7))
	b := RotateZ(0.7).Mul(RotateX(0.3))
	if a == b {
		t.Error("rotations about different axes must not commute")
	}
}

func TestPerspective(t *testing.T) {
	const near, far = 2.0, 10.0
	p := Perspective(math.Pi/2, 2, near, far)

	for _, z := range []float64{near, far} {
		c := p.Transform(Vec4{0, 0, -z, 1})
		if c[3] != z {
			t.Errorf("w at depth %0.1f expected to be %0.1f, got %0.3f", z, z, c[3])
		}
		ndc := c[2] / c[3]
		expected := -1.0
		if z == far {
			expected = 1
		}
		if math.Abs(ndc-expected) > 1e-12 {
			t.Errorf("ndc z at depth %0.1f expected to be %0.1f, got %0.6f", z, expected, ndc)
		}
	}

	// 90 degrees vertical: a point at 45 degrees up lands on the top edge.
	c := p.Transform(Vec4{0, 5, -5, 1})
	if y := c[1] / c[3]; math.Abs(y-1) > 1e-12 {
		t.Errorf("ndc y expected to be 1, got %0.6f", y)
	}
	c = p.Transform(Vec4{10, 0, -5, 1})
	if x := c[0] / c[3]; math.Abs(x-1) > 1e-12 {
		t.Errorf("ndc x expected to be 1 with aspect 2, got %0.6f", x)
	}
}

func TestFloat32(t *testing.T) {
	m := Translate(1e7+0.3, -2, 0.1)
	m32 := m.Float32()
	for i := range m {
		if m32[i] != float32(m[i]) {
			t.Errorf("m(%d) expected to be %v, got %v", i, float32(m[i]), m32[i])
		}
	}
}
