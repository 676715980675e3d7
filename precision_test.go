package mercatorgl

import (
	"math"
	"math/rand"
	"testing"
)

func TestSplitFloat(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		c := (rnd.Float64() - 0.5) * 360
		high, low := SplitFloat(c)
		if high != float32(c) {
			t.Fatalf("high part of %v expected to be %v, got %v", c, float32(c), high)
		}
		errHigh := math.Abs(float64(high) - c)
		errPair := math.Abs(float64(high) + float64(low) - c)
		// Allow for the rounding of the double precision sum itself.
		if errPair > errHigh*1e-6+1e-12 {
			t.Fatalf("pair error %g expected to be far below float32 error %g for %v", errPair, errHigh, c)
		}
	}
}

func TestSplitFloatRepresentable(t *testing.T) {
	for _, c := range []float64{0, 1, -180, 139.75, 35.6875, 0.5, -1024.125} {
		high, low := SplitFloat(c)
		if low != 0 {
			t.Errorf("low part of float32 representable %v expected to be 0, got %g", c, low)
		}
		if float64(high)+float64(low) != c {
			t.Errorf("pair of %v expected to reconstruct it exactly, got %v", c, float64(high)+float64(low))
		}
	}
}

func TestSplitPrecision(t *testing.T) {
	coords := []float64{
		139.7670001234, 35.6810004321, 10,
		-122.4194155, 37.7749295, 20,
		2.3522219, 48.856614, 30,
	}

	testCases := map[string]struct {
		coords         []float64
		offset, stride int
		expectedLen    int
		pairs          [][2]int
	}{
		"Packed": {
			coords:      coords[:6],
			stride:      2,
			expectedLen: 6,
			pairs:       [][2]int{{0, 1}, {2, 3}, {4, 5}},
		},
		"DefaultStride": {
			coords:      coords[:6],
			expectedLen: 6,
			pairs:       [][2]int{{0, 1}, {2, 3}, {4, 5}},
		},
		"Stride3": {
			coords:      coords,
			stride:      3,
			expectedLen: 6,
			pairs:       [][2]int{{0, 1}, {3, 4}, {6, 7}},
		},
		"Offset": {
			coords:      coords,
			offset:      3,
			stride:      3,
			expectedLen: 4,
			pairs:       [][2]int{{3, 4}, {6, 7}},
		},
		"OffsetPastEnd": {
			coords:      coords,
			offset:      9,
			stride:      3,
			expectedLen: 0,
		},
		"Empty": {
			stride:      2,
			expectedLen: 0,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			out := SplitPrecision(tt.coords, tt.offset, tt.stride)
			if len(out) != tt.expectedLen {
				t.Fatalf("length expected to be %d, got %d", tt.expectedLen, len(out))
			}
			for i, p := range tt.pairs {
				_, lngLow := SplitFloat(tt.coords[p[0]])
				_, latLow := SplitFloat(tt.coords[p[1]])
				if out[2*i] != lngLow || out[2*i+1] != latLow {
					t.Errorf("pair %d expected to be (%g, %g), got (%g, %g)",
						i, lngLow, latLow, out[2*i], out[2*i+1])
				}
			}
		})
	}
}

func TestSplitPrecisionMissingLatitude(t *testing.T) {
	out := SplitPrecision([]float64{1.1, 2.2, 3.3}, 0, 2)
	if len(out) != 4 {
		t.Fatalf("length expected to be 4, got %d", len(out))
	}
	_, low := SplitFloat(3.3)
	if out[2] != low || out[3] != 0 {
		t.Errorf("trailing pair expected to be (%g, 0), got (%g, %g)", low, out[2], out[3])
	}
}

func TestAppendSplitPrecision(t *testing.T) {
	buf := make([]float32, 1, 8)
	buf[0] = 42
	out := AppendSplitPrecision(buf, []float64{1.1, 2.2}, 0, 2)
	if len(out) != 3 || out[0] != 42 {
		t.Fatalf("expected existing content to be kept, got %v", out)
	}
	if &out[0] != &buf[0] {
		t.Error("buffer with enough capacity expected to be reused")
	}
}
