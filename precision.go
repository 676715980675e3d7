package mercatorgl

// SplitFloat returns c narrowed to float32 and the float32 remainder of the
// narrowing. high+low approximates c far better than high alone.
func SplitFloat(c float64) (high, low float32) {
	high = float32(c)
	low = float32(c - float64(high))
	return
}

// SplitPrecision returns the interleaved longitude/latitude low parts of
// the coordinates packed in coords, reading one pair every stride elements
// starting at offset. The result has ceil((len(coords)-offset)/stride)*2
// elements. stride <= 0 is treated as 2.
func SplitPrecision(coords []float64, offset, stride int) []float32 {
	return AppendSplitPrecision(nil, coords, offset, stride)
}

// AppendSplitPrecision is SplitPrecision appending to a caller-owned buffer.
func AppendSplitPrecision(dst []float32, coords []float64, offset, stride int) []float32 {
	if stride <= 0 {
		stride = 2
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(coords) {
		return dst
	}
	n := (len(coords) - offset + stride - 1) / stride
	if cap(dst)-len(dst) < 2*n {
		grown := make([]float32, len(dst), len(dst)+2*n)
		copy(grown, dst)
		dst = grown
	}
	for i := 0; i < n; i++ {
		j := offset + i*stride
		_, lngLow := SplitFloat(coords[j])
		var latLow float32
		if j+1 < len(coords) {
			_, latLow = SplitFloat(coords[j+1])
		}
		dst = append(dst, lngLow, latLow)
	}
	return dst
}
