package mercatorgl

import (
	"math"

	"github.com/seqsense/mercatorgl/mat"
)

// LngLatToMercator projects p to mercator pixels at the given zoom in double
// precision. x grows eastward and y southward from the north-west corner of
// the world; elevation is kept as z.
func LngLatToMercator(p LngLat, zoom float64) mat.Vec4 {
	scale := math.Exp2(zoom)
	lambda := p.Lng * degreesToRadians
	phi := p.Lat * degreesToRadians
	return mat.Vec4{
		scale * TileScale * (lambda + math.Pi),
		scale * TileScale * (math.Pi - math.Log(math.Tan(piQuarter+phi*0.5))),
		p.Elevation,
		1,
	}
}

// MercatorToLngLat is the inverse of LngLatToMercator.
func MercatorToLngLat(world mat.Vec4, zoom float64) LngLat {
	k := math.Exp2(zoom) * TileScale
	return LngLat{
		Lng:       (world[0]/k - math.Pi) / degreesToRadians,
		Lat:       (2*math.Atan(math.Exp(math.Pi-world[1]/k)) - math.Pi/2) / degreesToRadians,
		Elevation: world[2],
	}
}

// MercatorToClip transforms an absolute mercator position to clip space.
func MercatorToClip(world mat.Vec4, viewProjection mat.Mat4) mat.Vec4 {
	return viewProjection.Transform(world)
}

// LngLatToClip is MercatorToClip(LngLatToMercator(p, zoom), viewProjection).
func LngLatToClip(p LngLat, zoom float64, viewProjection mat.Mat4) mat.Vec4 {
	return MercatorToClip(LngLatToMercator(p, zoom), viewProjection)
}

// PixelsPerDegree returns the number of mercator pixels covered by one
// degree of longitude (x) and of latitude (y) around lat.
func PixelsPerDegree(lat, zoom float64) (x, y float64) {
	x = math.Exp2(zoom) * TileSize / 360
	y = x / math.Cos(lat*degreesToRadians)
	return
}

// PixelsPerMeter returns the number of mercator pixels covered by one meter
// around lat.
func PixelsPerMeter(lat, zoom float64) float64 {
	return math.Exp2(zoom) * TileSize / EarthCircumference / math.Cos(lat*degreesToRadians)
}
