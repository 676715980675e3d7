package geo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/seqsense/mercatorgl"
)

// ElevationProperty is the feature property read as the elevation in meters
// of every vertex of the feature.
const ElevationProperty = "elevation"

// DecodeGeoJSON reads a GeoJSON object: a geometry, a Feature or a
// FeatureCollection. Polygon rings become lines.
//
// Positions are read as longitude and latitude only. Elevation comes from
// the ElevationProperty of the enclosing feature.
func DecodeGeoJSON(r io.Reader) (*Layer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	l := &Layer{}
	switch head.Type {
	case "":
		return nil, errors.New("invalid geojson: missing type")
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			if err := l.addFeature(f); err != nil {
				return nil, err
			}
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		if err := l.addFeature(f); err != nil {
			return nil, err
		}
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		if err := l.addGeometry(g.Geometry(), 0); err != nil {
			return nil, err
		}
	}
	if l.Len() == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}

func (l *Layer) addFeature(f *geojson.Feature) error {
	if f.Geometry == nil {
		return nil
	}
	return l.addGeometry(f.Geometry, f.Properties.MustFloat64(ElevationProperty, 0))
}

func (l *Layer) addGeometry(g orb.Geometry, elev float64) error {
	switch g := g.(type) {
	case nil:
	case orb.Point:
		l.addPoint(lngLat(g, elev))
	case orb.MultiPoint:
		for _, p := range g {
			l.addPoint(lngLat(p, elev))
		}
	case orb.LineString:
		l.addLine(lineOf(g, elev))
	case orb.Ring:
		l.addLine(lineOf(g, elev))
	case orb.MultiLineString:
		for _, ls := range g {
			l.addLine(lineOf(ls, elev))
		}
	case orb.Polygon:
		for _, r := range g {
			l.addLine(lineOf(r, elev))
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, r := range poly {
				l.addLine(lineOf(r, elev))
			}
		}
	case orb.Bound:
		l.addLine(lineOf(g.ToRing(), elev))
	case orb.Collection:
		for _, c := range g {
			if err := l.addGeometry(c, elev); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unsupported geometry type: %s", g.GeoJSONType())
	}
	return nil
}

func lngLat(p orb.Point, elev float64) mercatorgl.LngLat {
	return mercatorgl.LngLat{Lng: p.Lon(), Lat: p.Lat(), Elevation: elev}
}

func lineOf(ps []orb.Point, elev float64) []mercatorgl.LngLat {
	ret := make([]mercatorgl.LngLat, 0, len(ps))
	for _, p := range ps {
		ret = append(ret, lngLat(p, elev))
	}
	return ret
}
