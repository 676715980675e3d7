package geo

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/seqsense/mercatorgl"
)

// DecodeCSV reads points from a CSV file with a header row. Columns are
// detected by name: lat|latitude|y, lon|lng|long|longitude|x and an
// optional elevation|ele|alt|z. Rows that do not parse are skipped.
func DecodeCSV(r io.Reader) (*Layer, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	recs, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}

	idxLat, idxLon, idxEle := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "elevation", "ele", "alt", "z":
			if idxEle == -1 {
				idxEle = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, errors.New("csv: latitude/longitude columns not found")
	}

	parse := func(row []string, i int) (float64, bool) {
		if i >= len(row) {
			return 0, false
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		return v, err == nil
	}

	l := &Layer{}
	for _, row := range recs[1:] {
		lng, ok1 := parse(row, idxLon)
		lat, ok2 := parse(row, idxLat)
		if !ok1 || !ok2 {
			continue
		}
		p := mercatorgl.LngLat{Lng: lng, Lat: lat}
		if idxEle >= 0 {
			p.Elevation, _ = parse(row, idxEle)
		}
		l.addPoint(p)
	}
	if len(l.Points) == 0 {
		return nil, ErrEmpty
	}
	return l, nil
}
