package mercatorgl

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoViewport is returned by LoadCamera for cameras without a viewport size.
var ErrNoViewport = errors.New("viewport size must be positive")

// LoadCamera decodes a YAML camera description and applies defaults:
//
//	center: {lng: 139.767, lat: 35.681}
//	zoom: 15
//	pitch: 45
//	bearing: 0
//	viewport_width: 1280
//	viewport_height: 720
//	near: 720 # optional, defaults to viewport_height
//
// Files without a viewport are rejected; other degenerate values are passed
// through as they are.
func LoadCamera(r io.Reader) (Camera, error) {
	var c Camera
	if err := yaml.NewDecoder(r).Decode(&c); err != nil {
		return Camera{}, fmt.Errorf("decoding camera: %w", err)
	}
	if c.ViewportWidth <= 0 || c.ViewportHeight <= 0 {
		return Camera{}, ErrNoViewport
	}
	return c.WithDefaults(), nil
}

// LoadCameraFile reads a camera from a YAML file.
func LoadCameraFile(path string) (Camera, error) {
	f, err := os.Open(path)
	if err != nil {
		return Camera{}, err
	}
	defer f.Close()

	c, err := LoadCamera(f)
	if err != nil {
		return Camera{}, fmt.Errorf("%s: %w", path, err)
	}
	Logger().Info("mercatorgl: camera loaded", "path", path,
		"lng", c.Center.Lng, "lat", c.Center.Lat, "zoom", c.Zoom)
	return c, nil
}

// MarshalCamera encodes c as YAML.
func MarshalCamera(c Camera) ([]byte, error) {
	return yaml.Marshal(c)
}
