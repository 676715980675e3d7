// Command mercatorview previews a GeoJSON or CSV layer in the terminal.
//
//	mercatorview [-camera camera.yaml] layer.geojson
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seqsense/mercatorgl"
	"github.com/seqsense/mercatorgl/internal/geo"
	"github.com/seqsense/mercatorgl/internal/tui"
)

const (
	// Fit zoom is computed for a typical 80x24 terminal in braille dots.
	fitWidth   = 160
	fitHeight  = 84
	fitMaxZoom = 18
)

func main() {
	cameraPath := flag.String("camera", "", "camera YAML file, fitted to the layer when empty")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] layer\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	l, err := geo.Load(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	var c mercatorgl.Camera
	if *cameraPath != "" {
		if c, err = mercatorgl.LoadCameraFile(*cameraPath); err != nil {
			log.Fatal(err)
		}
	} else {
		c = mercatorgl.Camera{
			Center: l.Bounds.Center(),
			Zoom:   l.Bounds.FitZoom(fitWidth*0.9, fitHeight*0.9, fitMaxZoom),
		}
	}

	m := tui.New(filepath.Base(flag.Arg(0)), l, c)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
