// Command mercatorgl inspects the projection of a camera: uniforms, point
// projections, float splits, the GLSL block and PNG renders of a layer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/seqsense/mercatorgl"
)

func main() {
	cameraPath := flag.String("camera", "", "camera YAML file")
	verbose := flag.Bool("v", false, "log debug messages to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] command [args...]\n\nflags:\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(), "\ncommands:\n%s", usage())
	}
	flag.Parse()

	if *verbose {
		mercatorgl.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx := &commandContext{out: os.Stdout}
	if *cameraPath != "" {
		c, err := mercatorgl.LoadCameraFile(*cameraPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		ctx.camera = &c
	}

	c := &console{cmd: ctx}
	if err := c.Run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, errInvalidCommand) {
			flag.Usage()
		}
		os.Exit(1)
	}
}
