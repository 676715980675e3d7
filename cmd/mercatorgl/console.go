package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	pcmat "github.com/seqsense/pcgol/mat"

	"github.com/seqsense/mercatorgl"
)

var (
	errArgumentNumber = errors.New("invalid number of arguments")
	errInvalidCommand = errors.New("invalid command")
	errNoCamera       = errors.New("camera is required, pass -camera")
)

type commandContext struct {
	camera *mercatorgl.Camera
	out    io.Writer
}

func (c *commandContext) requireCamera() (mercatorgl.Camera, error) {
	if c.camera == nil {
		return mercatorgl.Camera{}, errNoCamera
	}
	return *c.camera, nil
}

type consoleCommand struct {
	args string
	help string
	run  func(cmd *commandContext, args []string) ([][]string, error)
}

var consoleCommands = map[string]consoleCommand{
	"uniforms": {
		help: "print the uniforms of the camera",
		run: func(cmd *commandContext, args []string) ([][]string, error) {
			if len(args) != 0 {
				return nil, errArgumentNumber
			}
			c, err := cmd.requireCamera()
			if err != nil {
				return nil, err
			}
			var u mercatorgl.Uniforms
			c.Uniforms(&u)

			var res [][]string
			u.ForEach(func(name string, value interface{}) {
				res = append(res, append([]string{name}, formatUniform(value)...))
			})
			res = append(res, []string{"offset", strconv.FormatBool(u.Offset())})
			return res, nil
		},
	},
	"project": {
		args: "lng lat [elevation]",
		help: "project a point in double precision and on the float32 path",
		run: func(cmd *commandContext, args []string) ([][]string, error) {
			v, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			if len(v) != 2 && len(v) != 3 {
				return nil, errArgumentNumber
			}
			c, err := cmd.requireCamera()
			if err != nil {
				return nil, err
			}
			p := mercatorgl.LngLat{Lng: v[0], Lat: v[1]}
			if len(v) == 3 {
				p.Elevation = v[2]
			}

			var u mercatorgl.Uniforms
			c.Uniforms(&u)
			vp := c.ProjectionMatrix().Mul(c.ViewMatrix())

			world := mercatorgl.LngLatToMercator(p, c.Zoom)
			clip := mercatorgl.MercatorToClip(world, vp)
			clip32 := u.LngLatToClip(p.Vertex())

			res := [][]string{
				append([]string{"mercator"}, formatFloats(world[:]...)...),
				append([]string{"clip"}, formatFloats(clip[:]...)...),
				append([]string{"clip32"}, formatFloat32s(clip32[:]...)...),
			}
			if x, y, ok := c.ClipToScreen(clip); ok {
				res = append(res, append([]string{"screen"}, formatFloats(x, y)...))
			}
			if x, y, ok := c.ClipToScreen(clip32.Float64()); ok {
				res = append(res, append([]string{"screen32"}, formatFloats(x, y)...))
			}
			return res, nil
		},
	},
	"split": {
		args: "value...",
		help: "split values into float32 high and low parts",
		run: func(cmd *commandContext, args []string) ([][]string, error) {
			v, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			if len(v) == 0 {
				return nil, errArgumentNumber
			}
			var res [][]string
			for i, f := range v {
				high, low := mercatorgl.SplitFloat(f)
				res = append(res, append([]string{args[i]}, formatFloat32s(high, low)...))
			}
			return res, nil
		},
	},
	"glsl": {
		args: "[vertex shader]",
		help: "print the projection GLSL, or the shader file with it injected",
		run: func(cmd *commandContext, args []string) ([][]string, error) {
			switch len(args) {
			case 0:
				_, err := io.WriteString(cmd.out, mercatorgl.ProjectionGLSL)
				return nil, err
			case 1:
				b, err := os.ReadFile(args[0])
				if err != nil {
					return nil, err
				}
				_, err = io.WriteString(cmd.out, mercatorgl.InjectGLSL(string(b)))
				return nil, err
			default:
				return nil, errArgumentNumber
			}
		},
	},
	"render": {
		args: "[-o out.png] [-point-size px] layer",
		help: "render a GeoJSON or CSV layer to PNG",
		run:  runRender,
	},
}

func usage() string {
	names := make([]string, 0, len(consoleCommands))
	for name := range consoleCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		c := consoleCommands[name]
		fmt.Fprintf(&b, "  %s %s\n    \t%s\n", name, c.args, c.help)
	}
	return b.String()
}

type console struct {
	cmd *commandContext
}

// Run executes one command and writes its result rows, space separated.
func (c *console) Run(args []string) error {
	if len(args) == 0 {
		return errInvalidCommand
	}
	command, ok := consoleCommands[args[0]]
	if !ok {
		return errInvalidCommand
	}
	res, err := command.run(c.cmd, args[1:])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	for _, row := range res {
		if _, err := fmt.Fprintln(c.cmd.out, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

func parseFloats(args []string) ([]float64, error) {
	var ret []float64
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		ret = append(ret, f)
	}
	return ret, nil
}

func formatFloats(v ...float64) []string {
	ret := make([]string, len(v))
	for i, f := range v {
		ret[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return ret
}

func formatFloat32s(v ...float32) []string {
	ret := make([]string, len(v))
	for i, f := range v {
		ret[i] = strconv.FormatFloat(float64(f), 'g', -1, 32)
	}
	return ret
}

func formatUniform(value interface{}) []string {
	switch v := value.(type) {
	case float32:
		return formatFloat32s(v)
	case mercatorgl.Vec2:
		return formatFloat32s(v[:]...)
	case mercatorgl.Vec3:
		return formatFloat32s(v[:]...)
	case mercatorgl.Vec4:
		return formatFloat32s(v[:]...)
	case pcmat.Mat4:
		return formatFloat32s(v[:]...)
	}
	return []string{fmt.Sprint(value)}
}
