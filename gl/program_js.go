package gl

import (
	"errors"
	"fmt"
	"syscall/js"

	pcmat "github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"

	"github.com/seqsense/mercatorgl"
)

var ErrContextLost = errors.New("WebGL context lost")

// Program is a linked shader program whose vertex shader includes the
// projection functions.
type Program struct {
	gl       *webgl.WebGL
	program  webgl.Program
	uniforms map[string]webgl.Location
}

// NewProgram injects the projection GLSL into vs, compiles both shaders and
// links them. Uniforms removed by the GLSL compiler are logged and skipped
// on upload.
func NewProgram(gl *webgl.WebGL, vs, fs string) (*Program, error) {
	v, err := compileShader(gl, gl.VERTEX_SHADER, "VERTEX_SHADER", mercatorgl.InjectGLSL(vs))
	if err != nil {
		return nil, err
	}
	f, err := compileShader(gl, gl.FRAGMENT_SHADER, "FRAGMENT_SHADER", fs)
	if err != nil {
		return nil, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return nil, ErrContextLost
		}
		return nil, errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}

	p := &Program{
		gl:       gl,
		program:  program,
		uniforms: make(map[string]webgl.Location),
	}
	for _, name := range mercatorgl.UniformNames {
		loc := gl.GetUniformLocation(program, name)
		if js.Value(loc).IsNull() {
			mercatorgl.Logger().Warn("mercatorgl: uniform is not active", "name", name)
			continue
		}
		p.uniforms[name] = loc
	}
	return p, nil
}

func compileShader(gl *webgl.WebGL, typ webgl.ShaderType, name, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), ErrContextLost
		}
		return webgl.Shader(js.Null()), fmt.Errorf("compile failed (%s): %s",
			name, gl.JS().Call("getShaderInfoLog", js.Value(s)).String())
	}
	return s, nil
}

// Use makes p the current program.
func (p *Program) Use() {
	p.gl.UseProgram(p.program)
}

// WebGLProgram returns the underlying program for binding custom uniforms
// and attributes.
func (p *Program) WebGLProgram() webgl.Program {
	return p.program
}

// SetUniforms uploads u to the current program. p must be in use.
func (p *Program) SetUniforms(u *mercatorgl.Uniforms) {
	u.ForEach(func(name string, value interface{}) {
		loc, ok := p.uniforms[name]
		if !ok {
			return
		}
		switch v := value.(type) {
		case float32:
			p.gl.Uniform1f(loc, v)
		case mercatorgl.Vec2:
			p.gl.JS().Call("uniform2f", js.Value(loc), v[0], v[1])
		case mercatorgl.Vec3:
			p.gl.Uniform3fv(loc, pcmat.Vec3(v))
		case mercatorgl.Vec4:
			p.gl.JS().Call("uniform4f", js.Value(loc), v[0], v[1], v[2], v[3])
		case pcmat.Mat4:
			p.gl.UniformMatrix4fv(loc, false, v)
		default:
			panic(fmt.Sprintf("unsupported uniform type %T", value))
		}
	})
}
