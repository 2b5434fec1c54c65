package graphics

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileError reports a failed shader stage compilation. Linking is never
// attempted after a compile failure.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a failed program link. No partial program is usable.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// BindingError reports an attribute or uniform name the linked program does
// not expose. Drawing with an unresolved binding is undefined behavior in
// OpenGL, so pipeline construction fails instead of handing out the -1
// sentinel.
type BindingError struct {
	Kind string // "attribute" or "uniform"
	Name string
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("%s %q not found in linked program", e.Kind, e.Name)
}

// Shader represents a linked OpenGL shader program with its attribute slots
// and uniform locations resolved once after linking.
type Shader struct {
	ID uint32

	attribs  map[string]uint32
	uniforms map[string]int32
}

// NewShader creates a shader program from vertex and fragment shader source
// files. The source text is passed to the driver verbatim.
func NewShader(vertexPath, fragmentPath string, attribs, uniforms []string) (*Shader, error) {
	vertexSource, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("could not read vertex shader file: %v", err)
	}

	fragmentSource, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("could not read fragment shader file: %v", err)
	}

	return NewShaderFromSource(string(vertexSource), string(fragmentSource), attribs, uniforms)
}

// NewShaderFromSource compiles both stages, links them and resolves every
// requested attribute and uniform name.
func NewShaderFromSource(vertexSrc, fragmentSrc string, attribs, uniforms []string) (*Shader, error) {
	program, err := compileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	s := &Shader{
		ID:       program,
		attribs:  make(map[string]uint32, len(attribs)),
		uniforms: make(map[string]int32, len(uniforms)),
	}
	for _, name := range attribs {
		loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(program)
			return nil, &BindingError{Kind: "attribute", Name: name}
		}
		s.attribs[name] = uint32(loc)
	}
	for _, name := range uniforms {
		loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
		if loc < 0 {
			gl.DeleteProgram(program)
			return nil, &BindingError{Kind: "uniform", Name: name}
		}
		s.uniforms[name] = loc
	}
	return s, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// AttribLocation returns the slot resolved for an attribute name.
func (s *Shader) AttribLocation(name string) uint32 {
	return s.attribs[name]
}

// UniformLocation returns the location resolved for a uniform name, or -1
// if the name was never requested.
func (s *Shader) UniformLocation(name string) int32 {
	if loc, ok := s.uniforms[name]; ok {
		return loc
	}
	return -1
}

// SetMatrix4 uploads a column-major 4x4 matrix uniform.
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(s.uniforms[name], 1, false, value)
}

// Dispose deletes the program object.
func (s *Shader) Dispose() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

// Helper functions
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		gl.DeleteProgram(program)
		return 0, &LinkError{Log: trimInfoLog(log)}
	}

	// shader stage objects can be deleted after linking
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)
	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: trimInfoLog(log)}
	}
	return shader, nil
}

func trimInfoLog(log string) string {
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}
