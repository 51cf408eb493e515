// Package shader wraps an OpenGL program built from a vertex and a fragment stage.
package shader

import (
	"io/ioutil"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// Program defines a linked shader program and its uniform locations.
type Program struct {
	handle    uint32                                  // GL program name; 0 once deleted.
	locations map[string]int32                        // Uniform locations, resolved on first use.
	locate    func(program uint32, name string) int32 // Location lookup; the driver by default.
}

// Load reads the vertex and fragment sources from the given files
// and builds a program from them.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vertex, err := ioutil.ReadFile(vertexPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read vertex shader %q", vertexPath)
	}

	fragment, err := ioutil.ReadFile(fragmentPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read fragment shader %q", fragmentPath)
	}

	return New(string(vertex), string(fragment))
}

// New compiles and links the given sources.
// This requires a current OpenGL context.
func New(vertex, fragment string) (*Program, error) {
	handle, err := compileProgram(vertex, fragment)
	if err != nil {
		return nil, err
	}
	return newProgram(handle, uniformLocation), nil
}

func newProgram(handle uint32, locate func(uint32, string) int32) *Program {
	return &Program{
		handle:    handle,
		locations: make(map[string]int32),
		locate:    locate,
	}
}

// Use makes p the current program for subsequent draw calls.
func (p *Program) Use() {
	gl.UseProgram(p.handle)
}

// SetFloat sets the named float uniform.
// Unknown uniforms are ignored.
func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

// SetMat4 sets the named 4x4 matrix uniform.
// Unknown uniforms are ignored.
func (p *Program) SetMat4(name string, m mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// Delete releases the program. Subsequent calls do nothing.
func (p *Program) Delete() {
	if p.handle == 0 {
		return
	}
	gl.DeleteProgram(p.handle)
	p.handle = 0
	p.locations = make(map[string]int32)
}

// location returns the cached location for name, asking the driver
// only the first time a name is seen. Misses are cached as -1.
func (p *Program) location(name string) int32 {
	if p.handle == 0 {
		return -1
	}

	loc, ok := p.locations[name]
	if !ok {
		loc = p.locate(p.handle, name)
		p.locations[name] = loc
	}
	return loc
}
