package shader

import (
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// glStr returns v as a C string, suitable for use with opengl.
func glStr(v string) *uint8 {
	return gl.Str(v + "\x00")
}

// stageName returns a readable name for the given shader type.
func stageName(stype uint32) string {
	switch stype {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}

// compileProgram compiles the given shader sources and links them into a program.
// Both stages are always compiled, so a caller sees every stage's log at once.
func compileProgram(vertex, fragment string) (uint32, error) {
	var errs ErrorSet

	vs, err := compileShader(vertex, gl.VERTEX_SHADER)
	if err != nil {
		errs.Append(err)
	} else {
		defer gl.DeleteShader(vs)
	}

	fs, err := compileShader(fragment, gl.FRAGMENT_SHADER)
	if err != nil {
		errs.Append(err)
	} else {
		defer gl.DeleteShader(fs)
	}

	switch errs.Len() {
	case 0:
	case 1:
		return 0, errs[0]
	default:
		return 0, errs
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, &LinkError{Log: strings.TrimRight(log, "\x00")}
	}

	return program, nil
}

// compileShader compiles the given shader source.
func compileShader(source string, stype uint32) (uint32, error) {
	shader := gl.CreateShader(stype)

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

		return 0, &CompileError{
			Stage: stageName(stype),
			Log:   strings.TrimRight(log, "\x00"),
		}
	}

	return shader, nil
}

// uniformLocation queries the driver for a named uniform in program.
func uniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, glStr(name))
}
