package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/catdemo/mesh"
	"github.com/hexaflex/catdemo/motion"
	"github.com/hexaflex/catdemo/shader"
)

// WindowTitle is the fixed title of the demo window.
const WindowTitle = "LearnOpenGL"

// StartupError reports a failure to create the window or load OpenGL.
type StartupError struct {
	Err error
}

func (e *StartupError) Error() string {
	return e.Err.Error()
}

// App defines application context.
type App struct {
	config  *Config         // Application configuration.
	window  *glfw.Window    // OpenGL/GLFW context.
	program *shader.Program // Shader program drawing the mesh.
	mesh    *mesh.Mesh      // Uploaded cat geometry.
	state   motion.State    // Horizontal offset of the mesh.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	return &App{config: config}
}

// Run runs the application and does not return until the window is closed
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())
	printHelp()

	var err error
	a.program, err = shader.Load(a.config.VertexShader, a.config.FragmentShader)
	if err != nil {
		return errors.Wrapf(err, "failed to build shader program")
	}

	a.mesh, err = mesh.New()
	if err != nil {
		return errors.Wrapf(err, "failed to upload mesh")
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations for a single frame.
func (a *App) mainLoop() {
	if a.window.GetKey(glfw.KeyEscape) == glfw.Press {
		a.window.SetShouldClose(true)
	}

	gl.ClearColor(0.9, 0.9, 0.9, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	a.program.Use()
	f := update(&a.state, a.window, glfw.GetTime(), a.config.Oscillate)
	f.apply(a.program)
	a.mesh.Draw()

	if a.config.Trace {
		fmt.Printf("%f\n", a.state.X)
	}

	a.window.SwapBuffers()
	glfw.PollEvents()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if a.mesh != nil {
		a.mesh.Delete()
		a.mesh = nil
	}

	if a.program != nil {
		a.program.Delete()
		a.program = nil
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Press && key == glfw.KeyF1 {
		printHelp()
	}
}

// framebufferSizeCallback keeps the viewport in step with the framebuffer.
// On high-DPI displays the framebuffer is larger than the window.
func (a *App) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return &StartupError{errors.Wrapf(err, "glfw.Init failed")}
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	a.window, err = glfw.CreateWindow(a.config.Width, a.config.Height, WindowTitle, nil, nil)
	if err != nil {
		a.dispose()
		return &StartupError{errors.Wrapf(err, "glfw.CreateWindow failed")}
	}

	a.window.MakeContextCurrent()
	a.window.SetFramebufferSizeCallback(a.framebufferSizeCallback)
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(_bool(a.config.VSync))

	err = gl.Init()
	if err != nil {
		a.dispose()
		return &StartupError{errors.Wrapf(err, "gl.Init failed")}
	}

	width, height := a.window.GetFramebufferSize()
	a.framebufferSizeCallback(a.window, width, height)

	if a.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}

	return nil
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	log.Println(helpText())
}

func helpText() string {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Close the window.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" A        Move the cat left while held.\n")
	sb.WriteString(" D        Move the cat right while held.")
	return sb.String()
}

func _bool(v bool) int {
	if v {
		return 1
	}
	return 0
}
