package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config defines program configuration.
type Config struct {
	VertexShader   string `yaml:"vertex_shader"`   // Path to the vertex shader source.
	FragmentShader string `yaml:"fragment_shader"` // Path to the fragment shader source.
	Width          int    `yaml:"width"`           // Initial window width in screen coordinates.
	Height         int    `yaml:"height"`          // Initial window height in screen coordinates.
	Wireframe      bool   `yaml:"wireframe"`       // Draw polygon outlines only.
	Oscillate      bool   `yaml:"oscillate"`       // Move the mesh on a timer instead of keyboard input.
	Trace          bool   `yaml:"trace"`           // Print the horizontal offset every frame.
	VSync          bool   `yaml:"vsync"`           // Wait for vertical sync on buffer swaps.
}

// defaultConfig returns the configuration used when no options are given.
func defaultConfig() *Config {
	return &Config{
		VertexShader:   "vertexShader.glsl",
		FragmentShader: "fragmentShader.glsl",
		Width:          800,
		Height:         600,
		Trace:          true,
		VSync:          true,
	}
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	c, version, err := loadConfig(os.Args[0], os.Args[1:], os.Stderr)
	if err == flag.ErrHelp {
		os.Exit(0)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if version {
		fmt.Println(Version())
		os.Exit(0)
	}

	return c
}

// loadConfig builds a configuration from defaults, an optional YAML
// file named by -config, and the remaining flags, in that order of precedence.
func loadConfig(name string, args []string, output io.Writer) (*Config, bool, error) {
	c := defaultConfig()

	fs, file, version := newFlagSet(name, c, output)
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	if fs.NArg() > 0 {
		return nil, false, errors.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if len(*file) == 0 {
		return c, *version, c.validate()
	}

	c = defaultConfig()
	if err := c.load(*file); err != nil {
		return nil, false, err
	}

	// Flags take precedence over the file.
	fs, _, version = newFlagSet(name, c, output)
	if err := fs.Parse(args); err != nil {
		return nil, false, err
	}

	return c, *version, c.validate()
}

func newFlagSet(name string, c *Config, output io.Writer) (*flag.FlagSet, *string, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, "%s [options]\n", name)
		fs.PrintDefaults()
	}

	fs.StringVar(&c.VertexShader, "vertex", c.VertexShader, "Vertex shader source file.")
	fs.StringVar(&c.FragmentShader, "fragment", c.FragmentShader, "Fragment shader source file.")
	fs.IntVar(&c.Width, "width", c.Width, "Window width.")
	fs.IntVar(&c.Height, "height", c.Height, "Window height.")
	fs.BoolVar(&c.Wireframe, "wireframe", c.Wireframe, "Draw the mesh as wireframe.")
	fs.BoolVar(&c.Oscillate, "oscillate", c.Oscillate, "Move the mesh back and forth on its own.")
	fs.BoolVar(&c.Trace, "trace", c.Trace, "Print the horizontal offset every frame.")
	fs.BoolVar(&c.VSync, "vsync", c.VSync, "Enable vertical sync.")

	file := fs.String("config", "", "YAML file with configuration values. Flags override its contents.")
	version := fs.Bool("version", false, "Display version information.")
	return fs, file, version
}

// load reads YAML configuration from the given file into c.
// Keys absent from the file keep their current values.
func (c *Config) load(file string) error {
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return errors.Wrapf(err, "failed to read config")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "failed to parse config %q", file)
	}

	return nil
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("invalid window size %dx%d", c.Width, c.Height)
	}

	if len(c.VertexShader) == 0 || len(c.FragmentShader) == 0 {
		return errors.New("shader paths must not be empty")
	}

	return nil
}
