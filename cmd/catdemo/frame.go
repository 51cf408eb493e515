package main

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/catdemo/motion"
)

// Uniform names expected by the shaders.
const (
	uniformTransform = "transform"
	uniformRed       = "outRed"
	uniformGreen     = "outGreen"
	uniformBlue      = "outBlue"
)

// keyReader reports the state of a keyboard key. *glfw.Window implements it.
type keyReader interface {
	GetKey(glfw.Key) glfw.Action
}

// uniformSetter receives per-frame uniform values. *shader.Program implements it.
type uniformSetter interface {
	SetFloat(string, float32)
	SetMat4(string, mgl32.Mat4)
}

// frame holds the values pushed to the shaders for one frame.
type frame struct {
	Transform mgl32.Mat4
	Color     motion.Color
}

// update advances state by one frame and returns the resulting uniforms.
func update(state *motion.State, keys keyReader, seconds float64, oscillate bool) frame {
	if oscillate {
		state.Oscillate(seconds)
	} else {
		state.Step(
			keys.GetKey(glfw.KeyA) == glfw.Press,
			keys.GetKey(glfw.KeyD) == glfw.Press,
		)
	}

	return frame{
		Transform: state.Transform(),
		Color:     motion.ColorAt(seconds),
	}
}

// apply sets the frame's uniforms on p.
func (f frame) apply(p uniformSetter) {
	p.SetMat4(uniformTransform, f.Transform)
	p.SetFloat(uniformRed, f.Color.R)
	p.SetFloat(uniformGreen, f.Color.G)
	p.SetFloat(uniformBlue, f.Color.B)
}
