// Package motion computes the per-frame transform and fill colour of the mesh.
package motion

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Step is the horizontal distance moved per frame while a key is held.
// It is not scaled by frame time.
const Step = 0.001

// Scale applied to elapsed seconds before the colour threshold test.
const timeScale = 20

// Fill colour levels.
var (
	Warm = Color{R: 1, G: 0.9, B: 0}
	Cold = Color{R: 0, G: 0, B: 1}
)

// State holds the mesh's horizontal offset.
type State struct {
	X float32
}

// Step advances the offset by one frame. Left wins when both are held.
func (s *State) Step(left, right bool) {
	if left {
		s.X -= Step
	} else if right {
		s.X += Step
	}
}

// Oscillate sets the offset from elapsed time, swinging it through [0, 1].
func (s *State) Oscillate(seconds float64) {
	s.X = float32(math.Sin(seconds)/2 + 0.5)
}

// Transform returns the identity matrix translated by (X, 0, 0).
func (s *State) Transform() mgl32.Mat4 {
	return mgl32.Ident4().Mul4(mgl32.Translate3D(s.X, 0, 0))
}

// Color defines an RGB fill colour.
type Color struct {
	R, G, B float32
}

// ColorAt returns the fill colour for the given elapsed time.
// It flips between Warm and Cold as sin(seconds*20) changes sign.
func ColorAt(seconds float64) Color {
	if threshold(seconds) < 0.5 {
		return Cold
	}
	return Warm
}

func threshold(seconds float64) float64 {
	return math.Sin(seconds*timeScale)/2 + 0.5
}
