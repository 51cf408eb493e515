package main

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hexaflex/catdemo/motion"
)

type fakeKeys map[glfw.Key]bool

func (k fakeKeys) GetKey(key glfw.Key) glfw.Action {
	if k[key] {
		return glfw.Press
	}
	return glfw.Release
}

type uniformRecorder struct {
	floats map[string]float32
	mats   map[string]mgl32.Mat4
}

func newUniformRecorder() *uniformRecorder {
	return &uniformRecorder{
		floats: make(map[string]float32),
		mats:   make(map[string]mgl32.Mat4),
	}
}

func (r *uniformRecorder) SetFloat(name string, v float32)   { r.floats[name] = v }
func (r *uniformRecorder) SetMat4(name string, m mgl32.Mat4) { r.mats[name] = m }

func TestUpdateKeys(t *testing.T) {
	for i, v := range []struct {
		keys fakeKeys
		want float32
	}{
		{fakeKeys{}, 0},
		{fakeKeys{glfw.KeyA: true}, -motion.Step},
		{fakeKeys{glfw.KeyD: true}, motion.Step},
		{fakeKeys{glfw.KeyA: true, glfw.KeyD: true}, -motion.Step},
		{fakeKeys{glfw.KeyW: true}, 0},
	} {
		var state motion.State
		f := update(&state, v.keys, 0, false)

		if !mgl32.FloatEqual(state.X, v.want) {
			t.Fatalf("test %d: want x=%v; have %v", i+1, v.want, state.X)
		}

		if have := f.Transform.Col(3); have != (mgl32.Vec4{state.X, 0, 0, 1}) {
			t.Fatalf("test %d: want translation %v; have %v", i+1, state.X, have)
		}
	}
}

func TestUpdateOscillateIgnoresKeys(t *testing.T) {
	var state motion.State
	update(&state, fakeKeys{glfw.KeyA: true}, 0, true)

	if !mgl32.FloatEqual(state.X, 0.5) {
		t.Fatalf("want x=0.5; have %v", state.X)
	}
}

func TestFrameApply(t *testing.T) {
	state := motion.State{X: 0.25}
	f := update(&state, fakeKeys{}, 0, false)

	rec := newUniformRecorder()
	f.apply(rec)

	if have := rec.mats[uniformTransform]; have != state.Transform() {
		t.Fatalf("want transform %v; have %v", state.Transform(), have)
	}

	for name, want := range map[string]float32{
		uniformRed:   1,
		uniformGreen: 0.9,
		uniformBlue:  0,
	} {
		have, ok := rec.floats[name]
		if !ok {
			t.Fatalf("uniform %q was not set", name)
		}
		if have != want {
			t.Fatalf("uniform %q: want %v; have %v", name, want, have)
		}
	}
}
