package mesh

import "testing"

func TestIndexCount(t *testing.T) {
	if len(Indices) != 27 {
		t.Fatalf("want 27 indices; have %d", len(Indices))
	}

	if have := drawCount(Indices[:]); have != 27 {
		t.Fatalf("want draw count 27; have %d", have)
	}

	if have := drawCount(Indices[:6]); have != 6 {
		t.Fatalf("want draw count 6; have %d", have)
	}
}

func TestMeshData(t *testing.T) {
	if len(Vertices) != VertexCount*3 {
		t.Fatalf("want %d floats; have %d", VertexCount*3, len(Vertices))
	}

	if err := Validate(Vertices[:], Indices[:]); err != nil {
		t.Fatal(err)
	}
}

func TestTrianglesNotDegenerate(t *testing.T) {
	for i := 0; i < len(Indices); i += 3 {
		a := point(Indices[i])
		b := point(Indices[i+1])
		c := point(Indices[i+2])

		area := (b[0]-a[0])*(c[1]-a[1]) - (c[0]-a[0])*(b[1]-a[1])
		if area == 0 {
			t.Fatalf("triangle %d (%v) has zero area", i/3, Indices[i:i+3])
		}
	}
}

func TestValidate(t *testing.T) {
	verts := []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}

	for i, v := range []struct {
		vertices []float32
		indices  []uint32
		ok       bool
	}{
		{verts, []uint32{0, 1, 2}, true},
		{verts, []uint32{0, 1, 3}, false},
		{verts, []uint32{0, 1}, false},
		{verts[:8], []uint32{0, 1, 2}, false},
		{verts, nil, true},
	} {
		err := Validate(v.vertices, v.indices)
		if (err == nil) != v.ok {
			t.Fatalf("test %d: want ok=%v; have %v", i+1, v.ok, err)
		}
	}
}

func TestDeleteUnuploaded(t *testing.T) {
	var m Mesh
	m.Delete() // Must not touch GL when nothing was uploaded.
}

func point(i uint32) [2]float32 {
	return [2]float32{Vertices[i*3], Vertices[i*3+1]}
}
