package mesh

// Mesh dimensions.
const (
	VertexCount   = 22                // Number of points in Vertices.
	TriangleCount = 9                 // Number of triangles in Indices.
	IndexCount    = TriangleCount * 3 // Number of indices issued per draw.
	vertexStride  = 3 * 4             // Bytes per vertex: x, y, z as float32.
)

// Vertices holds the cat's points as packed x, y, z triples.
var Vertices = [VertexCount * 3]float32{
	0.0, 0.0, 0.0,
	-0.125, -0.125, 0.0,
	0.125, -0.125, 0.0,
	0.0, -0.25, 0.0,
	0.25, 0.0, 0.0,
	0.25, -0.25, 0.0,
	-0.125, -0.375, 0.0,
	0.375, -0.375, 0.0,
	0.5, -0.25, 0.0,
	0.625, -0.375, 0.0,
	-0.185, 0.125, 0.0,
	-0.31, 0.0, 0.0,
	-0.185, 0.0, 0.0,
	-0.185, -0.125, 0.0,
	-0.185, 0.350, 0.0,
	0.165, 0.0, 0.0,
	-0.185, 0.525, 0.0,
	-0.36, 0.35, 0.0,
	-0.085, -0.165, 0.0,
	-0.04, -0.21, 0.0,
	-0.0685, -0.0765, 0.0,
	-0.64, -0.81, 0.0,
}

// Indices lists the triangles making up the cat. Points 18 through 21 are unused.
var Indices = [IndexCount]uint32{
	17, 16, 14, // head
	14, 12, 15, // neck
	10, 11, 13, // paws
	0, 1, 2, // upper body
	1, 2, 3, // lower body
	0, 4, 5, // back
	2, 6, 7, // lower paws
	5, 7, 8, // upper tail
	7, 8, 9, // lower tail
}
