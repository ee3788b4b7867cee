package element

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// MeshProperties holds element, vertex and face counts of a mesh
type MeshProperties struct {
	NumElements int
	NumVertices int
	NumFaces    int
}

// TriMesh is a planar triangle mesh. Triangles are assumed to share one
// orientation; nothing here verifies it.
type TriMesh struct {
	V []Point    // Vertex buffer, index is the vertex identity
	F []Triangle // One entry per triangle
}

// TetMesh is a tetrahedral mesh with consistently oriented elements
type TetMesh struct {
	V []Point3D
	T []Tetrahedron
}

func (m *TriMesh) Properties() MeshProperties {
	return MeshProperties{
		NumElements: len(m.F),
		NumVertices: len(m.V),
		NumFaces:    len(m.F) * Tri.Properties().NFaces,
	}
}

func (m *TetMesh) Properties() MeshProperties {
	return MeshProperties{
		NumElements: len(m.T),
		NumVertices: len(m.V),
		NumFaces:    len(m.T) * Tet.Properties().NFaces,
	}
}

// Validate checks that every triangle references existing, distinct vertices
func (m *TriMesh) Validate() error {
	if len(m.F) == 0 {
		return fmt.Errorf("triangle mesh has no elements")
	}
	for k, tri := range m.F {
		if err := checkElement(Tri, tri[:], len(m.V)); err != nil {
			return fmt.Errorf("%s %d: %w", Tri, k, err)
		}
	}
	return nil
}

// Validate checks that every tetrahedron references existing, distinct vertices
func (m *TetMesh) Validate() error {
	if len(m.T) == 0 {
		return fmt.Errorf("tetrahedral mesh has no elements")
	}
	for k, tet := range m.T {
		if err := checkElement(Tet, tet[:], len(m.V)); err != nil {
			return fmt.Errorf("%s %d: %w", Tet, k, err)
		}
	}
	return nil
}

func checkElement(g ElementGeometry, verts []int, nv int) error {
	if n := g.Properties().NVp; len(verts) != n {
		return fmt.Errorf("%d vertices, want %d", len(verts), n)
	}
	for i, v := range verts {
		if v < 0 || v >= nv {
			return fmt.Errorf("vertex index %d out of range [0, %d)", v, nv)
		}
		for _, w := range verts[i+1:] {
			if v == w {
				return fmt.Errorf("vertex %d repeated", v)
			}
		}
	}
	return nil
}

// FlattenPoints packs a vertex buffer into a state vector laid out as
// x0,y0,x1,y1,...
func FlattenPoints(V []Point) []float64 {
	d := int(Tri.Properties().Dimensions)
	x := make([]float64, d*len(V))
	for i, p := range V {
		x[d*i] = p.X
		x[d*i+1] = p.Y
	}
	return x
}

// UnflattenPoints is the inverse of FlattenPoints
func UnflattenPoints(x []float64) ([]Point, error) {
	d := int(Tri.Properties().Dimensions)
	if len(x)%d != 0 {
		return nil, fmt.Errorf("state vector length %d is not a multiple of %d", len(x), d)
	}
	V := make([]Point, len(x)/d)
	for i := range V {
		V[i] = Point{X: x[d*i], Y: x[d*i+1]}
	}
	return V, nil
}

// FlattenPoints3D packs a vertex buffer into x0,y0,z0,x1,...
func FlattenPoints3D(V []Point3D) []float64 {
	d := int(Tet.Properties().Dimensions)
	x := make([]float64, d*len(V))
	for i, p := range V {
		x[d*i] = p.X
		x[d*i+1] = p.Y
		x[d*i+2] = p.Z
	}
	return x
}

// UnflattenPoints3D is the inverse of FlattenPoints3D
func UnflattenPoints3D(x []float64) ([]Point3D, error) {
	d := int(Tet.Properties().Dimensions)
	if len(x)%d != 0 {
		return nil, fmt.Errorf("state vector length %d is not a multiple of %d", len(x), d)
	}
	V := make([]Point3D, len(x)/d)
	for i := range V {
		V[i] = Point3D{X: x[d*i], Y: x[d*i+1], Z: x[d*i+2]}
	}
	return V, nil
}

// NewGradient2 allocates a zeroed [2 × n] gradient accumulator. n must be
// positive.
func NewGradient2(n int) *mat.Dense {
	return mat.NewDense(int(Tri.Properties().Dimensions), n, nil)
}

// NewGradient3 allocates a zeroed [3 × n] gradient accumulator
func NewGradient3(n int) *mat.Dense {
	return mat.NewDense(int(Tet.Properties().Dimensions), n, nil)
}

// FlattenGradient lays a gradient accumulator out like the state vector,
// column after column
func FlattenGradient(grad mat.Matrix) []float64 {
	r, c := grad.Dims()
	g := make([]float64, 0, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			g = append(g, grad.At(i, j))
		}
	}
	return g
}
