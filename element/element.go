package element

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

type Dimensionality uint8

const (
	D2 Dimensionality = 2 // Planar elements (triangles)
	D3 Dimensionality = 3 // Volume elements (tetrahedra)
)

type ElementGeometry uint8

const (
	Tri ElementGeometry = iota
	Tet
)

func (g ElementGeometry) String() string {
	if name := g.Properties().ShortName; name != "" {
		return name
	}
	return "Unknown"
}

// Point is a planar vertex position
type Point = r2.Vec

// Point3D is a spatial vertex position
type Point3D = r3.Vec

// Edge is a directed half-edge (From, To) of a triangle. Two half-edges are
// opposite when their indices are reversed.
type Edge [2]int

// Reverse returns the opposite half-edge
func (e Edge) Reverse() Edge {
	return Edge{e[1], e[0]}
}

// Triangle holds the vertex indices of an oriented triangle. It is also used
// as the key for an oriented half-face of a tetrahedron.
type Triangle [3]int

// Tetrahedron holds the vertex indices of an oriented tetrahedron
type Tetrahedron [4]int
