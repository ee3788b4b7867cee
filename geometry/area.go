package geometry

import (
	"math"

	"github.com/notargets/MeshMap/angle"
	"github.com/notargets/MeshMap/element"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
)

// TriSignedArea returns the area of triangle (p1,p2,p3), positive when the
// corners run counter-clockwise
func TriSignedArea(p1, p2, p3 element.Point) float64 {
	return 0.5 * (p3.X*(p1.Y-p2.Y) + p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y))
}

// SignedTriAreas returns the signed area of every triangle of the mesh
func SignedTriAreas(V []element.Point, F []element.Triangle) []float64 {
	areas := make([]float64, len(F))
	for k, f := range F {
		areas[k] = TriSignedArea(V[f[0]], V[f[1]], V[f[2]])
	}
	return areas
}

// MinSignedMeshArea returns the smallest signed triangle area. A negative
// value means at least one triangle is flipped. An empty mesh returns +Inf.
func MinSignedMeshArea(V []element.Point, F []element.Triangle) float64 {
	if len(F) == 0 {
		return math.Inf(1)
	}
	return floats.Min(SignedTriAreas(V, F))
}

// TotalSignedMeshArea sums signed triangle areas; flipped triangles cancel
// against the rest
func TotalSignedMeshArea(V []element.Point, F []element.Triangle) float64 {
	return floats.Sum(SignedTriAreas(V, F))
}

// TotalSignedArea computes the area enclosed by a set of directed edges with
// the shoelace formula. The edges are normally the boundary loop(s) of a mesh.
func TotalSignedArea(V []element.Point, edges []element.Edge) float64 {
	var area float64
	for _, e := range edges {
		area += r2.Cross(V[e[0]], V[e[1]])
	}
	return area / 2
}

// TotalSignedAreaWithGradient returns TotalSignedArea and adds ∂area/∂v into
// column v of dAdV, a [2 × len(V)] accumulator. dAdV is not reset.
func TotalSignedAreaWithGradient(V []element.Point, edges []element.Edge, dAdV *mat.Dense) float64 {
	var area float64
	for _, e := range edges {
		i, j := e[0], e[1]
		area += r2.Cross(V[i], V[j])
		addColumn2(dAdV, i, r2.Vec{X: 0.5 * V[j].Y, Y: -0.5 * V[j].X})
		addColumn2(dAdV, j, r2.Vec{X: -0.5 * V[i].Y, Y: 0.5 * V[i].X})
	}
	return area / 2
}

// TotalSignedMeshAreaWithGradient returns TotalSignedMeshArea and adds the
// gradient of the total into dAdV. Each corner of a triangle receives half of
// the opposite edge rotated a quarter turn.
func TotalSignedMeshAreaWithGradient(V []element.Point, F []element.Triangle, dAdV *mat.Dense) float64 {
	var area float64
	for _, f := range F {
		p1, p2, p3 := V[f[0]], V[f[1]], V[f[2]]
		area += TriSignedArea(p1, p2, p3)
		addColumn2(dAdV, f[0], r2.Scale(0.5, angle.Rotate90(r2.Sub(p3, p2))))
		addColumn2(dAdV, f[1], r2.Scale(0.5, angle.Rotate90(r2.Sub(p1, p3))))
		addColumn2(dAdV, f[2], r2.Scale(0.5, angle.Rotate90(r2.Sub(p2, p1))))
	}
	return area
}

// TotalUnsignedArea sums the unsigned (Heron) areas of all triangles, so
// mixed orientations do not cancel
func TotalUnsignedArea(V []element.Point, F []element.Triangle) float64 {
	var area float64
	for _, d := range SquaredEdgeLengths(V, F) {
		area += HeronTriArea(d[0], d[1], d[2])
	}
	return area
}

// TotalUnsignedArea3D is TotalUnsignedArea for triangles embedded in space
func TotalUnsignedArea3D(V []element.Point3D, F []element.Triangle) float64 {
	var area float64
	for _, d := range SquaredEdgeLengths3D(V, F) {
		area += HeronTriArea(d[0], d[1], d[2])
	}
	return area
}

func addColumn2(m *mat.Dense, j int, v r2.Vec) {
	m.Set(0, j, m.At(0, j)+v.X)
	m.Set(1, j, m.At(1, j)+v.Y)
}
