package winding

import (
	"math"

	"github.com/notargets/MeshMap/angle"
	"github.com/notargets/MeshMap/element"
	"gonum.org/v1/gonum/spatial/r2"
)

// VertexAngleSums adds up, per vertex, the signed interior angles of the
// triangle corners incident on it. Around an interior vertex of a locally
// injective map the sum is 2π.
func VertexAngleSums(V []element.Point, F []element.Triangle) []float64 {
	sums := make([]float64, len(V))
	for _, f := range F {
		i1, i2, i3 := f[0], f[1], f[2]
		p1, p2, p3 := V[i1], V[i2], V[i3]
		sums[i1] += angle.VectorVectorAngle(r2.Sub(p2, p1), r2.Sub(p3, p1))
		sums[i2] += angle.VectorVectorAngle(r2.Sub(p3, p2), r2.Sub(p1, p2))
		sums[i3] += angle.VectorVectorAngle(r2.Sub(p1, p3), r2.Sub(p2, p3))
	}
	return sums
}

// WindedInteriorVertices returns, in ascending order, the vertices not marked
// in isBoundary whose angle sum is not one full turn after rounding to whole
// turns. Zero turns (a fold) and several turns (an overlap) both count.
// Boundary vertices are skipped since their expected sum is not known here.
func WindedInteriorVertices(V []element.Point, F []element.Triangle, isBoundary []bool) []int {
	winded := make([]int, 0)
	for i, sum := range VertexAngleSums(V, F) {
		if !isBoundary[i] && math.Round(sum/(2*math.Pi)) != 1 {
			winded = append(winded, i)
		}
	}
	return winded
}
