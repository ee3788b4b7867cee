package geometry

import (
	"math"

	"github.com/notargets/MeshMap/element"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// SquaredEdgeLengths returns, for every triangle (v1,v2,v3), the squared
// lengths |v2-v3|², |v3-v1|², |v1-v2|², i.e. of the edge opposite each corner
func SquaredEdgeLengths(V []element.Point, F []element.Triangle) [][3]float64 {
	D := make([][3]float64, len(F))
	for k, f := range F {
		v1, v2, v3 := V[f[0]], V[f[1]], V[f[2]]
		D[k] = [3]float64{
			r2.Norm2(r2.Sub(v2, v3)),
			r2.Norm2(r2.Sub(v3, v1)),
			r2.Norm2(r2.Sub(v1, v2)),
		}
	}
	return D
}

// SquaredEdgeLengths3D is SquaredEdgeLengths for triangles embedded in space
func SquaredEdgeLengths3D(V []element.Point3D, F []element.Triangle) [][3]float64 {
	D := make([][3]float64, len(F))
	for k, f := range F {
		v1, v2, v3 := V[f[0]], V[f[1]], V[f[2]]
		D[k] = [3]float64{
			r3.Norm2(r3.Sub(v2, v3)),
			r3.Norm2(r3.Sub(v3, v1)),
			r3.Norm2(r3.Sub(v1, v2)),
		}
	}
	return D
}

// HeronTriArea computes a triangle area from its three squared edge lengths,
// given in any order. The lengths are sorted so that a >= b >= c and fed to
// the cancellation-safe arrangement of Heron's formula; round-off that drives
// the product negative on a degenerate triangle is clipped by the abs.
func HeronTriArea(d1, d2, d3 float64) float64 {
	var a, b, c float64
	if d1 > d2 {
		a, b = d1, d2
	} else {
		a, b = d2, d1
	}
	c = d3
	if d3 > b {
		c = b
		b = d3
		if d3 > a {
			b = a
			a = d3
		}
	}

	a = math.Sqrt(a)
	b = math.Sqrt(b)
	c = math.Sqrt(c)

	return 0.25 * math.Sqrt(math.Abs((a+(b+c))*(c-(a-b))*(c+(a-b))*(a+(b-c))))
}

// TriAspectRatio computes abc / (8(s-a)(s-b)(s-c)) from squared edge lengths.
// It is 1 for an equilateral triangle and +Inf for a degenerate one.
func TriAspectRatio(d1, d2, d3 float64) float64 {
	a := math.Sqrt(d1)
	b := math.Sqrt(d2)
	c := math.Sqrt(d3)
	s := (a + b + c) / 2
	if s-a == 0 || s-b == 0 || s-c == 0 {
		return math.Inf(1)
	}
	// Product of ratios keeps the intermediate values in range
	return (a / (s - a)) * (b / (s - b)) * (c / (s - c)) / 8
}

// TriAspectRatios returns the aspect ratio of every triangle of the mesh
func TriAspectRatios(V []element.Point, F []element.Triangle) []float64 {
	D := SquaredEdgeLengths(V, F)
	ratios := make([]float64, len(D))
	for k, d := range D {
		ratios[k] = TriAspectRatio(d[0], d[1], d[2])
	}
	return ratios
}
