package geometry

import (
	"math"

	"github.com/notargets/MeshMap/element"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// TetSignedVolume returns the volume of tetrahedron (p1,p2,p3,p4), positive
// when (p2-p1)×(p3-p1)·(p4-p1) > 0
func TetSignedVolume(p1, p2, p3, p4 element.Point3D) float64 {
	return (p4.X*(p3.Y*(p1.Z-p2.Z)+p2.Y*(p3.Z-p1.Z)+p1.Y*(p2.Z-p3.Z)) +
		p3.X*(p4.Y*(p2.Z-p1.Z)+p1.Y*(p4.Z-p2.Z)+p2.Y*(p1.Z-p4.Z)) +
		p1.X*(p4.Y*(p3.Z-p2.Z)+p2.Y*(p4.Z-p3.Z)+p3.Y*(p2.Z-p4.Z)) +
		p2.X*(p4.Y*(p1.Z-p3.Z)+p3.Y*(p4.Z-p1.Z)+p1.Y*(p3.Z-p4.Z))) / 6
}

// TetSignedVolumeWithGradient returns the signed volume and its derivative
// with respect to each of the four corners. Each corner's derivative is the
// cross product of two edges of the opposite face, over 6.
func TetSignedVolumeWithGradient(p1, p2, p3, p4 element.Point3D) (vol float64, grad [4]r3.Vec) {
	e12 := r3.Sub(p2, p1)
	e13 := r3.Sub(p3, p1)
	e14 := r3.Sub(p4, p1)
	e23 := r3.Sub(p3, p2)
	e24 := r3.Sub(p4, p2)

	grad[0] = r3.Scale(1./6, r3.Cross(e24, e23))
	grad[1] = r3.Scale(1./6, r3.Cross(e13, e14))
	grad[2] = r3.Scale(1./6, r3.Cross(e14, e12))
	grad[3] = r3.Scale(1./6, r3.Cross(e12, e13))

	vol = r3.Dot(r3.Cross(e12, e13), e14) / 6
	return
}

// SignedTetVolumes returns the signed volume of every tetrahedron
func SignedTetVolumes(V []element.Point3D, T []element.Tetrahedron) []float64 {
	vols := make([]float64, len(T))
	for k, t := range T {
		vols[k] = TetSignedVolume(V[t[0]], V[t[1]], V[t[2]], V[t[3]])
	}
	return vols
}

// MinSignedMeshVolume returns the smallest signed tetrahedron volume, +Inf for
// an empty mesh. Negative means at least one element is inverted.
func MinSignedMeshVolume(V []element.Point3D, T []element.Tetrahedron) float64 {
	if len(T) == 0 {
		return math.Inf(1)
	}
	return floats.Min(SignedTetVolumes(V, T))
}

// TotalSignedMeshVolume sums signed tetrahedron volumes; inverted elements
// cancel against the rest
func TotalSignedMeshVolume(V []element.Point3D, T []element.Tetrahedron) float64 {
	return floats.Sum(SignedTetVolumes(V, T))
}

// TotalUnsignedVolume sums absolute tetrahedron volumes
func TotalUnsignedVolume(V []element.Point3D, T []element.Tetrahedron) float64 {
	var vol float64
	for _, v := range SignedTetVolumes(V, T) {
		vol += math.Abs(v)
	}
	return vol
}

// TotalSignedMeshVolumeWithGradient returns TotalSignedMeshVolume and adds the
// gradient of the total into dVdV, a [3 × len(V)] accumulator that is not
// reset
func TotalSignedMeshVolumeWithGradient(V []element.Point3D, T []element.Tetrahedron, dVdV *mat.Dense) float64 {
	var vol float64
	for _, t := range T {
		v, grad := TetSignedVolumeWithGradient(V[t[0]], V[t[1]], V[t[2]], V[t[3]])
		vol += v
		for c := 0; c < 4; c++ {
			addColumn3(dVdV, t[c], grad[c])
		}
	}
	return vol
}

// TotalSignedVolume computes the volume enclosed by a closed, consistently
// oriented triangle surface, summing the tetrahedra each triangle forms with
// the origin
func TotalSignedVolume(V []element.Point3D, triangles []element.Triangle) float64 {
	return TotalSignedVolumeAbout(V, triangles, r3.Vec{})
}

// TotalSignedVolumeAbout is TotalSignedVolume with the apex of every
// tetrahedron at origin. On a closed surface the result does not depend on
// origin.
func TotalSignedVolumeAbout(V []element.Point3D, triangles []element.Triangle, origin element.Point3D) float64 {
	var vol float64
	for _, f := range triangles {
		vol += TetSignedVolume(V[f[0]], V[f[1]], V[f[2]], origin)
	}
	return vol
}

// TotalSignedVolumeWithGradient returns TotalSignedVolume and adds
// ∂volume/∂v into column v of dVdV. dVdV is not reset.
func TotalSignedVolumeWithGradient(V []element.Point3D, triangles []element.Triangle, dVdV *mat.Dense) float64 {
	var (
		vol    float64
		origin r3.Vec
	)
	for _, f := range triangles {
		v, grad := TetSignedVolumeWithGradient(V[f[0]], V[f[1]], V[f[2]], origin)
		vol += v
		// The origin is fixed, its column is dropped
		for c := 0; c < 3; c++ {
			addColumn3(dVdV, f[c], grad[c])
		}
	}
	return vol
}

func addColumn3(m *mat.Dense, j int, v r3.Vec) {
	m.Set(0, j, m.At(0, j)+v.X)
	m.Set(1, j, m.At(1, j)+v.Y)
	m.Set(2, j, m.At(2, j)+v.Z)
}
