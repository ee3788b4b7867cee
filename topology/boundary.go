package topology

import (
	"sort"

	"github.com/notargets/MeshMap/element"
)

// The extractors below assume a manifold, consistently oriented mesh: every
// interior edge (face) is claimed by exactly two elements, once in each
// direction. Nothing is validated; on other input the result is undefined.

// BoundaryEdges returns the directed half-edges of F that have no opposite
// half-edge, sorted lexicographically
func BoundaryEdges(F []element.Triangle) []element.Edge {
	halfEdges := make(map[element.Edge]struct{}, element.Tri.Properties().NEdges*len(F))
	for _, f := range F {
		for _, he := range f.HalfEdges() {
			halfEdges[he] = struct{}{}
		}
	}

	boundary := make([]element.Edge, 0)
	for he := range halfEdges {
		if _, ok := halfEdges[he.Reverse()]; !ok {
			boundary = append(boundary, he)
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		return lessInts(boundary[i][:], boundary[j][:])
	})
	return boundary
}

// BoundaryVertices returns the sorted, distinct endpoints of BoundaryEdges
func BoundaryVertices(F []element.Triangle) []int {
	var verts []int
	for _, e := range BoundaryEdges(F) {
		verts = append(verts, e[0], e[1])
	}
	return uniqueSorted(verts)
}

// BoundaryTriangles returns the half-faces of T without an opposite
// half-face. Each one is returned rotated so that its smallest vertex index
// comes first, and the list is sorted lexicographically.
func BoundaryTriangles(T []element.Tetrahedron) []element.Triangle {
	halfFaces := make(map[element.Triangle]struct{}, element.Tet.Properties().NFaces*len(T))
	for _, t := range T {
		for _, hf := range t.HalfFaces() {
			halfFaces[Canonical(hf)] = struct{}{}
		}
	}

	boundary := make([]element.Triangle, 0)
	for hf := range halfFaces {
		if _, ok := halfFaces[Opposite(hf)]; !ok {
			boundary = append(boundary, hf)
		}
	}
	sort.Slice(boundary, func(i, j int) bool {
		return lessInts(boundary[i][:], boundary[j][:])
	})
	return boundary
}

// BoundaryVerticesTet returns the sorted, distinct vertices of
// BoundaryTriangles
func BoundaryVerticesTet(T []element.Tetrahedron) []int {
	var verts []int
	for _, tri := range BoundaryTriangles(T) {
		verts = append(verts, tri[0], tri[1], tri[2])
	}
	return uniqueSorted(verts)
}

// BoundaryMask flags the listed vertices in a slice of length n
func BoundaryMask(n int, vertices []int) []bool {
	mask := make([]bool, n)
	for _, v := range vertices {
		mask[v] = true
	}
	return mask
}

// Canonical rotates a half-face so its smallest vertex index is first. The
// three cyclic rotations of a half-face share one canonical form.
func Canonical(t element.Triangle) element.Triangle {
	m := 0
	if t[1] < t[m] {
		m = 1
	}
	if t[2] < t[m] {
		m = 2
	}
	return element.Triangle{t[m], t[(m+1)%3], t[(m+2)%3]}
}

// Opposite returns the canonical form of the reflected half-face, the key the
// neighboring element across this face produces
func Opposite(t element.Triangle) element.Triangle {
	return Canonical(element.Triangle{t[0], t[2], t[1]})
}

func lessInts(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

func uniqueSorted(v []int) []int {
	sort.Ints(v)
	out := make([]int, 0, len(v))
	for i, x := range v {
		if i == 0 || x != v[i-1] {
			out = append(out, x)
		}
	}
	return out
}
