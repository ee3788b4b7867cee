package topology

import (
	"github.com/notargets/MeshMap/element"
)

type faceOwner struct {
	elem int
	face int
}

// TetNeighbors builds element-to-element and element-to-face connectivity by
// matching each half-face with its reflection. EToE[k][f] is the element
// across face f of element k and EToF[k][f] the neighbor's local face. A
// boundary face connects to itself (element k, face f). Faces are numbered as
// in element.TetHalfFaces.
func TetNeighbors(T []element.Tetrahedron) (EToE, EToF [][4]int) {
	owners := make(map[element.Triangle]faceOwner, element.Tet.Properties().NFaces*len(T))
	for k, t := range T {
		for f, hf := range t.HalfFaces() {
			owners[Canonical(hf)] = faceOwner{elem: k, face: f}
		}
	}

	EToE = make([][4]int, len(T))
	EToF = make([][4]int, len(T))
	for k, t := range T {
		for f, hf := range t.HalfFaces() {
			// Self-connection by default
			EToE[k][f], EToF[k][f] = k, f
			if nb, ok := owners[Opposite(hf)]; ok {
				EToE[k][f], EToF[k][f] = nb.elem, nb.face
			}
		}
	}
	return
}

// NumBoundaryFaces counts the self-connected faces of an EToE table
func NumBoundaryFaces(EToE [][4]int) (n int) {
	for k, faces := range EToE {
		for _, nb := range faces {
			if nb == k {
				n++
			}
		}
	}
	return
}
