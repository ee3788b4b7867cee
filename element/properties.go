package element

// ElementProperties contains metadata describing an element type
type ElementProperties struct {
	ShortName  string         // Abbreviated name (e.g., "Tet")
	NVp        int            // Number of vertices
	NFaces     int            // Number of faces in each element
	NEdges     int            // Number of edges in each element
	Dimensions Dimensionality // Coordinates per vertex in the state vector
}

// Local half-edges of a triangle (v0,v1,v2), cyclic
var TriHalfEdges = [3][2]int{
	{0, 1},
	{1, 2},
	{2, 0},
}

// Local half-faces of a tetrahedron (v0,v1,v2,v3). Two tetrahedra sharing a
// face produce half-faces that are reflections of one another, never rotations.
var TetHalfFaces = [4][3]int{
	{3, 2, 1}, // Face 0, opposite v0
	{0, 2, 3}, // Face 1, opposite v1
	{0, 3, 1}, // Face 2, opposite v2
	{0, 1, 2}, // Face 3, opposite v3
}

// Properties returns the metadata of a linear element of this geometry
func (g ElementGeometry) Properties() ElementProperties {
	switch g {
	case Tri:
		return ElementProperties{
			ShortName:  "Tri",
			NVp:        3,
			NFaces:     1,
			NEdges:     3,
			Dimensions: D2,
		}
	case Tet:
		return ElementProperties{
			ShortName:  "Tet",
			NVp:        4,
			NFaces:     4,
			NEdges:     6,
			Dimensions: D3,
		}
	default:
		return ElementProperties{}
	}
}

// HalfFaces returns the four oriented half-faces of a tetrahedron in the
// fixed TetHalfFaces order
func (t Tetrahedron) HalfFaces() (faces [4]Triangle) {
	for f, lf := range TetHalfFaces {
		faces[f] = Triangle{t[lf[0]], t[lf[1]], t[lf[2]]}
	}
	return
}

// HalfEdges returns the three directed edges of a triangle
func (t Triangle) HalfEdges() (edges [3]Edge) {
	for e, le := range TriHalfEdges {
		edges[e] = Edge{t[le[0]], t[le[1]]}
	}
	return
}
