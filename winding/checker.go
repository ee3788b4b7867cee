package winding

import (
	"fmt"

	"github.com/notargets/MeshMap/element"
	"github.com/notargets/MeshMap/geometry"
	"github.com/notargets/MeshMap/topology"
	"gonum.org/v1/gonum/floats"
)

// InjectivityReport summarizes why a mesh state is or is not locally
// injective
type InjectivityReport struct {
	WindedVertices []int   // Interior vertices whose angle sum is not 2π (2D only)
	NonPositive    int     // Elements with signed area/volume <= 0
	MinMeasure     float64 // Smallest signed element area/volume
}

func (r InjectivityReport) Injective() bool {
	return len(r.WindedVertices) == 0 && r.NonPositive == 0
}

func (r InjectivityReport) String() string {
	return fmt.Sprintf("winded=%d nonpositive=%d min=%.6e",
		len(r.WindedVertices), r.NonPositive, r.MinMeasure)
}

// TriMeshChecker tests planar triangle mesh states for local injectivity.
// Connectivity and boundary classification are fixed at construction; only
// vertex positions change between calls.
type TriMeshChecker struct {
	F          []element.Triangle
	NumVerts   int
	isBoundary []bool
}

// NewTriMeshChecker validates F against nVerts vertices and classifies the
// boundary vertices once
func NewTriMeshChecker(F []element.Triangle, nVerts int) (*TriMeshChecker, error) {
	msh := element.TriMesh{V: make([]element.Point, nVerts), F: F}
	if err := msh.Validate(); err != nil {
		return nil, fmt.Errorf("injectivity checker: %w", err)
	}
	return &TriMeshChecker{
		F:          F,
		NumVerts:   nVerts,
		isBoundary: topology.BoundaryMask(nVerts, topology.BoundaryVertices(F)),
	}, nil
}

// IsBoundary reports whether vertex i lies on the mesh boundary
func (c *TriMeshChecker) IsBoundary(i int) bool {
	return c.isBoundary[i]
}

// Report evaluates the state vector x (x0,y0,x1,y1,...)
func (c *TriMeshChecker) Report(x []float64) (InjectivityReport, error) {
	if len(x) != int(element.Tri.Properties().Dimensions)*c.NumVerts {
		return InjectivityReport{}, fmt.Errorf("state vector length %d does not match %d vertices",
			len(x), c.NumVerts)
	}
	V, err := element.UnflattenPoints(x)
	if err != nil {
		return InjectivityReport{}, err
	}
	return measureReport(geometry.SignedTriAreas(V, c.F),
		WindedInteriorVertices(V, c.F, c.isBoundary)), nil
}

// Injective reports false for a malformed state vector
func (c *TriMeshChecker) Injective(x []float64) bool {
	report, err := c.Report(x)
	return err == nil && report.Injective()
}

// TetMeshChecker tests tetrahedral mesh states for inverted or flat elements.
// The angle-sum winding test is planar and does not apply.
type TetMeshChecker struct {
	T        []element.Tetrahedron
	NumVerts int
}

// NewTetMeshChecker validates T against nVerts vertices
func NewTetMeshChecker(T []element.Tetrahedron, nVerts int) (*TetMeshChecker, error) {
	msh := element.TetMesh{V: make([]element.Point3D, nVerts), T: T}
	if err := msh.Validate(); err != nil {
		return nil, fmt.Errorf("injectivity checker: %w", err)
	}
	return &TetMeshChecker{T: T, NumVerts: nVerts}, nil
}

// Report evaluates the state vector x (x0,y0,z0,x1,...)
func (c *TetMeshChecker) Report(x []float64) (InjectivityReport, error) {
	if len(x) != int(element.Tet.Properties().Dimensions)*c.NumVerts {
		return InjectivityReport{}, fmt.Errorf("state vector length %d does not match %d vertices",
			len(x), c.NumVerts)
	}
	V, err := element.UnflattenPoints3D(x)
	if err != nil {
		return InjectivityReport{}, err
	}
	return measureReport(geometry.SignedTetVolumes(V, c.T), []int{}), nil
}

// Injective reports false for a malformed state vector
func (c *TetMeshChecker) Injective(x []float64) bool {
	report, err := c.Report(x)
	return err == nil && report.Injective()
}

// measureReport counts the non-positive signed measures. The checkers
// validate that measures is not empty.
func measureReport(measures []float64, winded []int) InjectivityReport {
	report := InjectivityReport{
		WindedVertices: winded,
		MinMeasure:     floats.Min(measures),
	}
	for _, m := range measures {
		if m <= 0 {
			report.NonPositive++
		}
	}
	return report
}
