package winding

import (
	"math"
	"testing"

	"github.com/notargets/MeshMap/element"
	"github.com/notargets/MeshMap/geometry"
	"github.com/notargets/MeshMap/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// hexDisk is a regular hexagon fanned around a center vertex (index 0)
func hexDisk() ([]element.Point, []element.Triangle) {
	V := []element.Point{{X: 0, Y: 0}}
	F := make([]element.Triangle, 0, 6)
	for k := 0; k < 6; k++ {
		a := float64(k) * math.Pi / 3
		V = append(V, element.Point{X: math.Cos(a), Y: math.Sin(a)})
		F = append(F, element.Triangle{0, 1 + k, 1 + (k+1)%6})
	}
	return V, F
}

// doubleCover fans six triangles of 120° each around vertex 0, so the ring
// wraps twice around it
func doubleCover() ([]element.Point, []element.Triangle) {
	V := []element.Point{{X: 0, Y: 0}}
	F := make([]element.Triangle, 0, 6)
	for k := 0; k < 6; k++ {
		a := float64(k) * 2 * math.Pi / 3
		r := 1.
		if k >= 3 {
			r = 2
		}
		V = append(V, element.Point{X: r * math.Cos(a), Y: r * math.Sin(a)})
		F = append(F, element.Triangle{0, 1 + k, 1 + (k+1)%6})
	}
	return V, F
}

func boundaryMask(V []element.Point, F []element.Triangle) []bool {
	return topology.BoundaryMask(len(V), topology.BoundaryVertices(F))
}

func TestVertexAngleSums(t *testing.T) {
	V, F := hexDisk()
	sums := VertexAngleSums(V, F)
	assert.InDelta(t, 2*math.Pi, sums[0], 1e-12)
	for i := 1; i < len(V); i++ {
		// Two 60° corners at each rim vertex
		assert.InDelta(t, 2*math.Pi/3, sums[i], 1e-12)
	}
}

func TestWindedInteriorVertices(t *testing.T) {
	t.Run("flat disk", func(t *testing.T) {
		V, F := hexDisk()
		assert.Empty(t, WindedInteriorVertices(V, F, boundaryMask(V, F)))
	})
	t.Run("perturbed disk", func(t *testing.T) {
		V, F := hexDisk()
		V[0] = element.Point{X: 0.3, Y: -0.2}
		assert.Empty(t, WindedInteriorVertices(V, F, boundaryMask(V, F)))
	})
	t.Run("center pulled outside", func(t *testing.T) {
		V, F := hexDisk()
		V[0] = element.Point{X: 2, Y: 0.1}
		assert.Equal(t, []int{0}, WindedInteriorVertices(V, F, boundaryMask(V, F)))
		assert.InDelta(t, 0., VertexAngleSums(V, F)[0], 1e-12)
	})
	t.Run("double cover", func(t *testing.T) {
		V, F := doubleCover()
		assert.InDelta(t, 4*math.Pi, VertexAngleSums(V, F)[0], 1e-12)
		assert.Equal(t, []int{0}, WindedInteriorVertices(V, F, boundaryMask(V, F)))
	})
	t.Run("boundary vertices skipped", func(t *testing.T) {
		V, F := doubleCover()
		allBoundary := make([]bool, len(V))
		for i := range allBoundary {
			allBoundary[i] = true
		}
		assert.Empty(t, WindedInteriorVertices(V, F, allBoundary))
	})
}

func TestTriMeshChecker(t *testing.T) {
	V, F := hexDisk()
	c, err := NewTriMeshChecker(F, len(V))
	require.NoError(t, err)
	assert.False(t, c.IsBoundary(0))
	assert.True(t, c.IsBoundary(1))

	x := element.FlattenPoints(V)
	assert.True(t, c.Injective(x))
	report, err := c.Report(x)
	require.NoError(t, err)
	assert.True(t, report.Injective())
	assert.InDelta(t, math.Sqrt(3)/4, report.MinMeasure, 1e-12)

	// Fold the center over the rim
	x[0], x[1] = 2, 0.1
	assert.False(t, c.Injective(x))
	report, err = c.Report(x)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, report.WindedVertices)
	assert.Greater(t, report.NonPositive, 0)
	assert.Less(t, report.MinMeasure, 0.)
	Vf, err := element.UnflattenPoints(x)
	require.NoError(t, err)
	assert.Equal(t, geometry.MinSignedMeshArea(Vf, F), report.MinMeasure)

	// Wrong length
	assert.False(t, c.Injective(x[:5]))
	_, err = c.Report(x[:4])
	assert.Error(t, err)

	_, err = NewTriMeshChecker([]element.Triangle{{0, 1, 7}}, 3)
	assert.Error(t, err)
}

func TestTetMeshChecker(t *testing.T) {
	V := []element.Point3D{
		{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}, {X: 0, Y: 0, Z: 1},
		{X: 1, Y: 1, Z: 1},
	}
	T := []element.Tetrahedron{{0, 1, 2, 3}, {1, 2, 3, 4}}
	c, err := NewTetMeshChecker(T, len(V))
	require.NoError(t, err)

	x := element.FlattenPoints3D(V)
	assert.True(t, c.Injective(x))

	// Push vertex 4 through the shared face
	x[12], x[13], x[14] = 0.1, 0.1, 0.1
	report, err := c.Report(x)
	require.NoError(t, err)
	assert.False(t, report.Injective())
	assert.Equal(t, 1, report.NonPositive)
	assert.False(t, c.Injective(x))

	_, err = NewTetMeshChecker([]element.Tetrahedron{{0, 1, 2, 2}}, 4)
	assert.Error(t, err)
}

func TestMeasureReport(t *testing.T) {
	report := measureReport([]float64{0.5, -0.25, 0, 2}, []int{})
	assert.Equal(t, 2, report.NonPositive)
	assert.Equal(t, -0.25, report.MinMeasure)
	assert.False(t, report.Injective())

	report = measureReport([]float64{1, 3}, []int{})
	assert.Equal(t, 0, report.NonPositive)
	assert.Equal(t, 1., report.MinMeasure)
	assert.True(t, report.Injective())
	assert.Equal(t, "winded=0 nonpositive=0 min=1.000000e+00", report.String())
}
