package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// zeroTols disables every stagnation test
func zeroTols() Config {
	cfg := DefaultConfig()
	cfg.XtolAbs, cfg.XtolRel, cfg.FtolAbs, cfg.FtolRel = 0, 0, 0, 0
	return cfg
}

func TestIsStagnant(t *testing.T) {
	t.Run("absolute energy change", func(t *testing.T) {
		e := NewEngine(DefaultConfig())
		st, ok := e.IsStagnant(1, 1+1e-10, 1, 1)
		assert.True(t, ok)
		assert.Equal(t, FtolReached, st)
	})
	t.Run("relative energy change", func(t *testing.T) {
		cfg := zeroTols()
		cfg.FtolRel = 1e-8
		e := NewEngine(cfg)
		st, ok := e.IsStagnant(1e6, 1e6+1e-3, 1, 1)
		assert.True(t, ok)
		assert.Equal(t, FtolReached, st)
	})
	t.Run("relative energy skipped at zero", func(t *testing.T) {
		cfg := zeroTols()
		cfg.FtolRel = 1
		e := NewEngine(cfg)
		_, ok := e.IsStagnant(0, 1e-12, 1, 1)
		assert.False(t, ok)
	})
	t.Run("energy before step", func(t *testing.T) {
		e := NewEngine(DefaultConfig())
		st, ok := e.IsStagnant(1, 1, 1, 0)
		assert.True(t, ok)
		assert.Equal(t, FtolReached, st)
	})
	t.Run("absolute step", func(t *testing.T) {
		e := NewEngine(DefaultConfig())
		st, ok := e.IsStagnant(1, 2, 1, 1e-9)
		assert.True(t, ok)
		assert.Equal(t, XtolReached, st)
	})
	t.Run("relative step", func(t *testing.T) {
		cfg := zeroTols()
		cfg.XtolRel = 1e-8
		e := NewEngine(cfg)
		_, ok := e.IsStagnant(1, 2, 100, 1e-5)
		assert.False(t, ok)
		st, ok := e.IsStagnant(1, 2, 100, 1e-7)
		assert.True(t, ok)
		assert.Equal(t, XtolReached, st)
	})
	t.Run("relative step skipped at origin", func(t *testing.T) {
		cfg := zeroTols()
		cfg.XtolRel = 1e10
		e := NewEngine(cfg)
		st, ok := e.IsStagnant(1, 2, 0, 1e-3)
		assert.False(t, ok)
		assert.Equal(t, Unknown, st)
	})
}

func TestEngineReset(t *testing.T) {
	e := NewEngine(DefaultConfig())
	assert.Equal(t, Unknown, e.StopType())
	assert.Equal(t, 0, e.NumIter())
	assert.True(t, math.IsInf(e.Energy(), 1))
	assert.Empty(t, e.X())

	e.start([]float64{1, 2}, 5)
	e.accept([]float64{3, 4}, 2)
	require.True(t, e.Stop(FtolReached))
	assert.Equal(t, []float64{3, 4}, e.X())
	assert.Equal(t, 1, e.NumIter())

	e.Reset()
	assert.Equal(t, Unknown, e.StopType())
	assert.Equal(t, 0, e.NumIter())
	assert.True(t, math.IsInf(e.Energy(), 1))
	assert.Empty(t, e.X())
	assert.False(t, e.Done())
}

func TestEngineStopWriteOnce(t *testing.T) {
	e := NewEngine(DefaultConfig())
	assert.False(t, e.Stop(Unknown))
	assert.False(t, e.Done())
	assert.True(t, e.Stop(GtolReached))
	assert.False(t, e.Stop(Failure))
	assert.Equal(t, GtolReached, e.StopType())
	assert.True(t, e.Done())
}

func TestEngineXIsCopy(t *testing.T) {
	e := NewEngine(DefaultConfig())
	x := []float64{1, 2}
	e.start(x, 0)
	x[0] = 9
	got := e.X()
	got[1] = 9
	assert.Equal(t, []float64{1, 2}, e.X())
}

type countingChecker struct {
	calls     int
	injective bool
}

func (c *countingChecker) Injective([]float64) bool {
	c.calls++
	return c.injective
}

func TestCheckInjectivity(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(cfg)
	checker := &countingChecker{}
	e.SetInjectivityChecker(checker)
	assert.False(t, e.CheckInjectivity(nil), "disabled")
	assert.Equal(t, 0, checker.calls)

	cfg.StopAtInjectivity = true
	cfg.InjectivityInterval = 3
	e = NewEngine(cfg)
	assert.False(t, e.CheckInjectivity(nil), "no checker")
	e.SetInjectivityChecker(checker)
	var violations []int
	for i := 1; i <= 7; i++ {
		e.accept(nil, 0)
		if e.CheckInjectivity(nil) {
			violations = append(violations, e.NumIter())
		}
	}
	assert.Equal(t, []int{3, 6}, violations)
	assert.Equal(t, 2, checker.calls)
}

func TestLimits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIter = 2
	e := NewEngine(cfg)
	assert.True(t, e.GradientConverged(1e-9))
	assert.False(t, e.GradientConverged(1e-8))
	assert.False(t, e.IterationsExhausted())
	e.accept(nil, 0)
	e.accept(nil, 0)
	assert.True(t, e.IterationsExhausted())
}

func TestStopTypeString(t *testing.T) {
	names := map[StopType]string{
		Unknown:             "Unknown",
		XtolReached:         "XtolReached",
		FtolReached:         "FtolReached",
		GtolReached:         "GtolReached",
		MaxIterReached:      "MaxIterReached",
		InjectivityViolated: "InjectivityViolated",
		Failure:             "Failure",
		Success:             "Success",
		StopType(42):        "Invalid",
	}
	for st, name := range names {
		assert.Equal(t, name, st.String())
	}
}
