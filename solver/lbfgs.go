package solver

import (
	"fmt"

	"github.com/notargets/MeshMap/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// LBFGS runs gonum's limited memory BFGS with the Engine deciding
// stagnation and injectivity. Gtol is compared against the infinity norm of
// the gradient, as gonum does.
type LBFGS struct {
	*Engine
	Store int // Number of stored correction pairs, 0 uses gonum's default
}

// NewLBFGS returns a solver using gonum's default history size
func NewLBFGS(cfg Config) *LBFGS {
	return &LBFGS{Engine: NewEngine(cfg)}
}

// Optimize minimizes f from x0. NumIter counts accepted steps; the initial
// location is not one.
func (s *LBFGS) Optimize(f Energy, x0 []float64) error {
	if err := checkStart(s.Config, x0); err != nil {
		return err
	}
	s.Reset()
	energy := f.Value(x0)
	s.start(x0, energy)
	if !isFinite(energy) {
		utils.Logger().Warn("non-finite initial energy", "energy", energy)
		s.Stop(Failure)
		return nil
	}
	if s.IterationsExhausted() {
		s.Stop(MaxIterReached)
		return nil
	}

	problem := optimize.Problem{
		Func: f.Value,
		Grad: func(grad, x []float64) {
			f.ValueGradient(x, grad)
		},
	}
	// gonum counts the initial location as a major iteration
	settings := &optimize.Settings{
		GradientThreshold: s.Gtol,
		MajorIterations:   s.MaxIter + 1,
		Converger:         newEngineConverger(s.Engine, x0, energy),
	}
	result, err := optimize.Minimize(problem, x0, settings, &optimize.LBFGS{Store: s.Store})
	if result == nil {
		s.Stop(Failure)
		return fmt.Errorf("lbfgs: %w", err)
	}
	if err != nil {
		utils.Logger().Warn("lbfgs terminated with error", "status", result.Status, "err", err)
	}
	s.start(result.X, result.F)
	s.iter = max(result.Stats.MajorIterations-1, 0)
	s.Stop(stopTypeFromStatus(result.Status))
	return nil
}

// engineConverger feeds each major iteration of a gonum method to an Engine
type engineConverger struct {
	e *Engine
	x []float64
	f float64
}

func newEngineConverger(e *Engine, x0 []float64, f0 float64) *engineConverger {
	x := make([]float64, len(x0))
	copy(x, x0)
	return &engineConverger{e: e, x: x, f: f0}
}

func (c *engineConverger) Init(int) {}

func (c *engineConverger) Converged(loc *optimize.Location) optimize.Status {
	// The initial location is not an iteration
	if loc.F == c.f && floats.Equal(loc.X, c.x) {
		return optimize.NotTerminated
	}
	stagnation, stagnant := c.e.IsStagnant(c.f, loc.F, floats.Norm(c.x, 2),
		floats.Distance(loc.X, c.x, 2))
	c.e.accept(loc.X, loc.F)
	copy(c.x, loc.X)
	c.f = loc.F
	switch {
	case c.e.CheckInjectivity(loc.X):
		c.e.Stop(InjectivityViolated)
		return optimize.MethodConverge
	case stagnant:
		c.e.Stop(stagnation)
		return statusFromStopType(stagnation)
	}
	return optimize.NotTerminated
}

func statusFromStopType(t StopType) optimize.Status {
	switch t {
	case FtolReached:
		return optimize.FunctionConvergence
	case XtolReached:
		return optimize.StepConvergence
	default:
		return optimize.MethodConverge
	}
}

func stopTypeFromStatus(st optimize.Status) StopType {
	switch st {
	case optimize.GradientThreshold:
		return GtolReached
	case optimize.FunctionConvergence:
		return FtolReached
	case optimize.StepConvergence:
		return XtolReached
	case optimize.IterationLimit:
		return MaxIterReached
	case optimize.Success, optimize.MethodConverge:
		return Success
	default:
		return Failure
	}
}
