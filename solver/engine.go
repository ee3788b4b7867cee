package solver

import (
	"context"
	"log/slog"
	"math"

	"github.com/notargets/MeshMap/utils"
)

// InjectivityChecker decides whether a flattened mesh state is locally
// injective. winding.TriMeshChecker and winding.TetMeshChecker satisfy it.
type InjectivityChecker interface {
	Injective(x []float64) bool
}

// Engine is the convergence state shared by all optimizers. Optimizers embed
// it, feed it accepted iterates and ask it whether to stop.
type Engine struct {
	Config

	checker InjectivityChecker
	x       []float64
	energy  float64
	iter    int
	stop    StopType
}

// NewEngine returns an engine in its reset state
func NewEngine(cfg Config) *Engine {
	e := &Engine{Config: cfg}
	e.Reset()
	return e
}

// Reset returns the engine to its initial state: no iterate, energy +Inf,
// iteration 0 and stop type Unknown. The checker and Config are kept.
func (e *Engine) Reset() {
	e.x = e.x[:0]
	e.energy = math.Inf(1)
	e.iter = 0
	e.stop = Unknown
}

// SetInjectivityChecker sets the checker consulted by CheckInjectivity
func (e *Engine) SetInjectivityChecker(c InjectivityChecker) {
	e.checker = c
}

// IsStagnant applies the stagnation tests to a step from energy to
// energyNext of length stepNorm, taken from an iterate of norm xNorm. The
// energy tests run before the step tests and the first one satisfied wins.
func (e *Engine) IsStagnant(energy, energyNext, xNorm, stepNorm float64) (StopType, bool) {
	diff := math.Abs(energyNext - energy)
	switch {
	case diff < e.FtolAbs:
		return FtolReached, true
	case energy != 0 && math.Abs((energyNext-energy)/energy) < e.FtolRel:
		return FtolReached, true
	case stepNorm < e.XtolAbs:
		return XtolReached, true
	case xNorm != 0 && stepNorm/xNorm < e.XtolRel:
		return XtolReached, true
	}
	return Unknown, false
}

// GradientConverged reports whether gradNorm is below Gtol
func (e *Engine) GradientConverged(gradNorm float64) bool {
	return gradNorm < e.Gtol
}

// IterationsExhausted reports whether MaxIter iterations have been accepted
func (e *Engine) IterationsExhausted() bool {
	return e.iter >= e.MaxIter
}

// CheckInjectivity reports whether x breaks injectivity. It is false when
// StopAtInjectivity is off, no checker is set, or the current iteration is
// off the InjectivityInterval cadence.
func (e *Engine) CheckInjectivity(x []float64) bool {
	if !e.StopAtInjectivity || e.checker == nil {
		return false
	}
	if e.InjectivityInterval > 1 && e.iter%e.InjectivityInterval != 0 {
		return false
	}
	return !e.checker.Injective(x)
}

// Stop moves the engine into terminal state t. Only the first terminal
// transition of a run takes effect; Stop reports whether it was this one.
func (e *Engine) Stop(t StopType) bool {
	if e.stop.Terminal() || !t.Terminal() {
		return false
	}
	e.stop = t
	level := slog.LevelInfo
	if t == Failure {
		level = slog.LevelWarn
	}
	utils.Logger().Log(context.Background(), level, "solver stopped",
		"reason", t.String(), "iter", e.iter, "energy", e.energy)
	return true
}

// Done reports whether the run has reached a terminal state
func (e *Engine) Done() bool {
	return e.stop.Terminal()
}

// start records the initial iterate without counting an iteration
func (e *Engine) start(x []float64, energy float64) {
	e.x = append(e.x[:0], x...)
	e.energy = energy
}

// accept records an accepted iterate and counts the iteration
func (e *Engine) accept(x []float64, energy float64) {
	e.x = append(e.x[:0], x...)
	e.energy = energy
	e.iter++
	utils.Logger().Debug("solver iteration", "iter", e.iter, "energy", energy)
}

// X returns a copy of the current iterate
func (e *Engine) X() []float64 {
	x := make([]float64, len(e.x))
	copy(x, e.x)
	return x
}

// Energy returns the energy of the current iterate, +Inf before a run
func (e *Engine) Energy() float64 { return e.energy }

// StopType returns why the run ended, Unknown while it has not
func (e *Engine) StopType() StopType { return e.stop }

// NumIter returns the number of accepted iterations
func (e *Engine) NumIter() int { return e.iter }
