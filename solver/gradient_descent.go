package solver

import (
	"github.com/notargets/MeshMap/utils"
	"gonum.org/v1/gonum/floats"
)

// GradientDescent is steepest descent with Armijo backtracking
type GradientDescent struct {
	*Engine
	InitialStep   float64 // First trial step length of each line search
	Shrink        float64 // Step reduction per backtrack, in (0,1)
	Armijo        float64 // Sufficient decrease constant, in (0,1)
	MaxLineSearch int     // Backtracks before the line search fails
}

// NewGradientDescent returns a solver with unit initial step, halving
// backtracks and Armijo constant 1e-4
func NewGradientDescent(cfg Config) *GradientDescent {
	return &GradientDescent{
		Engine:        NewEngine(cfg),
		InitialStep:   1,
		Shrink:        0.5,
		Armijo:        1e-4,
		MaxLineSearch: 60,
	}
}

// Optimize minimizes f from x0. Each iteration checks, in order, the
// iteration budget, the gradient norm, the line search, injectivity of the
// accepted iterate and then stagnation of the step.
func (gd *GradientDescent) Optimize(f Energy, x0 []float64) error {
	if err := checkStart(gd.Config, x0); err != nil {
		return err
	}
	gd.Reset()
	log := utils.Logger()
	n := len(x0)
	x := make([]float64, n)
	copy(x, x0)
	grad := make([]float64, n)
	energy := f.ValueGradient(x, grad)
	gd.start(x, energy)
	if !isFinite(energy) || !allFinite(grad) {
		log.Warn("non-finite initial energy or gradient", "energy", energy)
		gd.Stop(Failure)
		return nil
	}

	xNext := make([]float64, n)
	step := make([]float64, n)
	for !gd.Done() {
		if gd.IterationsExhausted() {
			gd.Stop(MaxIterReached)
			break
		}
		gNorm := floats.Norm(grad, 2)
		if gd.GradientConverged(gNorm) {
			gd.Stop(GtolReached)
			break
		}

		var (
			alpha    = gd.InitialStep
			next     float64
			accepted bool
		)
		for ls := 0; ls < gd.MaxLineSearch; ls++ {
			floats.ScaleTo(step, -alpha, grad)
			floats.AddTo(xNext, x, step)
			next = f.Value(xNext)
			if isFinite(next) && next <= energy-gd.Armijo*alpha*gNorm*gNorm {
				accepted = true
				break
			}
			alpha *= gd.Shrink
		}
		if !accepted {
			log.Warn("line search failed", "iter", gd.NumIter(), "step", alpha)
			gd.Stop(Failure)
			break
		}

		xNorm := floats.Norm(x, 2)
		stagnation, stagnant := gd.IsStagnant(energy, next, xNorm, alpha*gNorm)
		copy(x, xNext)
		energy = f.ValueGradient(x, grad)
		gd.accept(x, energy)
		switch {
		case !isFinite(energy) || !allFinite(grad):
			log.Warn("non-finite energy or gradient", "iter", gd.NumIter(), "energy", energy)
			gd.Stop(Failure)
		case gd.CheckInjectivity(x):
			gd.Stop(InjectivityViolated)
		case stagnant:
			gd.Stop(stagnation)
		}
	}
	return nil
}
