package solver

import (
	"fmt"
	"math"
)

// Energy is the functional being minimized over a flattened mesh state
type Energy interface {
	Value(x []float64) float64
	// ValueGradient overwrites grad with the gradient at x and returns the value
	ValueGradient(x, grad []float64) float64
}

// Solver is an optimization strategy sharing the Engine stopping contract.
// Optimize resets the run state before starting.
type Solver interface {
	Optimize(f Energy, x0 []float64) error
	X() []float64
	Energy() float64
	StopType() StopType
	NumIter() int
}

func checkStart(cfg Config, x0 []float64) error {
	if err := cfg.CheckInit(); err != nil {
		return err
	}
	if len(x0) == 0 {
		return fmt.Errorf("empty initial state")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func allFinite(s []float64) bool {
	for _, f := range s {
		if !isFinite(f) {
			return false
		}
	}
	return true
}
