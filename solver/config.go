package solver

import (
	"fmt"

	"gopkg.in/gcfg.v1"
)

// Config holds the stopping criteria shared by all optimizers. It can be
// read from an INI file with a [solver] section:
//
//	[solver]
//	xtolabs = 1e-10
//	ftolrel = 1e-12
//	maxiter = 500
//	stopatinjectivity = true
//	injectivityinterval = 5
type Config struct {
	XtolAbs float64 // Absolute step length tolerance
	XtolRel float64 // Step length tolerance relative to |x|
	FtolAbs float64 // Absolute energy change tolerance
	FtolRel float64 // Energy change tolerance relative to |energy|
	Gtol    float64 // Gradient norm tolerance
	MaxIter int     // Iteration budget

	// Stop with InjectivityViolated as soon as an iterate is not locally
	// injective. Needs an InjectivityChecker on the engine.
	StopAtInjectivity bool
	// Check injectivity every InjectivityInterval iterations; 0 means 1
	InjectivityInterval int
}

// DefaultConfig uses 1e-8 for every tolerance and 10000 iterations
func DefaultConfig() Config {
	return Config{
		XtolAbs:             1e-8,
		XtolRel:             1e-8,
		FtolAbs:             1e-8,
		FtolRel:             1e-8,
		Gtol:                1e-8,
		MaxIter:             10000,
		StopAtInjectivity:   false,
		InjectivityInterval: 1,
	}
}

// CheckInit validates the configuration
func (cfg *Config) CheckInit() error {
	tols := []struct {
		name string
		val  float64
	}{
		{"XtolAbs", cfg.XtolAbs},
		{"XtolRel", cfg.XtolRel},
		{"FtolAbs", cfg.FtolAbs},
		{"FtolRel", cfg.FtolRel},
		{"Gtol", cfg.Gtol},
	}
	for _, tol := range tols {
		if tol.val < 0 {
			return fmt.Errorf("%s must be non-negative, but is %g", tol.name, tol.val)
		}
	}
	if cfg.MaxIter < 0 {
		return fmt.Errorf("MaxIter must be non-negative, but is %d", cfg.MaxIter)
	}
	if cfg.InjectivityInterval < 0 {
		return fmt.Errorf("InjectivityInterval must be non-negative, but is %d",
			cfg.InjectivityInterval)
	}
	return nil
}

type configFile struct {
	Solver Config
}

// ReadConfig reads the [solver] section of an INI file over DefaultConfig
func ReadConfig(fname string) (Config, error) {
	cf := configFile{Solver: DefaultConfig()}
	if err := gcfg.ReadFileInto(&cf, fname); err != nil {
		return Config{}, fmt.Errorf("reading solver config %s: %w", fname, err)
	}
	if err := cf.Solver.CheckInit(); err != nil {
		return Config{}, fmt.Errorf("solver config %s: %w", fname, err)
	}
	return cf.Solver, nil
}

// ReadConfigString is ReadConfig for INI text held in memory
func ReadConfigString(s string) (Config, error) {
	cf := configFile{Solver: DefaultConfig()}
	if err := gcfg.ReadStringInto(&cf, s); err != nil {
		return Config{}, fmt.Errorf("reading solver config: %w", err)
	}
	if err := cf.Solver.CheckInit(); err != nil {
		return Config{}, err
	}
	return cf.Solver, nil
}
