package solver

// StopType records why an optimization run ended. Unknown means it has not.
type StopType uint8

const (
	Unknown StopType = iota
	XtolReached
	FtolReached
	GtolReached
	MaxIterReached
	InjectivityViolated
	Failure // Reported by optimizers: failed line search, non-finite energy or gradient
	Success
)

func (t StopType) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case XtolReached:
		return "XtolReached"
	case FtolReached:
		return "FtolReached"
	case GtolReached:
		return "GtolReached"
	case MaxIterReached:
		return "MaxIterReached"
	case InjectivityViolated:
		return "InjectivityViolated"
	case Failure:
		return "Failure"
	case Success:
		return "Success"
	default:
		return "Invalid"
	}
}

// Terminal reports whether t ends a run
func (t StopType) Terminal() bool {
	return t != Unknown
}
