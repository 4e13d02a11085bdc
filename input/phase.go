package input

// Phase is an action's frame-to-frame transition.
type Phase uint8

const (
	PhaseInactive Phase = iota
	PhaseStarted
	PhaseContinuing
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseInactive:
		return "Inactive"
	case PhaseStarted:
		return "Started"
	case PhaseContinuing:
		return "Continuing"
	case PhaseFinished:
		return "Finished"
	default:
		return "Phase(?)"
	}
}

// Active reports whether the action holds a nonzero value in this phase.
func (p Phase) Active() bool {
	return p == PhaseStarted || p == PhaseContinuing
}

// Classify compares an action's previous and current value. Absent values
// count as zero. NaN compares unequal to zero and so counts as active.
func Classify(prev, cur float32) Phase {
	wasActive := prev != 0
	isActive := cur != 0
	switch {
	case !wasActive && isActive:
		return PhaseStarted
	case wasActive && isActive:
		return PhaseContinuing
	case wasActive && !isActive:
		return PhaseFinished
	default:
		return PhaseInactive
	}
}
