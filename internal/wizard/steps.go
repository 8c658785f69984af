package wizard

// StepStatusKind classifies a step relative to the wizard position.
type StepStatusKind int

const (
	StatusComplete StepStatusKind = iota
	StatusCurrent
	StatusUpcoming
)

func (s StepStatusKind) String() string {
	switch s {
	case StatusComplete:
		return "complete"
	case StatusCurrent:
		return "current"
	default:
		return "upcoming"
	}
}

// StepValid reports whether the given step's gate is satisfied. Income is
// the only step that requires at least one item; expenses and savings are
// optional but any item present must individually be valid.
func StepValid(s State, step int) bool {
	switch step {
	case StepMonth:
		return s.HasMonth()
	case StepIncome:
		if len(s.Income) == 0 {
			return false
		}
		for _, it := range s.Income {
			if !it.Valid() {
				return false
			}
		}
		return true
	case StepExpenses:
		for _, it := range s.Expenses {
			if !it.Valid() {
				return false
			}
		}
		return true
	case StepSavings:
		for _, it := range s.Savings {
			if !it.Valid() {
				return false
			}
		}
		return true
	case StepReview:
		return true
	default:
		return false
	}
}

// StepStatus reflects position only: a step already passed reports
// complete even if a later mutation made its contents invalid.
func StepStatus(s State, step int) StepStatusKind {
	switch {
	case step < s.Step:
		return StatusComplete
	case step == s.Step:
		return StatusCurrent
	default:
		return StatusUpcoming
	}
}

// Progress is the completion fraction for the progress indicator: 20% for
// every step fully passed, plus 20% once the review step is reached. It
// is derived from position alone, never from how many fields are filled.
func Progress(s State) float64 {
	p := 0.2 * float64(s.Step-1)
	if s.Step == StepReview {
		p += 0.2
	}
	return p
}

// CanGoTo reports whether the shell should honor a jump to the given
// step: backward (or staying put) is always fine, jumping ahead of
// validated progress is not.
func CanGoTo(s State, step int) bool {
	return step >= StepMonth && step <= s.Step
}
