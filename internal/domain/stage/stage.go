// Package stage implements the positional step computation shared by every
// ordered pipeline in the system (request stage, legacy status, perception
// stage). Completed-ness is purely positional and never stored: a step before
// the current one renders completed, the current one active, later ones
// pending.
package stage

type StepState string

const (
	StepCompleted StepState = "completed"
	StepActive    StepState = "active"
	StepPending   StepState = "pending"
)

// Step pairs a pipeline value with its display state.
type Step struct {
	Name  string    `json:"name"`
	State StepState `json:"state"`
}

// IndexOf returns the position of v in seq, or -1 when v is not a member.
func IndexOf(seq []string, v string) int {
	for i, s := range seq {
		if s == v {
			return i
		}
	}
	return -1
}

// Classify maps an ordered sequence and the current value to per-step display
// states. When current is not in seq no step is active and everything is
// pending.
func Classify(seq []string, current string) []Step {
	cur := IndexOf(seq, current)
	out := make([]Step, len(seq))
	for i, s := range seq {
		st := StepPending
		switch {
		case cur >= 0 && i < cur:
			st = StepCompleted
		case cur >= 0 && i == cur:
			st = StepActive
		}
		out[i] = Step{Name: s, State: st}
	}
	return out
}
