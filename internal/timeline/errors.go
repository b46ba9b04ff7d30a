package timeline

import "fmt"

// InvalidStepError reports a step that cannot be compiled: a negative
// timing value or an empty step sequence. StepIndex is -1 for sequence-
// level faults.
type InvalidStepError struct {
	StepIndex int
	Field     string
	Reason    string
}

// Error implements the error interface.
func (e *InvalidStepError) Error() string {
	if e.StepIndex < 0 {
		return fmt.Sprintf("invalid steps: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid step %d: %s: %s", e.StepIndex, e.Field, e.Reason)
}

// DegenerateTimingError reports two timing events that cannot be
// distinguished after percentage rounding and epsilon perturbation.
type DegenerateTimingError struct {
	StepIndex int
	Element   string
	Percent   float64
}

// Error implements the error interface.
func (e *DegenerateTimingError) Error() string {
	return fmt.Sprintf("degenerate timing at step %d: element %q cannot be scheduled past %.4f%% of the cycle",
		e.StepIndex, e.Element, e.Percent)
}
