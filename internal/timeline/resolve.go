package timeline

import "github.com/termframe/termframe/internal/config"

// Resolve walks the steps in order and pushes a step's start forward if it
// would begin before the previous step's end plus the transition gap. The
// first step's start is never modified, and a start that already clears
// the minimum is preserved unchanged: the resolver only pushes forward.
//
// The returned steps hold copies; the caller's slice is not written to.
func Resolve(steps []config.Step) []ResolvedStep {
	resolved := make([]ResolvedStep, len(steps))
	var prevEnd float64

	for i, step := range steps {
		start := step.Timing.Start
		if i > 0 {
			if minStart := prevEnd + TransitionGap; start < minStart {
				start = minStart
			}
		}
		resolved[i] = ResolvedStep{Index: i, Step: step, Start: start}
		prevEnd = resolved[i].End()
	}

	return resolved
}
