package timeline

// TotalDuration returns the global cycle length accommodating every step's
// complete lifecycle. The final step carries an extra dwell when looping,
// and the cycle gets a trailing pad: larger when looping (breathing room
// before restart), smaller otherwise (no abrupt cutoff).
//
// Must be called before any percentage conversion; every keyframe percent
// is absoluteTime / TotalDuration × 100.
func TotalDuration(steps []ResolvedStep, loop bool) float64 {
	var total float64
	for i, step := range steps {
		end := step.End()
		if loop && i == len(steps)-1 {
			end += LastStepLoopPause
		}
		if end > total {
			total = end
		}
	}
	if loop {
		return total + LoopTrailer
	}
	return total + Trailer
}
