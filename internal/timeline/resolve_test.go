package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termframe/termframe/internal/config"
)

func step(start, perChar, hold float64, command string) config.Step {
	return config.Step{
		Prompt:  config.Prompt{User: "dev", Host: "box"},
		Command: command,
		Timing:  config.Timing{Start: start, PerChar: perChar, Hold: hold},
	}
}

func TestResolve_PushesOverlappingStepForward(t *testing.T) {
	// Step 0 ends at 2 + 6×0.5 + 2.5 = 7.5s; with the 0.5s gap the
	// earliest legal start for step 1 is 8.0s, so its nominal 6s moves.
	steps := []config.Step{
		step(2, 0.5, 2.5, "ls -la"),
		step(6, 0.2, 1, "pwd"),
	}

	resolved := Resolve(steps)
	require.Len(t, resolved, 2)

	assert.Equal(t, 2.0, resolved[0].Start)
	assert.Equal(t, 8.0, resolved[1].Start)
}

func TestResolve_FirstStepNeverModified(t *testing.T) {
	steps := []config.Step{step(42, 1, 1, "ls")}

	resolved := Resolve(steps)
	assert.Equal(t, 42.0, resolved[0].Start)
}

func TestResolve_LaterStartPreserved(t *testing.T) {
	// Step 0 ends at 1.4s; step 1's requested 10s already clears the
	// minimum and must be preserved, never pulled back.
	steps := []config.Step{
		step(0, 0.2, 1, "ls"),
		step(10, 0.2, 1, "pwd"),
	}

	resolved := Resolve(steps)
	assert.Equal(t, 10.0, resolved[1].Start)
}

func TestResolve_StartsNonDecreasingAndNeverEarlierThanInput(t *testing.T) {
	steps := []config.Step{
		step(0, 0.3, 2, "git status"),
		step(0, 0.3, 2, "git add ."),
		step(1, 0.3, 2, "git commit"),
		step(50, 0.3, 2, "git push"),
	}

	resolved := Resolve(steps)
	for i, r := range resolved {
		assert.GreaterOrEqual(t, r.Start, steps[i].Timing.Start, "step %d resolved earlier than requested", i)
		if i > 0 {
			assert.GreaterOrEqual(t, r.Start, resolved[i-1].Start, "step %d start decreased", i)
			assert.GreaterOrEqual(t, r.Start, resolved[i-1].End()+TransitionGap, "step %d overlaps step %d", i, i-1)
		}
	}
}

func TestResolve_DoesNotMutateInput(t *testing.T) {
	steps := []config.Step{
		step(2, 0.5, 2.5, "ls -la"),
		step(6, 0.2, 1, "pwd"),
	}
	before := make([]config.Step, len(steps))
	copy(before, steps)

	_ = Resolve(steps)
	assert.Equal(t, before, steps)
}

func TestResolvedStep_End(t *testing.T) {
	r := ResolvedStep{Step: step(2, 0.2, 1.5, "ls"), Start: 2}
	assert.InDelta(t, 2+0.4+1.5, r.End(), 1e-9)

	empty := ResolvedStep{Step: step(3, 0.2, 1.5, ""), Start: 3}
	assert.InDelta(t, 4.5, empty.End(), 1e-9, "empty command ends at start + hold")
}
