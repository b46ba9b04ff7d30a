package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidStepError_Error(t *testing.T) {
	err := &InvalidStepError{StepIndex: 2, Field: "timing.hold", Reason: "must be non-negative"}
	assert.Equal(t, "invalid step 2: timing.hold: must be non-negative", err.Error())

	seq := &InvalidStepError{StepIndex: -1, Field: "steps", Reason: "empty step sequence"}
	assert.Equal(t, "invalid steps: steps: empty step sequence", seq.Error())
}

func TestDegenerateTimingError_Error(t *testing.T) {
	err := &DegenerateTimingError{StepIndex: 1, Element: "tf-s1-char4", Percent: 100}
	assert.Contains(t, err.Error(), "step 1")
	assert.Contains(t, err.Error(), "tf-s1-char4")
	assert.Contains(t, err.Error(), "100.0000%")
}
