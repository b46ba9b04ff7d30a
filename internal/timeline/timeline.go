// Package timeline compiles an animation config into a cycle-relative
// keyframe document. Every absolute second value is converted into a
// percentage of one shared cycle, so replaying the cycle from 0% restarts
// every element's fade and typing sequence in lock-step without any
// per-element reset signal.
package timeline

import (
	"fmt"

	"github.com/termframe/termframe/internal/config"
)

// Engine constants, in seconds unless noted. Not user-configurable.
const (
	// TransitionGap is the minimum spacing between one step's end and the
	// next step's start.
	TransitionGap = 0.5

	// FadeDuration is the length of line-group and command-group fades.
	FadeDuration = 0.2

	// LastStepLoopPause is the extra dwell on the final step before a
	// looping animation restarts.
	LastStepLoopPause = 2.0

	// LoopTrailer and Trailer pad the cycle after the last step end, for
	// looping and non-looping output respectively. Trailer > 0 keeps the
	// cycle strictly longer than the last step end.
	LoopTrailer = 1.0
	Trailer     = 0.5

	// PromptMargin is the default X origin of prompt and line text, px.
	PromptMargin = 10.0

	// PromptGap is the fixed gap between prompt text and command X, px.
	PromptGap = 8.0
)

// percentEpsilon is the smallest distinguishable gap between two keyframe
// percentages after 4-decimal rounding.
const percentEpsilon = 0.0001

// ElementKind identifies the kind of an animated visual element.
type ElementKind int

const (
	KindLineGroup ElementKind = iota
	KindPrompt
	KindCommandChar
	KindCommandGroup
)

// String returns the short kind token used in class names.
func (k ElementKind) String() string {
	switch k {
	case KindLineGroup:
		return "lines"
	case KindPrompt:
		return "prompt"
	case KindCommandChar:
		return "char"
	case KindCommandGroup:
		return "cmd"
	default:
		return "unknown"
	}
}

// ElementRef identifies one visual element as first-class data. Class
// names are derived from the ref; nothing ever parses a name back into
// indices.
type ElementRef struct {
	StepIndex int
	CharIndex int
	Kind      ElementKind
}

// Name returns the stable identifier used as both keyframe name and CSS
// class for the element.
func (r ElementRef) Name() string {
	if r.Kind == KindCommandChar {
		return fmt.Sprintf("tf-s%d-char%d", r.StepIndex, r.CharIndex)
	}
	return fmt.Sprintf("tf-s%d-%s", r.StepIndex, r.Kind)
}

// Frame is a single keyframe: a percentage of the cycle and the opacity
// the element holds at that point.
type Frame struct {
	Percent float64
	Opacity float64
}

// KeyframeSpec is a named, ordered sequence of frames. Percentages are
// strictly non-decreasing and bounded by [0, 100].
type KeyframeSpec struct {
	Name   string
	Frames []Frame
}

// Element binds one visual element to its keyframe spec.
type Element struct {
	Ref  ElementRef
	Spec KeyframeSpec
}

// ResolvedStep is a step whose start has been adjusted by the overlap
// resolver. The embedded step is a copy; the caller's config is never
// written through.
type ResolvedStep struct {
	Index int
	Step  config.Step
	Start float64
}

// TypingDuration returns len(command) × perChar in seconds.
func (r ResolvedStep) TypingDuration() float64 {
	return float64(len([]rune(r.Step.Command))) * r.Step.Timing.PerChar
}

// End returns the step's end time: start + typing + hold. The last-step
// loop pause is applied by the caller where it matters.
func (r ResolvedStep) End() float64 {
	return r.Start + r.TypingDuration() + r.Step.Timing.Hold
}

// Layout holds the computed horizontal pixel offsets for one step.
type Layout struct {
	PromptX     float64
	PromptWidth float64
	CommandX    float64
}

// StepRender carries everything the assembly stage needs to emit one
// step's markup.
type StepRender struct {
	Index      int
	Lines      []string
	PromptText string
	Command    string
	Start      float64
	End        float64
	Layout     Layout
}

// Document is the compiled, time-indexed animation description consumed
// by the assembly/rendering collaborators.
type Document struct {
	Name       string
	Width      int
	Height     int
	FontFamily string
	FontSize   int
	CharWidth  float64
	Duration   float64
	Loop       bool
	Embed      bool
	Steps      []StepRender
	Elements   []Element
}
