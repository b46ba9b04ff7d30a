package timeline

import "math"

// percentOf converts an absolute second value into a cycle percentage,
// rounded to 4 decimal places and clamped to [0, 100].
func percentOf(t, total float64) float64 {
	p := math.Round(t/total*100*10000) / 10000
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// specBuilder accumulates frames for one element and enforces the
// monotonicity policy: a frame that rounds to the same or an earlier
// percentage than its predecessor is perturbed forward by the smallest
// representable epsilon. A perturbation that would leave [0, 100] marks
// the configuration as degenerate.
type specBuilder struct {
	ref    ElementRef
	frames []Frame
	err    error
}

func (b *specBuilder) add(percent, opacity float64) {
	if b.err != nil {
		return
	}
	if n := len(b.frames); n > 0 {
		last := b.frames[n-1]
		if percent == last.Percent && opacity == last.Opacity {
			return
		}
		if percent <= last.Percent {
			percent = last.Percent + percentEpsilon
			if percent > 100 {
				b.err = &DegenerateTimingError{
					StepIndex: b.ref.StepIndex,
					Element:   b.ref.Name(),
					Percent:   last.Percent,
				}
				return
			}
		}
	}
	b.frames = append(b.frames, Frame{Percent: percent, Opacity: opacity})
}

func (b *specBuilder) build() (Element, error) {
	if b.err != nil {
		return Element{}, b.err
	}
	return Element{Ref: b.ref, Spec: KeyframeSpec{Name: b.ref.Name(), Frames: b.frames}}, nil
}

// stepWindow carries the absolute times bounding one step's visibility.
type stepWindow struct {
	prevEnd float64 // previous step's end; 0 for the first step
	fadeOut float64 // this step's fade-out time, loop pause included when applicable
	last    bool
	loop    bool
}

// synthesizeStep produces the keyframe specs for one resolved step: the
// line group, the prompt, one spec per command character, and the command
// group. Elements are emitted in that order.
func synthesizeStep(r ResolvedStep, w stepWindow, total float64) ([]Element, error) {
	// The final step of a non-looping animation never fades out; content
	// remains visible at cycle end.
	keepVisible := w.last && !w.loop

	elems := make([]Element, 0, len([]rune(r.Step.Command))+3)

	lineGroup, err := synthesizeLineGroup(r, w, total, keepVisible)
	if err != nil {
		return nil, err
	}
	elems = append(elems, lineGroup)

	prompt, err := synthesizePrompt(r, w, total, keepVisible)
	if err != nil {
		return nil, err
	}
	elems = append(elems, prompt)

	chars, err := synthesizeCommandChars(r, total)
	if err != nil {
		return nil, err
	}
	elems = append(elems, chars...)

	group, err := synthesizeCommandGroup(r, w, total, keepVisible)
	if err != nil {
		return nil, err
	}
	elems = append(elems, group)

	return elems, nil
}

// synthesizeLineGroup fades the step's terminal lines in at the previous
// step's end (0 for the first step) and out at the step's fade-out time.
func synthesizeLineGroup(r ResolvedStep, w stepWindow, total float64, keepVisible bool) (Element, error) {
	b := &specBuilder{ref: ElementRef{StepIndex: r.Index, Kind: KindLineGroup}}

	b.add(0, 0)
	b.add(percentOf(w.prevEnd, total), 0)
	b.add(percentOf(w.prevEnd+FadeDuration, total), 1)

	if keepVisible {
		b.add(100, 1)
	} else {
		b.add(percentOf(w.fadeOut, total), 1)
		b.add(percentOf(w.fadeOut+FadeDuration, total), 0)
		b.add(100, 0)
	}

	return b.build()
}

// synthesizePrompt gives the prompt a step-function visibility window
// matching its group: no fade, instantaneous transitions. Reappearance
// on loop falls out of the shared cycle restart.
func synthesizePrompt(r ResolvedStep, w stepWindow, total float64, keepVisible bool) (Element, error) {
	b := &specBuilder{ref: ElementRef{StepIndex: r.Index, Kind: KindPrompt}}

	if in := percentOf(w.prevEnd, total); in == 0 {
		b.add(0, 1)
	} else {
		b.add(0, 0)
		b.add(in, 0)
		b.add(in, 1)
	}

	if keepVisible {
		b.add(100, 1)
	} else {
		out := percentOf(w.fadeOut, total)
		b.add(out, 1)
		b.add(out, 0)
		b.add(100, 0)
	}

	return b.build()
}

// synthesizeCommandChars emits one micro-animation per command character:
// a step-function jump from invisible to visible at start + index×perChar.
// Begin percentages are strictly increasing across characters unless
// perChar is zero.
func synthesizeCommandChars(r ResolvedStep, total float64) ([]Element, error) {
	runes := []rune(r.Step.Command)
	perChar := r.Step.Timing.PerChar

	elems := make([]Element, 0, len(runes))
	prevBegin := -1.0

	for i := range runes {
		begin := percentOf(r.Start+float64(i)*perChar, total)
		if perChar > 0 && begin <= prevBegin {
			begin = prevBegin + percentEpsilon
			if begin > 100 {
				return nil, &DegenerateTimingError{
					StepIndex: r.Index,
					Element:   ElementRef{StepIndex: r.Index, CharIndex: i, Kind: KindCommandChar}.Name(),
					Percent:   prevBegin,
				}
			}
		}
		prevBegin = begin

		b := &specBuilder{ref: ElementRef{StepIndex: r.Index, CharIndex: i, Kind: KindCommandChar}}
		if begin == 0 {
			b.add(0, 1)
		} else {
			b.add(0, 0)
			b.add(begin, 0)
			b.add(begin, 1)
		}
		b.add(100, 1)

		elem, err := b.build()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	return elems, nil
}

// synthesizeCommandGroup fades the group containing every command
// character out at the step's fade-out time, mirroring the line group so
// prompt, lines, and command disappear together.
func synthesizeCommandGroup(r ResolvedStep, w stepWindow, total float64, keepVisible bool) (Element, error) {
	b := &specBuilder{ref: ElementRef{StepIndex: r.Index, Kind: KindCommandGroup}}

	b.add(0, 1)
	if keepVisible {
		b.add(100, 1)
	} else {
		b.add(percentOf(w.fadeOut, total), 1)
		b.add(percentOf(w.fadeOut+FadeDuration, total), 0)
		b.add(100, 0)
	}

	return b.build()
}
