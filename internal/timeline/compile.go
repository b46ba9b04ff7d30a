package timeline

import "github.com/termframe/termframe/internal/config"

// Options adjusts a single compile call without touching the config.
type Options struct {
	// ForceLoop makes the compiler behave as if the config had loop: true.
	// Used by the GIF export collaborator, which needs a looping variant of
	// a non-looping animation.
	ForceLoop bool
}

// Compile transforms a validated config into a Document: resolved steps,
// the global cycle length, and one keyframe spec per visual element, all
// expressed as percentages of the cycle. Pure; the caller's config is
// never mutated.
func Compile(cfg *config.Config, opts Options) (*Document, error) {
	if err := validateSteps(cfg.Steps); err != nil {
		return nil, err
	}

	loop := cfg.Settings.Loop || opts.ForceLoop
	resolved := Resolve(cfg.Steps)
	total := TotalDuration(resolved, loop)

	// Work on a value copy so defaults never leak back into the caller.
	settings := cfg.Settings
	settings.ApplyDefaults()

	doc := &Document{
		Name:       cfg.Meta.Name,
		Width:      settings.Width,
		Height:     settings.Height,
		FontFamily: settings.FontFamily,
		FontSize:   settings.FontSize,
		CharWidth:  settings.CharWidth,
		Duration:   total,
		Loop:       loop,
		Embed:      settings.EmbedStyles(),
		Steps:      make([]StepRender, 0, len(resolved)),
	}

	var prevEnd float64
	for i, r := range resolved {
		last := i == len(resolved)-1
		fadeOut := r.End()
		if last && loop {
			fadeOut += LastStepLoopPause
		}

		elems, err := synthesizeStep(r, stepWindow{
			prevEnd: prevEnd,
			fadeOut: fadeOut,
			last:    last,
			loop:    loop,
		}, total)
		if err != nil {
			return nil, err
		}
		doc.Elements = append(doc.Elements, elems...)

		doc.Steps = append(doc.Steps, StepRender{
			Index:      i,
			Lines:      append([]string(nil), r.Step.Lines...),
			PromptText: r.Step.Prompt.Text(),
			Command:    r.Step.Command,
			Start:      r.Start,
			End:        r.End(),
			Layout:     ResolveLayout(r.Step, settings.CharWidth),
		})

		prevEnd = r.End()
	}

	return doc, nil
}

// validateSteps fail-fast rejects input the compiler cannot schedule.
// Config validation covers the same ground for file input, but the
// compiler is usable as a library and checks its own contract.
func validateSteps(steps []config.Step) error {
	if len(steps) == 0 {
		return &InvalidStepError{StepIndex: -1, Field: "steps", Reason: "empty step sequence"}
	}
	for i, s := range steps {
		if s.Timing.Start < 0 {
			return &InvalidStepError{StepIndex: i, Field: "timing.start", Reason: "must be non-negative"}
		}
		if s.Timing.PerChar < 0 {
			return &InvalidStepError{StepIndex: i, Field: "timing.per_char", Reason: "must be non-negative"}
		}
		if s.Timing.Hold < 0 {
			return &InvalidStepError{StepIndex: i, Field: "timing.hold", Reason: "must be non-negative"}
		}
	}
	return nil
}
