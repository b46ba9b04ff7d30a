package svg

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/termframe/termframe/internal/timeline"
)

// Terminal color palette.
const (
	backgroundColor = "#0d1117"
	lineColor       = "#c9d1d9"
	promptColor     = "#7ee787"
	commandColor    = "#e6edf3"
)

// Vertical layout constants, px.
const (
	padTop      = 10.0
	lineLeading = 6.0 // extra leading between text rows
)

// Output is the assembled document. CSS is non-empty only when the
// stylesheet is external (embed: false); the SVG then references it via
// an xml-stylesheet processing instruction.
type Output struct {
	SVG string
	CSS string
}

// Build assembles the document markup and stylesheet. cssHref is the
// stylesheet reference used when the document does not embed its styles;
// it is ignored otherwise.
func Build(doc *timeline.Document, cssHref string) *Output {
	css := stylesheet(doc)

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	if !doc.Embed {
		fmt.Fprintf(&sb, "<?xml-stylesheet type=\"text/css\" href=\"%s\"?>\n", EscapeAttr(cssHref))
	}
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" data-duration="%s">`+"\n",
		doc.Width, doc.Height, doc.Width, doc.Height, fmtNum(doc.Duration))
	fmt.Fprintf(&sb, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", backgroundColor)

	if doc.Embed {
		sb.WriteString("<style>\n")
		sb.WriteString(css)
		sb.WriteString("</style>\n")
	}

	for _, step := range doc.Steps {
		writeStep(&sb, doc, step)
	}

	sb.WriteString("</svg>\n")

	out := &Output{SVG: sb.String()}
	if !doc.Embed {
		out.CSS = css
	}
	return out
}

// writeStep emits one step's line group, prompt, and per-character
// command markup. Every step occupies the same screen region; visibility
// windows never overlap, so steps replace each other in place.
func writeStep(sb *strings.Builder, doc *timeline.Document, step timeline.StepRender) {
	lineHeight := float64(doc.FontSize) + lineLeading
	baseline := padTop + float64(doc.FontSize)

	lineGroup := timeline.ElementRef{StepIndex: step.Index, Kind: timeline.KindLineGroup}
	fmt.Fprintf(sb, `<g class="%s">`+"\n", lineGroup.Name())
	for i, line := range step.Lines {
		y := baseline + float64(i)*lineHeight
		fmt.Fprintf(sb, `<text class="tf-line" x="%s" y="%s" xml:space="preserve">%s</text>`+"\n",
			fmtNum(timeline.PromptMargin), fmtNum(y), EscapeText(line))
	}
	sb.WriteString("</g>\n")

	promptY := baseline + float64(len(step.Lines))*lineHeight
	prompt := timeline.ElementRef{StepIndex: step.Index, Kind: timeline.KindPrompt}
	fmt.Fprintf(sb, `<text class="%s tf-prompt" x="%s" y="%s" xml:space="preserve">%s</text>`+"\n",
		prompt.Name(), fmtNum(step.Layout.PromptX), fmtNum(promptY), EscapeText(step.PromptText))

	group := timeline.ElementRef{StepIndex: step.Index, Kind: timeline.KindCommandGroup}
	fmt.Fprintf(sb, `<g class="%s">`+"\n", group.Name())
	for i, r := range []rune(step.Command) {
		ref := timeline.ElementRef{StepIndex: step.Index, CharIndex: i, Kind: timeline.KindCommandChar}
		x := step.Layout.CommandX + float64(i)*doc.CharWidth
		fmt.Fprintf(sb, `<text class="%s tf-command" x="%s" y="%s" xml:space="preserve">%s</text>`+"\n",
			ref.Name(), fmtNum(x), fmtNum(promptY), EscapeText(string(r)))
	}
	sb.WriteString("</g>\n")
}

// stylesheet renders the shared text styles, one @keyframes block per
// element, and one binding rule per element.
func stylesheet(doc *timeline.Document) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "text { font-family: %s; font-size: %dpx; }\n", doc.FontFamily, doc.FontSize)
	fmt.Fprintf(&sb, ".tf-line { fill: %s; }\n", lineColor)
	fmt.Fprintf(&sb, ".tf-prompt { fill: %s; }\n", promptColor)
	fmt.Fprintf(&sb, ".tf-command { fill: %s; }\n", commandColor)

	for _, el := range doc.Elements {
		fmt.Fprintf(&sb, "@keyframes %s {\n", el.Spec.Name)
		for _, f := range el.Spec.Frames {
			fmt.Fprintf(&sb, "  %s%% { opacity: %s; }\n", fmtNum(f.Percent), fmtNum(f.Opacity))
		}
		sb.WriteString("}\n")
	}

	iteration := "1 forwards"
	if doc.Loop {
		iteration = "infinite"
	}
	for _, el := range doc.Elements {
		fmt.Fprintf(&sb, ".%s { animation: %s %ss linear %s; }\n",
			el.Spec.Name, el.Spec.Name, fmtNum(doc.Duration), iteration)
	}

	return sb.String()
}

// fmtNum formats a numeric value with at most four decimal places and no
// trailing zeros, keeping the output byte-stable across compiles.
func fmtNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*10000)/10000, 'f', -1, 64)
}
