package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termframe/termframe/internal/config"
	"github.com/termframe/termframe/internal/timeline"
)

func compileTestDoc(t *testing.T, loop bool, embed *bool) *timeline.Document {
	t.Helper()
	cfg := &config.Config{
		Meta:     config.Meta{Name: "svg-test"},
		Settings: config.Settings{Loop: loop, Embed: embed},
		Steps: []config.Step{
			{
				Lines:   []string{"total 2", "drwxr-xr-x  <dir> & more"},
				Prompt:  config.Prompt{User: "dev", Host: "box", Path: "~"},
				Command: "ls <tag>",
				Timing:  config.Timing{Start: 1, PerChar: 0.2, Hold: 2},
			},
		},
	}
	doc, err := timeline.Compile(cfg, timeline.Options{})
	require.NoError(t, err)
	return doc
}

func TestBuild_EmbeddedDocument(t *testing.T) {
	doc := compileTestDoc(t, false, nil)
	out := Build(doc, "svg-test.css")

	assert.Empty(t, out.CSS, "embedded documents carry no external stylesheet")
	assert.NotContains(t, out.SVG, "xml-stylesheet")
	assert.Contains(t, out.SVG, "<style>")
	assert.Contains(t, out.SVG, `data-duration="`)
	assert.Contains(t, out.SVG, "@keyframes tf-s0-lines")
	assert.Contains(t, out.SVG, `class="tf-s0-lines"`)
	assert.Contains(t, out.SVG, `class="tf-s0-prompt tf-prompt"`)
	assert.Contains(t, out.SVG, `class="tf-s0-char0 tf-command"`)
	assert.Contains(t, out.SVG, "dev@box:~$")
}

func TestBuild_EscapesUserText(t *testing.T) {
	doc := compileTestDoc(t, false, nil)
	out := Build(doc, "svg-test.css")

	assert.Contains(t, out.SVG, "drwxr-xr-x  &lt;dir&gt; &amp; more")
	assert.Contains(t, out.SVG, "&lt;") // typed command characters too
	assert.NotContains(t, out.SVG, "<dir>")
}

func TestBuild_ExternalStylesheet(t *testing.T) {
	embed := false
	doc := compileTestDoc(t, false, &embed)
	out := Build(doc, "svg-test.css")

	assert.NotEmpty(t, out.CSS)
	assert.Contains(t, out.SVG, `<?xml-stylesheet type="text/css" href="svg-test.css"?>`)
	assert.NotContains(t, out.SVG, "<style>")
	assert.Contains(t, out.CSS, "@keyframes tf-s0-lines")
}

func TestBuild_IterationCount(t *testing.T) {
	once := Build(compileTestDoc(t, false, nil), "a.css")
	assert.Contains(t, once.SVG, "linear 1 forwards;")
	assert.NotContains(t, once.SVG, "infinite")

	looped := Build(compileTestDoc(t, true, nil), "a.css")
	assert.Contains(t, looped.SVG, "linear infinite;")
}

func TestBuild_ByteIdentical(t *testing.T) {
	a := Build(compileTestDoc(t, true, nil), "a.css")
	b := Build(compileTestDoc(t, true, nil), "a.css")
	assert.Equal(t, a.SVG, b.SVG)
}

func TestBuild_DurationAttribute(t *testing.T) {
	doc := compileTestDoc(t, false, nil)
	out := Build(doc, "a.css")

	// One step: ends 1 + 8×0.2 + 2 = 4.6, plus the non-loop trailer.
	require.InDelta(t, 4.6+timeline.Trailer, doc.Duration, 1e-9)
	assert.Contains(t, out.SVG, `data-duration="5.1"`)
}

func TestBuild_OneRuleAndOneKeyframesPerElement(t *testing.T) {
	doc := compileTestDoc(t, false, nil)
	out := Build(doc, "a.css")

	for _, el := range doc.Elements {
		assert.Equal(t, 1, strings.Count(out.SVG, "@keyframes "+el.Spec.Name+" {"),
			"element %s needs exactly one keyframes block", el.Spec.Name)
		assert.Equal(t, 1, strings.Count(out.SVG, "."+el.Spec.Name+" { animation:"),
			"element %s needs exactly one binding rule", el.Spec.Name)
	}
}
