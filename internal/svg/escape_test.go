package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "ls -la", want: "ls -la"},
		{name: "angle brackets", input: "cat <file>", want: "cat &lt;file&gt;"},
		{name: "ampersand", input: "a && b", want: "a &amp;&amp; b"},
		{name: "quotes untouched in text", input: `echo "hi"`, want: `echo "hi"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeText(tt.input))
		})
	}
}

func TestEscapeAttr(t *testing.T) {
	assert.Equal(t, "a&amp;b", EscapeAttr("a&b"))
	assert.Equal(t, "say &quot;hi&quot;", EscapeAttr(`say "hi"`))
	assert.Equal(t, "it&apos;s", EscapeAttr("it's"))
}
