package chromahl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlight(t *testing.T) {
	engine := New(DefaultTheme)

	out, err := engine.Highlight("const x = 1;\n", "javascript")
	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "const")
}

func TestHighlightEscapesMarkup(t *testing.T) {
	engine := New(DefaultTheme)

	out, err := engine.Highlight(`{"a": "<script>"}`, "json")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestHighlightUnknownLexer(t *testing.T) {
	engine := New(DefaultTheme)

	_, err := engine.Highlight("x", "definitely-not-a-lexer")
	assert.Error(t, err)
}

func TestHighlightDeterministic(t *testing.T) {
	engine := New(DefaultTheme)

	a, err := engine.Highlight("body { color: red; }\n", "css")
	require.NoError(t, err)
	b, err := engine.Highlight("body { color: red; }\n", "css")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
