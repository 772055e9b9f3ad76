package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSupported(t *testing.T) {
	for _, l := range All {
		assert.True(t, IsSupported(string(l)), "expected %s to be supported", l)
	}

	for _, tag := range []string{"", "cobol", "go", "Javascript", "JSON ", "php"} {
		assert.False(t, IsSupported(tag), "expected %q to be unsupported", tag)
	}
}

func TestSupportedTags(t *testing.T) {
	assert.Equal(t, []string{"javascript", "typescript", "json", "html", "css"}, SupportedTags())
}

func TestEngineMappings(t *testing.T) {
	assert.Equal(t, "babel", ParserFor(JavaScript))
	assert.Equal(t, "typescript", ParserFor(TypeScript))
	assert.Equal(t, "json", ParserFor(JSON))
	assert.Equal(t, "html", ParserFor(HTML))
	assert.Equal(t, "css", ParserFor(CSS))

	for _, l := range All {
		assert.NotEmpty(t, LexerFor(l), "expected %s to have a lexer mapping", l)
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}
