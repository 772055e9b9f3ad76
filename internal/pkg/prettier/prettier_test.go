package prettier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleArgs(t *testing.T) {
	assert.Equal(t, []string{
		"--tab-width", "2",
		"--print-width", "80",
		"--trailing-comma", "es5",
		"--arrow-parens", "always",
		"--semi",
		"--single-quote",
	}, DefaultStyle.Args())
}

func TestStyleArgsNoSemi(t *testing.T) {
	style := DefaultStyle
	style.Semi = false
	style.SingleQuote = false
	assert.Contains(t, style.Args(), "--no-semi")
	assert.NotContains(t, style.Args(), "--semi")
	assert.NotContains(t, style.Args(), "--single-quote")
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "SyntaxError: Unexpected token (1:9)", firstLine("SyntaxError: Unexpected token (1:9)\n> 1 | {invalid\n    |         ^\n"))
	assert.Equal(t, "", firstLine("  \n  "))
}
