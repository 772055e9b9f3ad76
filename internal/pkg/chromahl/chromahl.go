// Package chromahl adapts chroma as the consumed highlighting engine,
// producing self-contained HTML with inline styles.
package chromahl

import (
	"bytes"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pkg/errors"
)

// DefaultTheme is the fixed dark color theme applied to every rendered
// snippet. Changing it changes the presentation of all stored snippets.
const DefaultTheme = "monokai"

type Engine struct {
	style     *chroma.Style
	formatter *html.Formatter
}

func New(theme string) *Engine {
	return &Engine{
		// styles.Get falls back to a built-in style for unknown names
		style: styles.Get(theme),
		formatter: html.New(
			html.TabWidth(2),
			html.WithLineNumbers(false),
		),
	}
}

// Highlight renders code as HTML using the lexer registered under lexerName.
// Callers are expected to treat any returned error as a presentation-only
// failure and degrade gracefully.
func (e *Engine) Highlight(code string, lexerName string) (string, error) {
	lexer := lexers.Get(lexerName)
	if lexer == nil {
		return "", errors.Errorf("no lexer registered for %q", lexerName)
	}

	iterator, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return "", errors.Wrap(err, "tokenise")
	}

	var buf bytes.Buffer
	if err := e.formatter.Format(&buf, e.style, iterator); err != nil {
		return "", errors.Wrap(err, "format html")
	}

	return buf.String(), nil
}
