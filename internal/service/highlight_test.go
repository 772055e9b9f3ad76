package service

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/codeshare-dev/backend/internal/language"
)

type fakeHighlighterEngine struct {
	gotLexer string
	out      string
	err      error
}

func (f *fakeHighlighterEngine) Highlight(code string, lexer string) (string, error) {
	f.gotLexer = lexer
	return f.out, f.err
}

func TestHighlightPassesThroughEngineOutput(t *testing.T) {
	engine := &fakeHighlighterEngine{out: `<pre style="background-color:#272822;"><code>const</code></pre>`}
	s := NewHighlight(engine)

	out := s.Highlight("const x = 1;\n", language.JavaScript)
	assert.Equal(t, engine.out, out)
	assert.Equal(t, "javascript", engine.gotLexer)
}

func TestHighlightDegradesToEscapedPlaintext(t *testing.T) {
	engine := &fakeHighlighterEngine{err: errors.New("renderer exploded")}
	s := NewHighlight(engine)

	out := s.Highlight(`<script>alert("x")</script>`, language.HTML)
	assert.Equal(t, `<pre><code>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</code></pre>`, out)
}
