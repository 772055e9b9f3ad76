package service

import (
	"html"

	"github.com/rs/zerolog/log"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/pkg/observability"
)

// HighlighterEngine is the consumed syntax colorizer contract.
type HighlighterEngine interface {
	Highlight(code string, lexer string) (string, error)
}

type Highlight struct {
	Engine HighlighterEngine
}

func NewHighlight(engine HighlighterEngine) *Highlight {
	return &Highlight{
		Engine: engine,
	}
}

// Highlight renders code as HTML. An engine failure only affects presentation
// of already-valid data, so it never propagates: the result degrades to an
// HTML-escaped plain-text rendering instead.
func (s *Highlight) Highlight(code string, lang language.Language) string {
	rendered, err := s.Engine.Highlight(code, language.LexerFor(lang))
	if err != nil {
		observability.HighlightFallbackTotal.Inc()
		log.Warn().
			Str("evt.name", "highlight.fallback").
			Str("language", string(lang)).
			Err(err).
			Msg("highlighting engine failed. falling back to plain text")
		return "<pre><code>" + html.EscapeString(code) + "</code></pre>"
	}

	return rendered
}
