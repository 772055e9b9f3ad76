// Package language is the single source of truth for which snippet languages
// are acceptable anywhere in the system, and for their engine mappings.
package language

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Language is a supported snippet language tag.
type Language string

const (
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	JSON       Language = "json"
	HTML       Language = "html"
	CSS        Language = "css"
)

// All enumerates every supported language, in the order surfaced to callers.
var All = []Language{JavaScript, TypeScript, JSON, HTML, CSS}

// parsers maps each language to its formatting engine parser identifier.
var parsers = map[Language]string{
	JavaScript: "babel",
	TypeScript: "typescript",
	JSON:       "json",
	HTML:       "html",
	CSS:        "css",
}

// lexers maps each language to its highlighting engine lexer identifier.
var lexers = map[Language]string{
	JavaScript: "javascript",
	TypeScript: "typescript",
	JSON:       "json",
	HTML:       "html",
	CSS:        "css",
}

// IsSupported reports whether tag is a member of the supported set.
func IsSupported(tag string) bool {
	_, ok := parsers[Language(tag)]
	return ok
}

// SupportedTags returns the supported language tags, for validation messages
// and error responses.
func SupportedTags() []string {
	return lo.Map(All, func(l Language, _ int) string {
		return string(l)
	})
}

// ParserFor returns the formatting engine parser identifier for lang.
func ParserFor(lang Language) string {
	return parsers[lang]
}

// LexerFor returns the highlighting engine lexer identifier for lang.
func LexerFor(lang Language) string {
	return lexers[lang]
}

// Validate ensures every supported language carries both a parser and a lexer
// mapping, and that neither table contains an entry outside the supported set.
// A partial registry is a programming error and must abort startup.
func Validate() error {
	for _, l := range All {
		if _, ok := parsers[l]; !ok {
			return errors.Errorf("language %s has no formatting parser mapping", l)
		}
		if _, ok := lexers[l]; !ok {
			return errors.Errorf("language %s has no highlighting lexer mapping", l)
		}
	}
	if len(parsers) != len(All) || len(lexers) != len(All) {
		return errors.New("language mapping tables contain entries outside the supported set")
	}
	return nil
}
