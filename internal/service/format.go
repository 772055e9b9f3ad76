package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
	"github.com/codeshare-dev/backend/internal/pkg/observability"
)

// FormatterEngine is the consumed pretty-printer contract. Implementations
// must be deterministic for a fixed engine version and style: identical
// (code, parser) pairs yield identical output.
type FormatterEngine interface {
	Format(ctx context.Context, code string, parser string) (string, error)
}

type Format struct {
	Engine FormatterEngine
}

func NewFormat(engine FormatterEngine) *Format {
	return &Format{
		Engine: engine,
	}
}

// Format pretty-prints code in the given language. The language is assumed to
// have passed validation already; the parser lookup is therefore total.
// Engine rejections surface as errors and never as partial output.
func (s *Format) Format(ctx context.Context, code string, lang language.Language) (string, error) {
	start := time.Now()

	formatted, err := s.Engine.Format(ctx, code, language.ParserFor(lang))
	if err != nil {
		observability.FormatDuration.WithLabelValues("failure").Observe(time.Since(start).Seconds())
		log.Warn().
			Str("evt.name", "format.engine").
			Str("language", string(lang)).
			Err(err).
			Msg("formatting engine rejected input")
		return "", cserr.ErrFormatFailed.Msg("failed to format code: %s", err)
	}

	observability.FormatDuration.WithLabelValues("success").Observe(time.Since(start).Seconds())
	return formatted, nil
}
