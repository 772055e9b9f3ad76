package repo

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"

	"github.com/codeshare-dev/backend/internal/model"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
	"github.com/codeshare-dev/backend/internal/pkg/snid"
	"github.com/codeshare-dev/backend/internal/repo/selector"
)

const SnippetCreateMaxRetries = 10

type Snippet struct {
	db  *bun.DB
	sel selector.S[model.Snippet]
}

func NewSnippet(db *bun.DB) *Snippet {
	return &Snippet{
		db:  db,
		sel: selector.New[model.Snippet](db),
	}
}

// Create inserts an immutable snippet record with a freshly generated id and
// creation timestamp. Content was already validated by the time this is
// called; an exhausted retry budget means the storage layer is unavailable.
func (r *Snippet) Create(ctx context.Context, language, rawCode, formattedCode string) (*model.Snippet, error) {
	// retry if the generated id already exists
	for i := 0; i < SnippetCreateMaxRetries; i++ {
		snippet := &model.Snippet{
			SnippetID:     snid.New(),
			Language:      language,
			RawCode:       rawCode,
			FormattedCode: formattedCode,
			CreatedAt:     time.Now(),
		}

		_, err := r.db.NewInsert().
			Model(snippet).
			Exec(ctx)
		if err != nil {
			log.Warn().
				Str("evt.name", "snippet.create.retry").
				Err(err).
				Int("retry", i).
				Msg("failed to insert snippet. retrying...")
			continue
		}

		return snippet, nil
	}

	return nil, cserr.ErrStorage
}

func (r *Snippet) GetById(ctx context.Context, id string) (*model.Snippet, error) {
	return r.sel.SelectOne(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("snippet_id = ?", id)
	})
}
