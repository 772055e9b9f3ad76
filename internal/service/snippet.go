package service

import (
	"context"

	"github.com/codeshare-dev/backend/internal/model"
	"github.com/codeshare-dev/backend/internal/model/types"
	"github.com/codeshare-dev/backend/internal/pkg/observability"
	"github.com/codeshare-dev/backend/internal/repo"
)

type Snippet struct {
	SnippetRepo *repo.Snippet
}

func NewSnippet(snippetRepo *repo.Snippet) *Snippet {
	return &Snippet{
		SnippetRepo: snippetRepo,
	}
}

// Create persists the validated request as an immutable snippet record.
func (s *Snippet) Create(ctx context.Context, req *types.CreateSnippetRequest) (*model.Snippet, error) {
	snippet, err := s.SnippetRepo.Create(ctx, req.Language, req.RawCode, req.FormattedCode)
	if err != nil {
		return nil, err
	}

	observability.SnippetCreatedTotal.Inc()
	return snippet, nil
}

func (s *Snippet) GetById(ctx context.Context, id string) (*model.Snippet, error) {
	return s.SnippetRepo.GetById(ctx, id)
}
