package types

import "github.com/codeshare-dev/backend/internal/model"

// CreateSnippetRequest carries a formattedCode supplied by the caller rather
// than recomputed server-side: the UI flow is expected to have called the
// format endpoint first. This is a documented trust boundary.
type CreateSnippetRequest struct {
	Language      string `json:"language" validate:"required,supportedlang"`
	RawCode       string `json:"rawCode" validate:"required"`
	FormattedCode string `json:"formattedCode" validate:"required"`
}

type CreateSnippetResponse struct {
	ID      string `json:"id"`
	URL     string `json:"url"`
	Success bool   `json:"success"`
}

type SnippetResponse struct {
	Snippet *model.Snippet `json:"snippet"`
	Success bool           `json:"success"`
}
