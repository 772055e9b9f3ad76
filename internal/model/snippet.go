package model

import (
	"time"

	"github.com/uptrace/bun"
)

// Snippet is the only persisted entity: an immutable record of a code
// fragment, its language, and its formatted form. Once created it is never
// mutated or deleted.
type Snippet struct {
	bun.BaseModel `bun:"snippets,alias:sn"`

	SnippetID     string    `bun:"snippet_id,pk" json:"id"`
	Language      string    `bun:"language" json:"language"`
	RawCode       string    `bun:"raw_code" json:"rawCode"`
	FormattedCode string    `bun:"formatted_code" json:"formattedCode"`
	CreatedAt     time.Time `bun:"created_at" json:"createdAt"`
}
