package selector

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/codeshare-dev/backend/internal/pkg/cserr"
)

type S[T any] struct {
	DB *bun.DB
}

func New[T any](db *bun.DB) S[T] {
	return S[T]{
		DB: db,
	}
}

// SelectOne maps sql.ErrNoRows onto the not-found sentinel: a missing row is
// a defined empty result, not a storage failure.
func (r S[T]) SelectOne(ctx context.Context, fn func(q *bun.SelectQuery) *bun.SelectQuery) (*T, error) {
	var model T
	err := fn(r.DB.NewSelect().Model(&model)).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, cserr.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	return &model, nil
}
