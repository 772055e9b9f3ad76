package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/codeshare-dev/backend/internal/constant"
	"github.com/codeshare-dev/backend/internal/model/types"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
	"github.com/codeshare-dev/backend/internal/pkg/flog"
	"github.com/codeshare-dev/backend/internal/server/svr"
	"github.com/codeshare-dev/backend/internal/service"
	"github.com/codeshare-dev/backend/internal/util/rekuest"
)

type Snippet struct {
	fx.In

	SnippetService *service.Snippet
}

func RegisterSnippet(api *svr.API, c Snippet) {
	api.Post("/snippet", c.Create)
	api.Get("/snippet/:id", c.Get)
}

// Create persists the (rawCode, formattedCode) pair under a generated id.
// The formattedCode is taken from the caller as-is; the UI flow is expected
// to have obtained it from the format endpoint on this request's own inputs.
func (c *Snippet) Create(ctx *fiber.Ctx) error {
	var req types.CreateSnippetRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	snippet, err := c.SnippetService.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	flog.InfoFrom(ctx).
		Str("evt.name", "snippet.create").
		Str("snippetId", snippet.SnippetID).
		Str("language", snippet.Language).
		Msg("created snippet")

	return ctx.JSON(types.CreateSnippetResponse{
		ID:      snippet.SnippetID,
		URL:     constant.SnippetPathPrefix + snippet.SnippetID,
		Success: true,
	})
}

func (c *Snippet) Get(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	if id == "" {
		return cserr.ErrInvalidReq.Msg("snippet id is required")
	}

	snippet, err := c.SnippetService.GetById(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(types.SnippetResponse{
		Snippet: snippet,
		Success: true,
	})
}
