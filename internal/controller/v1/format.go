package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/model/types"
	"github.com/codeshare-dev/backend/internal/server/svr"
	"github.com/codeshare-dev/backend/internal/service"
	"github.com/codeshare-dev/backend/internal/util/rekuest"
)

type Format struct {
	fx.In

	FormatService *service.Format
}

func RegisterFormat(api *svr.API, c Format) {
	api.Post("/format", c.Format)
}

// Format pretty-prints the submitted code fragment. Validation happens before
// the engine is touched; an unsupported language never reaches the delegate.
func (c *Format) Format(ctx *fiber.Ctx) error {
	var req types.FormatRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	formatted, err := c.FormatService.Format(ctx.UserContext(), req.Code, language.Language(req.Language))
	if err != nil {
		return err
	}

	return ctx.JSON(types.FormatResponse{
		FormattedCode: formatted,
		Success:       true,
	})
}
