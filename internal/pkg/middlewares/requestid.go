package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"github.com/codeshare-dev/backend/internal/constant"
	"github.com/codeshare-dev/backend/internal/pkg/flog"
)

// RequestID repopulates the request id injected by the logger middleware
// into ctx.Locals so non-logging consumers can reach it.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := flog.IDFromFiberCtx(c); ok {
			c.Locals(constant.ContextKeyRequestID, id.String())
		}
		return c.Next()
	}
}
