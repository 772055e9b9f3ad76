package svr

import (
	"github.com/gofiber/fiber/v2"
)

type API struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

// Pages hosts the public HTML view surface, mounted at the root.
type Pages struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta, *Pages) {
	api := app.Group("/api")
	meta := app.Group("/api/_")
	pages := app.Group("/")

	return &API{Router: api}, &Meta{Router: meta}, &Pages{Router: pages}
}
