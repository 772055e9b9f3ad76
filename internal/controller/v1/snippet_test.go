package v1

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/codeshare-dev/backend/internal/server/httpserver"
	"github.com/codeshare-dev/backend/internal/server/svr"
	"github.com/codeshare-dev/backend/internal/service"
)

// newSnippetTestApp wires the snippet controller with a nil repo: every case
// below must be rejected by validation before the storage layer is reached.
func newSnippetTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	api, _, _ := svr.CreateEndpointGroups(app)
	RegisterSnippet(api, Snippet{
		SnippetService: service.NewSnippet(nil),
	})
	return app
}

func TestSnippetControllerValidation(t *testing.T) {
	t.Run("rejects unsupported language", func(t *testing.T) {
		app := newSnippetTestApp()

		resp := postJSON(t, app, "/api/snippet", `{"rawCode":"PRINT 1","formattedCode":"PRINT 1","language":"cobol"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Len(t, body["supportedLanguages"], 5)
	})

	t.Run("rejects missing formattedCode", func(t *testing.T) {
		app := newSnippetTestApp()

		resp := postJSON(t, app, "/api/snippet", `{"rawCode":"const a = 1;","language":"javascript"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
	})

	t.Run("rejects missing rawCode", func(t *testing.T) {
		app := newSnippetTestApp()

		resp := postJSON(t, app, "/api/snippet", `{"formattedCode":"const a = 1;\n","language":"javascript"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		app := newSnippetTestApp()

		resp := postJSON(t, app, "/api/snippet", `{}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
	})
}
