package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeshare-dev/backend/internal/server/httpserver"
	"github.com/codeshare-dev/backend/internal/server/svr"
	"github.com/codeshare-dev/backend/internal/service"
)

type fakeFormatterEngine struct {
	result string
	err    error

	lastCode   string
	lastParser string
}

func (f *fakeFormatterEngine) Format(ctx context.Context, code, parser string) (string, error) {
	f.lastCode = code
	f.lastParser = parser
	if f.err != nil {
		return "", f.err
	}
	return f.result, nil
}

func newFormatTestApp(engine service.FormatterEngine) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: httpserver.ErrorHandler,
	})
	api, _, _ := svr.CreateEndpointGroups(app)
	RegisterFormat(api, Format{
		FormatService: service.NewFormat(engine),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestFormatController(t *testing.T) {
	t.Run("formats supported language", func(t *testing.T) {
		engine := &fakeFormatterEngine{result: "const a = 1;\n"}
		app := newFormatTestApp(engine)

		resp := postJSON(t, app, "/api/format", `{"code":"const a=1","language":"javascript"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "const a = 1;\n", body["formattedCode"])
		assert.Equal(t, true, body["success"])

		assert.Equal(t, "const a=1", engine.lastCode)
		assert.Equal(t, "babel", engine.lastParser)
	})

	t.Run("rejects unsupported language with supported set", func(t *testing.T) {
		engine := &fakeFormatterEngine{result: "unused"}
		app := newFormatTestApp(engine)

		resp := postJSON(t, app, "/api/format", `{"code":"PRINT 1","language":"cobol"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.NotEmpty(t, body["error"])
		assert.Equal(t, []any{"javascript", "typescript", "json", "html", "css"}, body["supportedLanguages"])

		// the delegate must never see an unsupported language
		assert.Empty(t, engine.lastParser)
	})

	t.Run("rejects missing code", func(t *testing.T) {
		app := newFormatTestApp(&fakeFormatterEngine{})

		resp := postJSON(t, app, "/api/format", `{"language":"javascript"}`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.NotContains(t, body, "supportedLanguages")
	})

	t.Run("rejects malformed json body", func(t *testing.T) {
		app := newFormatTestApp(&fakeFormatterEngine{})

		resp := postJSON(t, app, "/api/format", `{"code":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
	})

	t.Run("surfaces engine failure as server error", func(t *testing.T) {
		engine := &fakeFormatterEngine{err: errors.New("SyntaxError: unexpected token (1:9)")}
		app := newFormatTestApp(engine)

		resp := postJSON(t, app, "/api/format", `{"code":"const a =","language":"javascript"}`)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["error"], "failed to format code")
	})
}
