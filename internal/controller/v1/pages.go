package v1

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
	"github.com/codeshare-dev/backend/internal/server/svr"
	"github.com/codeshare-dev/backend/internal/service"
)

type Pages struct {
	fx.In

	SnippetService   *service.Snippet
	HighlightService *service.Highlight
}

func RegisterPages(pages *svr.Pages, c Pages) {
	pages.Get("/c/:id", c.View)
}

type snippetPageData struct {
	Language  string
	CreatedAt string
	Code      template.HTML
}

var snippetPage = template.Must(template.New("snippet").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Language}} Snippet - CodeShare</title>
<style>
body { margin: 0; background: #111827; color: #e5e7eb; font-family: ui-sans-serif, system-ui, sans-serif; }
header { padding: 1rem 2rem; border-bottom: 1px solid #1f2937; }
header a { color: #fff; text-decoration: none; font-weight: 700; font-size: 1.25rem; }
main { max-width: 72rem; margin: 0 auto; padding: 2rem; }
.meta { display: flex; gap: 1rem; align-items: center; margin-bottom: 1rem; }
.lang { padding: 0.2rem 0.7rem; border: 1px solid #1d4ed8; border-radius: 0.5rem; color: #93c5fd; text-transform: uppercase; font-size: 0.8rem; }
.created { color: #9ca3af; font-size: 0.85rem; }
.code { border: 1px solid #374151; border-radius: 0.5rem; overflow: auto; }
.code pre { margin: 0; padding: 1rem; }
</style>
</head>
<body>
<header><a href="/">CodeShare</a></header>
<main>
<div class="meta">
<span class="lang">{{.Language}}</span>
<span class="created">Created {{.CreatedAt}}</span>
</div>
<div class="code">{{.Code}}</div>
</main>
</body>
</html>
`))

const notFoundPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Snippet Not Found - CodeShare</title>
<style>
body { margin: 0; background: #111827; color: #e5e7eb; font-family: ui-sans-serif, system-ui, sans-serif; display: flex; align-items: center; justify-content: center; min-height: 100vh; }
main { text-align: center; }
a { color: #60a5fa; }
</style>
</head>
<body>
<main>
<h1>Snippet not found</h1>
<p>The snippet you are looking for does not exist.</p>
<p><a href="/">Create a new snippet</a></p>
</main>
</body>
</html>
`

// View renders the stored formattedCode through the highlighting delegate.
// A missing snippet renders a not-found page rather than an error page; the
// view path has no failure state beyond that once the snippet is found.
func (c *Pages) View(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	snippet, err := c.SnippetService.GetById(ctx.UserContext(), id)
	if err != nil {
		if e, ok := err.(*cserr.CodeShareError); ok && e.ErrorCode == cserr.CodeNotFound {
			ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
			return ctx.Status(fiber.StatusNotFound).SendString(notFoundPage)
		}
		return err
	}

	rendered := c.HighlightService.Highlight(snippet.FormattedCode, language.Language(snippet.Language))

	data := snippetPageData{
		Language:  snippet.Language,
		CreatedAt: snippet.CreatedAt.Format("2006-01-02"),
		Code:      template.HTML(rendered),
	}

	var buf bytes.Buffer
	if err := snippetPage.Execute(&buf, data); err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.Send(buf.Bytes())
}
