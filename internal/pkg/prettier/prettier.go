// Package prettier adapts the prettier CLI as the consumed formatting engine.
// The engine runs as a short-lived subprocess per invocation and retains no
// state between calls: identical input under an identical style and engine
// version yields identical output.
package prettier

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Style is the canonical formatting configuration, passed to the engine on
// every invocation. It is fixed at process start: changing any field changes
// the output baseline for every stored snippet and breaks reproducibility of
// previously formatted code.
type Style struct {
	TabWidth      int
	PrintWidth    int
	Semi          bool
	SingleQuote   bool
	TrailingComma string
	ArrowParens   string
}

// DefaultStyle matches the published format contract: 2-space indentation,
// semicolons, single quotes, es5 trailing commas, 80-column print width,
// always-parenthesized arrow parameters.
var DefaultStyle = Style{
	TabWidth:      2,
	PrintWidth:    80,
	Semi:          true,
	SingleQuote:   true,
	TrailingComma: "es5",
	ArrowParens:   "always",
}

// Args renders the style as prettier CLI flags.
func (s Style) Args() []string {
	args := []string{
		"--tab-width", strconv.Itoa(s.TabWidth),
		"--print-width", strconv.Itoa(s.PrintWidth),
		"--trailing-comma", s.TrailingComma,
		"--arrow-parens", s.ArrowParens,
	}
	if s.Semi {
		args = append(args, "--semi")
	} else {
		args = append(args, "--no-semi")
	}
	if s.SingleQuote {
		args = append(args, "--single-quote")
	}
	return args
}

type Engine struct {
	bin     string
	timeout time.Duration
	style   Style
}

func New(bin string, timeout time.Duration, style Style) *Engine {
	return &Engine{
		bin:     bin,
		timeout: timeout,
		style:   style,
	}
}

// Format pipes code through the prettier subprocess with the engine's fixed
// style and the given parser. A non-zero exit surfaces the engine diagnostic;
// malformed input is never silently recovered into a partial format.
func (e *Engine) Format(ctx context.Context, code string, parser string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	args := append([]string{"--parser", parser, "--no-config"}, e.style.Args()...)
	cmd := exec.CommandContext(ctx, e.bin, args...)
	cmd.Stdin = strings.NewReader(code)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if diag := firstLine(stderr.String()); diag != "" {
			return "", errors.Errorf("prettier: %s", diag)
		}
		return "", errors.Wrap(err, "prettier")
	}

	return stdout.String(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
