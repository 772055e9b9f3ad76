package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
)

type fakeFormatterEngine struct {
	gotCode   string
	gotParser string
	out       string
	err       error
}

func (f *fakeFormatterEngine) Format(ctx context.Context, code string, parser string) (string, error) {
	f.gotCode = code
	f.gotParser = parser
	return f.out, f.err
}

func TestFormatSelectsParserFromRegistry(t *testing.T) {
	engine := &fakeFormatterEngine{out: "const x = 1;\n"}
	s := NewFormat(engine)

	formatted, err := s.Format(context.Background(), "const x=1", language.JavaScript)
	require.NoError(t, err)
	assert.Equal(t, "const x = 1;\n", formatted)
	assert.Equal(t, "const x=1", engine.gotCode)
	assert.Equal(t, "babel", engine.gotParser)
}

func TestFormatSurfacesEngineFailure(t *testing.T) {
	engine := &fakeFormatterEngine{err: errors.New("prettier: SyntaxError: Unexpected token (1:9)")}
	s := NewFormat(engine)

	_, err := s.Format(context.Background(), "{invalid json", language.JSON)
	require.Error(t, err)

	e, ok := err.(*cserr.CodeShareError)
	require.True(t, ok, "expected a *cserr.CodeShareError, got %T", err)
	assert.Equal(t, cserr.CodeFormatFailed, e.ErrorCode)
	assert.Equal(t, 500, e.StatusCode)
	assert.Contains(t, e.Message, "SyntaxError")
}
