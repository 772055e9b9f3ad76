package infra

import (
	"github.com/codeshare-dev/backend/internal/app/appconfig"
	"github.com/codeshare-dev/backend/internal/pkg/chromahl"
	"github.com/codeshare-dev/backend/internal/pkg/prettier"
	"github.com/codeshare-dev/backend/internal/service"
)

// FormatterEngine wires the prettier subprocess adapter as the consumed
// formatting engine. The style is fixed here, once, at process start.
func FormatterEngine(conf *appconfig.Config) service.FormatterEngine {
	return prettier.New(conf.PrettierPath, conf.PrettierTimeout, prettier.DefaultStyle)
}

// HighlighterEngine wires the chroma adapter as the consumed highlighting
// engine, with the fixed dark theme.
func HighlighterEngine() service.HighlighterEngine {
	return chromahl.New(chromahl.DefaultTheme)
}
