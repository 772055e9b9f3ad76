package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/codeshare-dev/backend/cmd/app/server"
	"github.com/codeshare-dev/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "codeshare",
		Description: "The CodeShare backend. Formats, highlights and persists code snippets. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
