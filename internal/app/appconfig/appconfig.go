package appconfig

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/codeshare-dev/backend/internal/app/appcontext"
)

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	if err := envconfig.Process("codeshare", &config); err != nil {
		_ = envconfig.Usage("codeshare", &config)
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
