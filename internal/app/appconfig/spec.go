package appconfig

import (
	"time"

	"github.com/codeshare-dev/backend/internal/app/appcontext"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address the server would listen on for serving requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9280"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout
	// for the ease of log collection.
	LogJsonStdout bool `split_words:"true" default:"false"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP
	// via the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// DevMode to indicate development mode. When true, the program would spin up utilities
	// for debugging and log at trace level.
	DevMode bool `split_words:"true"`

	// HTTPServerShutdownTimeout is the maximum time the server waits for in-flight
	// requests when shutting down.
	HTTPServerShutdownTimeout time.Duration `split_words:"true" default:"60s"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct
	// a PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	PostgresMaxOpenConns    int           `split_words:"true" default:"10"`
	PostgresMaxIdleConns    int           `split_words:"true" default:"2"`
	PostgresConnMaxLifeTime time.Duration `split_words:"true" default:"5m"`
	PostgresConnMaxIdleTime time.Duration `split_words:"true" default:"5m"`

	BunDebugVerbose bool `split_words:"true"`

	// PrettierPath is the path of the prettier binary used as the formatting engine.
	PrettierPath string `split_words:"true" default:"prettier"`

	// PrettierTimeout bounds a single formatting engine invocation.
	PrettierTimeout time.Duration `split_words:"true" default:"10s"`

	// SentryDSN is the DSN of the Sentry server. Leaving this empty disables Sentry.
	// See https://pkg.go.dev/github.com/getsentry/sentry-go#ClientOptions
	SentryDSN string `split_words:"true"`
}

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}
