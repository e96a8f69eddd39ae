package table

import (
	"github.com/arloliu/codetable/internal/options"
	"github.com/rs/zerolog"
)

type loadConfig struct {
	logger zerolog.Logger
	strict bool
}

func newLoadConfig() *loadConfig {
	return &loadConfig{
		logger: zerolog.Nop(),
	}
}

// LoadOption configures table loading.
type LoadOption = options.Option[*loadConfig]

// WithLogger sets the logger used while loading.
//
// Loading logs a debug summary and one warning per Validate violation.
// The default logger discards everything.
func WithLogger(logger zerolog.Logger) LoadOption {
	return options.NoError(func(c *loadConfig) {
		c.logger = logger
	})
}

// WithStrict makes loading fail with the Validate error when the table breaks an invariant.
func WithStrict(strict bool) LoadOption {
	return options.NoError(func(c *loadConfig) {
		c.strict = strict
	})
}
