package app

import (
	"log"

	"github.com/rs/zerolog"

	"github.com/quasar/android-useragent/pkg/configuration"
	"github.com/quasar/android-useragent/pkg/webkit"
)

type Opts func(engine *Engine)

func WithLogger(logger *log.Logger) Opts {
	return func(engine *Engine) {
		console := &zerolog.ConsoleWriter{
			Out:        logger.Writer(),
			NoColor:    true,
			PartsOrder: []string{zerolog.MessageFieldName},
		}
		log := zerolog.New(console)
		engine.logger = &log
	}
}

func WithConfiguration(config configuration.Configuration) Opts {
	return func(engine *Engine) {
		engine.config = config
	}
}

func WithZeroLogger(logger *zerolog.Logger) Opts {
	return func(engine *Engine) {
		engine.logger = logger
	}
}

func WithResolver(resolver *webkit.Resolver) Opts {
	return func(engine *Engine) {
		engine.resolver = resolver
	}
}
