package app

import (
	"io"
	"log"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/quasar/android-useragent/pkg/configuration"
	"github.com/quasar/android-useragent/pkg/networking"
	"github.com/quasar/android-useragent/pkg/platform"
	"github.com/quasar/android-useragent/pkg/useragent"
	"github.com/quasar/android-useragent/pkg/webkit"
)

const unknownValue = "unknown"

// Engine ties the configuration, logger and composer of an application together.
type Engine struct {
	config   configuration.Configuration
	logger   *zerolog.Logger
	resolver *webkit.Resolver
	composer *useragent.Composer
	network  networking.NetworkAccess
}

// initConfiguration initializes the configuration with initial values.
func initConfiguration(config configuration.Configuration, logger *zerolog.Logger) {
	if logger == nil {
		logger = &zlog.Logger
	}

	config.AddDefaultValue(configuration.ANDROID_SDK, configuration.StandardDefaultValueFunction(0))
	config.AddDefaultValue(configuration.ANDROID_MODEL, nonEmptyDefault(unknownValue))
	config.AddDefaultValue(configuration.ANDROID_BUILD_ID, nonEmptyDefault(unknownValue))
	config.AddDefaultValue(configuration.ANDROID_LARGE_FORM_FACTOR, configuration.StandardDefaultValueFunction(false))
	config.AddDefaultValue(configuration.DEBUG, configuration.StandardDefaultValueFunction(false))

	config.AddDefaultValue(configuration.LOG_LEVEL, func(existingValue any) any {
		if config.GetBool(configuration.DEBUG) {
			return zerolog.DebugLevel.String()
		}

		if existingValue != nil {
			if temp, ok := existingValue.(string); ok && temp != "" {
				if _, err := zerolog.ParseLevel(temp); err != nil {
					logger.Print("Failed to parse \"LOG_LEVEL\":", err)
				} else {
					return temp
				}
			}
		}

		return zerolog.InfoLevel.String()
	})
}

func nonEmptyDefault(defaultValue string) configuration.DefaultValueFunction {
	return func(existingValue any) any {
		if temp, ok := existingValue.(string); ok && temp != "" {
			return temp
		}
		return defaultValue
	}
}

// CreateAppEngine creates a new engine reading the default configuration.
func CreateAppEngine() *Engine {
	discardLogger := log.New(io.Discard, "", 0)
	return CreateAppEngineWithOptions(WithConfiguration(configuration.New()), WithLogger(discardLogger))
}

func CreateAppEngineWithOptions(opts ...Opts) *Engine {
	engine := &Engine{}

	for _, opt := range opts {
		opt(engine)
	}

	if engine.config == nil {
		engine.config = configuration.NewInMemory()
	}
	if engine.logger == nil {
		engine.logger = &zlog.Logger
	}
	if engine.resolver == nil {
		engine.resolver = webkit.DefaultResolver()
	}

	initConfiguration(engine.config, engine.logger)

	level, err := zerolog.ParseLevel(engine.config.GetString(configuration.LOG_LEVEL))
	if err == nil {
		logger := engine.logger.Level(level)
		engine.logger = &logger
	}

	engine.composer = useragent.NewComposer(
		useragent.WithResolver(engine.resolver),
		useragent.WithLogger(engine.logger),
	)
	engine.network = networking.NewNetworkAccess(engine.config, engine.composer, networking.WithLogger(engine.logger))
	return engine
}

func (e *Engine) GetConfiguration() configuration.Configuration {
	return e.config
}

func (e *Engine) GetLogger() *zerolog.Logger {
	return e.logger
}

func (e *Engine) GetComposer() *useragent.Composer {
	return e.composer
}

func (e *Engine) GetNetworkAccess() networking.NetworkAccess {
	return e.network
}

// GetFacts returns the platform facts described by the configuration.
func (e *Engine) GetFacts() platform.Facts {
	return platform.FromConfiguration(e.config)
}

// UserAgent returns the composed user agent for the configured platform.
func (e *Engine) UserAgent() string {
	return e.composer.Compose(e.GetFacts())
}
