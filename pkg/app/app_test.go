package app

import (
	"bytes"
	"log"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/quasar/android-useragent/pkg/configuration"
	"github.com/quasar/android-useragent/pkg/webkit"
)

func Test_CreateAppEngine_Defaults(t *testing.T) {
	config := configuration.NewInMemory()
	engine := CreateAppEngineWithOptions(WithConfiguration(config))

	assert.Equal(t, config, engine.GetConfiguration())
	assert.NotNil(t, engine.GetComposer())
	assert.NotNil(t, engine.GetNetworkAccess())

	assert.Equal(t, "unknown", config.GetString(configuration.ANDROID_MODEL))
	assert.Equal(t, "unknown", config.GetString(configuration.ANDROID_BUILD_ID))
	assert.Equal(t, 0, config.GetInt(configuration.ANDROID_SDK))
	assert.False(t, config.GetBool(configuration.ANDROID_LARGE_FORM_FACTOR))
	assert.Equal(t, "info", config.GetString(configuration.LOG_LEVEL))
	assert.Equal(t, zerolog.InfoLevel, engine.GetLogger().GetLevel())
}

func Test_CreateAppEngine_UserAgent(t *testing.T) {
	config := configuration.NewInMemory()
	config.Set(configuration.ANDROID_RELEASE, "4.4.2")
	config.Set(configuration.ANDROID_SDK, 19)
	config.Set(configuration.ANDROID_MODEL, "Nexus 7")
	config.Set(configuration.ANDROID_BUILD_ID, "KOT49H")
	config.Set(configuration.ANDROID_LARGE_FORM_FACTOR, true)

	engine := CreateAppEngineWithOptions(WithConfiguration(config), WithLogger(log.New(&bytes.Buffer{}, "", 0)))

	expected := "Mozilla/5.0 (Linux; Android 4.4.2; Nexus 7; Build/KOT49H) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/30.0.0.0 Safari/537.36"
	assert.Equal(t, expected, engine.UserAgent())
	assert.Equal(t, expected, engine.GetNetworkAccess().GetUserAgent())
	assert.Equal(t, "Nexus 7", engine.GetFacts().GetModel())
}

func Test_CreateAppEngine_LogLevel(t *testing.T) {
	config := configuration.NewInMemory()
	config.Set(configuration.LOG_LEVEL, "warn")
	engine := CreateAppEngineWithOptions(WithConfiguration(config))
	assert.Equal(t, zerolog.WarnLevel, engine.GetLogger().GetLevel())

	config = configuration.NewInMemory()
	config.Set(configuration.LOG_LEVEL, "warn")
	config.Set(configuration.DEBUG, true)
	engine = CreateAppEngineWithOptions(WithConfiguration(config))
	assert.Equal(t, zerolog.DebugLevel, engine.GetLogger().GetLevel())

	config = configuration.NewInMemory()
	config.Set(configuration.LOG_LEVEL, "loud")
	engine = CreateAppEngineWithOptions(WithConfiguration(config))
	assert.Equal(t, zerolog.InfoLevel, engine.GetLogger().GetLevel())
}

func Test_CreateAppEngine_WithResolver(t *testing.T) {
	config := configuration.NewInMemory()
	config.Set(configuration.ANDROID_RELEASE, "6.0.1")
	config.Set(configuration.ANDROID_SDK, 23)
	resolver := webkit.NewResolver(webkit.WithTable(map[string]string{"6.0": "537.36"}))
	logger := zerolog.Nop()

	engine := CreateAppEngineWithOptions(WithConfiguration(config), WithResolver(resolver), WithZeroLogger(&logger))

	assert.Contains(t, engine.UserAgent(), "AppleWebKit/537.36 (KHTML")
	assert.NotContains(t, engine.UserAgent(), "default")
}
