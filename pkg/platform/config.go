package platform

import (
	"github.com/quasar/android-useragent/pkg/configuration"
)

// FromConfiguration reads the platform facts from the given configuration.
func FromConfiguration(config configuration.Configuration) Facts {
	return New(
		WithRelease(config.GetString(configuration.ANDROID_RELEASE)),
		WithSDK(config.GetInt(configuration.ANDROID_SDK)),
		WithModel(config.GetString(configuration.ANDROID_MODEL)),
		WithBuildID(config.GetString(configuration.ANDROID_BUILD_ID)),
		WithLargeFormFactor(config.GetBool(configuration.ANDROID_LARGE_FORM_FACTOR)),
	)
}
