package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quasar/android-useragent/pkg/configuration"
)

func TestFacts_New(t *testing.T) {
	f := New()

	assert.NotNil(t, f)
	assert.Equal(t, "", f.GetRelease())
	assert.Equal(t, 0, f.GetSDK())
	assert.False(t, f.IsLargeFormFactor())
}

func TestFacts_NewWithOptions(t *testing.T) {
	f := New(
		WithRelease("4.4.2"),
		WithSDK(SDKKitKat),
		WithModel("Nexus 5"),
		WithBuildID("KOT49H"),
		WithLargeFormFactor(true),
	)

	assert.Equal(t, "4.4.2", f.GetRelease())
	assert.Equal(t, 19, f.GetSDK())
	assert.Equal(t, "Nexus 5", f.GetModel())
	assert.Equal(t, "KOT49H", f.GetBuildID())
	assert.True(t, f.IsLargeFormFactor())
}

func TestFacts_FromConfiguration(t *testing.T) {
	config := configuration.NewInMemory()
	config.Set(configuration.ANDROID_RELEASE, "5.0.2")
	config.Set(configuration.ANDROID_SDK, 21)
	config.Set(configuration.ANDROID_MODEL, "Nexus 9")
	config.Set(configuration.ANDROID_BUILD_ID, "LRX22G")
	config.Set(configuration.ANDROID_LARGE_FORM_FACTOR, true)

	f := FromConfiguration(config)

	assert.Equal(t, "5.0.2", f.GetRelease())
	assert.Equal(t, SDKLollipop, f.GetSDK())
	assert.Equal(t, "Nexus 9", f.GetModel())
	assert.Equal(t, "LRX22G", f.GetBuildID())
	assert.True(t, f.IsLargeFormFactor())
}
