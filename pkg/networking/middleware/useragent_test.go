package middleware

import (
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/quasar/android-useragent/pkg/platform"
	"github.com/quasar/android-useragent/pkg/useragent"
)

func aComposer() *useragent.Composer {
	logger := zerolog.Nop()
	return useragent.NewComposer(useragent.WithLogger(&logger))
}

func Test_Request_UserAgentSet(t *testing.T) {
	capturer := &HeaderCaptureMiddleware{}
	composer := aComposer()
	facts := platform.New(platform.WithRelease("4.4.4"), platform.WithSDK(platform.SDKKitKat), platform.WithModel("Nexus 5"), platform.WithBuildID("KTU84P"))
	mw := NewUserAgentMiddleware(capturer, composer, facts)

	req, err := http.NewRequest("GET", "https://example.com", nil)
	assert.NoError(t, err)
	req.Header.Set("User-Agent", "Go-http-client/1.1")
	_, err = mw.RoundTrip(req)
	assert.NoError(t, err)

	expected := "Mozilla/5.0 (Linux; Android 4.4.4; Nexus 5; Build/KTU84P) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/33.0.0.0 Mobile Safari/537.36"
	assert.Equal(t, expected, capturer.CapturedHeaders["User-Agent"])

	// the caller's request is left untouched
	assert.Equal(t, "Go-http-client/1.1", req.Header.Get("User-Agent"))
}

func Test_Request_NoComposer(t *testing.T) {
	capturer := &HeaderCaptureMiddleware{}
	mw := NewUserAgentMiddleware(capturer, nil, nil)

	req, err := http.NewRequest("GET", "https://example.com", nil)
	assert.NoError(t, err)
	_, err = mw.RoundTrip(req)
	assert.NoError(t, err)

	assert.Empty(t, capturer.CapturedHeaders["User-Agent"])
}
