package middleware

import (
	"net/http"

	"github.com/quasar/android-useragent/pkg/platform"
	"github.com/quasar/android-useragent/pkg/useragent"
)

// UserAgentMiddleware sets the composed user agent on every outgoing request.
type UserAgentMiddleware struct {
	next     http.RoundTripper
	composer *useragent.Composer
	facts    platform.Facts
}

func NewUserAgentMiddleware(
	roundTripper http.RoundTripper,
	composer *useragent.Composer,
	facts platform.Facts,
) *UserAgentMiddleware {
	return &UserAgentMiddleware{
		next:     roundTripper,
		composer: composer,
		facts:    facts,
	}
}

func (n *UserAgentMiddleware) RoundTrip(request *http.Request) (*http.Response, error) {
	if n.composer == nil {
		return n.next.RoundTrip(request)
	}

	newRequest := request.Clone(request.Context())
	newRequest.Header.Set("User-Agent", n.composer.Compose(n.facts))

	return n.next.RoundTrip(newRequest)
}
