package networking

import (
	"net/http"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/quasar/android-useragent/pkg/configuration"
	"github.com/quasar/android-useragent/pkg/networking/middleware"
	"github.com/quasar/android-useragent/pkg/platform"
	"github.com/quasar/android-useragent/pkg/useragent"
)

type NetworkAccess interface {
	GetUserAgent() string
	GetRoundtripper() http.RoundTripper
	GetHttpClient() *http.Client
}

type NetworkImpl struct {
	config    configuration.Configuration
	composer  *useragent.Composer
	logger    *zerolog.Logger
	transport http.RoundTripper
}

type Opt func(n *NetworkImpl)

// WithTransport replaces the transport requests are finally sent with.
func WithTransport(transport http.RoundTripper) Opt {
	return func(n *NetworkImpl) {
		n.transport = transport
	}
}

func WithLogger(logger *zerolog.Logger) Opt {
	return func(n *NetworkImpl) {
		n.logger = logger
	}
}

func NewNetworkAccess(config configuration.Configuration, composer *useragent.Composer, opts ...Opt) NetworkAccess {
	n := &NetworkImpl{
		config:    config,
		composer:  composer,
		logger:    &zlog.Logger,
		transport: http.DefaultTransport,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// GetUserAgent returns the user agent for the platform facts of the configuration.
func (n *NetworkImpl) GetUserAgent() string {
	return n.composer.Compose(platform.FromConfiguration(n.config))
}

func (n *NetworkImpl) GetRoundtripper() http.RoundTripper {
	facts := platform.FromConfiguration(n.config)
	uaMiddleware := middleware.NewUserAgentMiddleware(n.transport, n.composer, facts)
	return &loggingRoundTripper{next: uaMiddleware, logger: n.logger}
}

func (n *NetworkImpl) GetHttpClient() *http.Client {
	return &http.Client{
		Transport: n.GetRoundtripper(),
	}
}
