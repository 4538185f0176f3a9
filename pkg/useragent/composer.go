package useragent

import (
	"strings"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/quasar/android-useragent/pkg/platform"
	"github.com/quasar/android-useragent/pkg/webkit"
)

type Option func(c *Composer)

// Composer builds the user agent of an Android WebView-like client and
// remembers the first result for its lifetime.
type Composer struct {
	resolver       *webkit.Resolver
	logger         *zerolog.Logger
	chromeVersions map[platform.Tier]string
	cache          *Cache
}

var defaultComposer = NewComposer()

func WithResolver(resolver *webkit.Resolver) Option {
	return func(c *Composer) {
		c.resolver = resolver
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithChromeVersions sets the Chrome version emitted for the given tiers.
// KitKat is always decided by its patch number and pre-KitKat never carries
// a Chrome token, so entries for those tiers are ignored.
func WithChromeVersions(versions map[platform.Tier]string) Option {
	return func(c *Composer) {
		for tier, version := range versions {
			c.chromeVersions[tier] = version
		}
	}
}

func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		resolver: webkit.DefaultResolver(),
		logger:   &zlog.Logger,
		chromeVersions: map[platform.Tier]string{
			platform.TierLollipop: chromeLollipop,
		},
		cache: NewCache(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = &zlog.Logger
	}
	if c.resolver == nil {
		c.resolver = webkit.DefaultResolver()
	}

	return c
}

// Default returns the process wide composer.
func Default() *Composer {
	return defaultComposer
}

// Compose returns the user agent of the process wide composer.
func Compose(facts platform.Facts) string {
	return defaultComposer.Compose(facts)
}

// Compose returns the user agent for facts. Only the first call builds it;
// later calls return that first result even if facts differ.
func (c *Composer) Compose(facts platform.Facts) string {
	return c.cache.GetOrBuild(func() string {
		return c.Build(facts)
	})
}

// Reset forgets the remembered user agent.
func (c *Composer) Reset() {
	c.cache.Reset()
}

// Build composes the user agent for facts without consulting the cache.
func (c *Composer) Build(facts platform.Facts) string {
	release := facts.GetRelease()
	engine := c.resolveEngine(release)
	tier := platform.TierFromSDK(facts.GetSDK())

	buffer := &strings.Builder{}
	addMozillaCompatibility(buffer)
	addOperatingSystem(buffer, release, facts.GetModel(), facts.GetBuildID())
	addWebKitVersion(buffer, engine)
	c.addChromeVersion(buffer, tier, release)
	addDeviceType(buffer, facts.IsLargeFormFactor())
	addSafariVersion(buffer, engine)

	result := buffer.String()
	c.logger.Debug().Str("tier", tier.String()).Str("userAgent", result).Msg("composed user agent")
	return result
}

func (c *Composer) resolveEngine(release string) engineVersion {
	version, err := c.resolver.Resolve(release)
	if err != nil {
		c.logger.Debug().Err(err).Msg("using default webkit version")
		return engineVersion{version: webkit.DefaultVersion, fallback: true}
	}
	return engineVersion{version: version}
}
