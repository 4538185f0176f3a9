package useragent

import (
	"strings"

	"github.com/quasar/android-useragent/pkg/platform"
)

const (
	mozillaCompatibility = "Mozilla/5.0"
	khtmlCompatibility   = "KHTML, like Gecko) Version/4.0"

	chromeKitKat       = "30.0.0.0"
	chromeKitKatPatch3 = "33.0.0.0"
	chromeLollipop     = "36.0.0.0"

	// first KitKat patch release shipping the Chrome 33 based WebView
	kitKatChromeUpgradePatch = 3
)

type engineVersion struct {
	version  string
	fallback bool
}

func addMozillaCompatibility(buffer *strings.Builder) {
	buffer.WriteString(mozillaCompatibility)
}

func addOperatingSystem(buffer *strings.Builder, release string, model string, buildID string) {
	buffer.WriteString(" (Linux; Android ")
	buffer.WriteString(release)
	buffer.WriteString("; ")
	buffer.WriteString(model)
	buffer.WriteString("; Build/")
	buffer.WriteString(buildID)
	buffer.WriteString(")")
}

func addWebKitVersion(buffer *strings.Builder, engine engineVersion) {
	buffer.WriteString(" AppleWebKit/")
	buffer.WriteString(engine.version)
	if engine.fallback {
		buffer.WriteString(" (default, ")
	} else {
		buffer.WriteString(" (")
	}
	buffer.WriteString(khtmlCompatibility)
}

func (c *Composer) addChromeVersion(buffer *strings.Builder, tier platform.Tier, release string) {
	var version string

	switch tier {
	case platform.TierPreKitKat:
		return
	case platform.TierKitKat:
		version = c.kitKatChromeVersion(release)
	case platform.TierKitKatWatch, platform.TierLollipop, platform.TierPostLollipop:
		version = c.chromeVersions[tier]
	}

	if version == "" {
		return
	}

	buffer.WriteString(" Chrome/")
	buffer.WriteString(version)
}

func (c *Composer) kitKatChromeVersion(release string) string {
	patch, err := platform.ParseKitKatPatch(release)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Can't determine KitKat patch version")
		patch = 0
	}

	if patch >= kitKatChromeUpgradePatch {
		return chromeKitKatPatch3
	}
	return chromeKitKat
}

func addDeviceType(buffer *strings.Builder, largeFormFactor bool) {
	if !largeFormFactor {
		buffer.WriteString(" Mobile")
	}
}

func addSafariVersion(buffer *strings.Builder, engine engineVersion) {
	buffer.WriteString(" Safari/")
	buffer.WriteString(engine.version)
	if engine.fallback {
		buffer.WriteString(" (default)")
	}
}
