package platform

import (
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

// SDK levels the composer distinguishes.
const (
	SDKKitKat      = 19
	SDKKitKatWatch = 20
	SDKLollipop    = 21
)

// Tier is an ordered classification of the SDK level.
type Tier int

const (
	TierPreKitKat Tier = iota
	TierKitKat
	TierKitKatWatch
	TierLollipop
	// TierPostLollipop covers every SDK level above Lollipop. No Chrome
	// version is known for it.
	TierPostLollipop
)

var tierNames = map[Tier]string{
	TierPreKitKat:    "pre-kitkat",
	TierKitKat:       "kitkat",
	TierKitKatWatch:  "kitkat-watch",
	TierLollipop:     "lollipop",
	TierPostLollipop: "post-lollipop",
}

var kitKatPatch = regexp.MustCompile(`^4\.4\.(\d+)$`)

func TierFromSDK(sdk int) Tier {
	switch {
	case sdk < SDKKitKat:
		return TierPreKitKat
	case sdk == SDKKitKat:
		return TierKitKat
	case sdk == SDKKitKatWatch:
		return TierKitKatWatch
	case sdk == SDKLollipop:
		return TierLollipop
	default:
		return TierPostLollipop
	}
}

func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "tier(" + strconv.Itoa(int(t)) + ")"
}

// ParseKitKatPatch returns the patch number of a "4.4.<patch>" release.
func ParseKitKatPatch(release string) (int, error) {
	match := kitKatPatch.FindStringSubmatch(release)
	if match == nil {
		return 0, errors.Errorf("release %q is not a 4.4.<patch> release", release)
	}

	patch, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, errors.Wrapf(err, "invalid patch number in release %q", release)
	}
	return patch, nil
}
