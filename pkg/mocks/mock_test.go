package mocks

import (
	"github.com/quasar/android-useragent/pkg/platform"
)

var _ platform.Facts = (*MockFacts)(nil)
