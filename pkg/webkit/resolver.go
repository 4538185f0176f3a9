package webkit

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNotFound is returned when no table entry matches a release, even after
// trailing patch segments have been stripped.
var ErrNotFound = errors.New("webkit version not found")

type ResolverOption func(r *Resolver)

// Resolver looks up WebKit versions for Android releases.
type Resolver struct {
	table map[string]string
}

var defaultResolver = NewResolver()

// WithTable replaces the lookup table. The map is copied.
func WithTable(table map[string]string) ResolverOption {
	return func(r *Resolver) {
		r.table = make(map[string]string, len(table))
		for k, v := range table {
			r.table[k] = v
		}
	}
}

func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{table: versionTable}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// DefaultResolver returns the resolver backed by the built-in table.
func DefaultResolver() *Resolver {
	return defaultResolver
}

// Resolve returns the WebKit version for the given release.
// An exact match wins. Otherwise a single trailing numeric segment is
// stripped ("4.2.5" -> "4.2") and the lookup is retried until a match is
// found or only a bare integer is left, which never matches.
func (r *Resolver) Resolve(version string) (string, error) {
	candidate := version
	for {
		if result, ok := r.table[candidate]; ok {
			return result, nil
		}

		if isBareInteger(candidate) {
			break
		}

		shortened, ok := stripPatchSegment(candidate)
		if !ok {
			break
		}
		candidate = shortened
	}

	return "", errors.Wrapf(ErrNotFound, "release %q", version)
}

// Resolve resolves the release using DefaultResolver.
func Resolve(version string) (string, error) {
	return defaultResolver.Resolve(version)
}

// stripPatchSegment removes the trailing ".<digits>" of version.
func stripPatchSegment(version string) (string, bool) {
	idx := strings.LastIndex(version, ".")
	if idx <= 0 {
		return "", false
	}

	if !isBareInteger(version[idx+1:]) {
		return "", false
	}

	return version[:idx], true
}

func isBareInteger(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
