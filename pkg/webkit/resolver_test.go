package webkit

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Resolve_ExactMatches(t *testing.T) {
	for release, expected := range Versions() {
		actual, err := Resolve(release)
		assert.NoError(t, err, release)
		assert.Equal(t, expected, actual, release)
	}
}

func Test_Resolve_OneLevelFallback(t *testing.T) {
	for release := range Versions() {
		for _, digit := range []string{"0", "5", "9"} {
			expected, err := Resolve(release)
			require.NoError(t, err)

			actual, err := Resolve(release + "." + digit)
			assert.NoError(t, err, release+"."+digit)
			assert.Equal(t, expected, actual, release+"."+digit)
		}
	}
}

func Test_Resolve(t *testing.T) {
	testCases := []struct {
		name     string
		release  string
		expected string
	}{
		{name: "patch falls back to minor", release: "4.2.5", expected: "534.30"},
		{name: "two digit patch", release: "4.4.10", expected: DefaultVersion},
		{name: "two levels", release: "4.2.2.1", expected: "534.30"},
		{name: "suffixed key", release: "2.1-update1", expected: "530.17"},
		{name: "lollipop", release: "5.0.2", expected: DefaultVersion},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := Resolve(tc.release)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_Resolve_NotFound(t *testing.T) {
	for _, release := range []string{"7", "9.9", "", "4.4a", "9.9-beta", ".5", "5.1.1"} {
		t.Run(release, func(t *testing.T) {
			actual, err := Resolve(release)
			assert.Empty(t, actual)
			assert.True(t, errors.Is(err, ErrNotFound))
			assert.Equal(t, ErrNotFound, errors.Cause(err))
		})
	}
}

func Test_Resolve_WithTable(t *testing.T) {
	table := map[string]string{"6.0": "537.36", "7": "600.1"}
	resolver := NewResolver(WithTable(table))
	table["8.0"] = "601.1"

	actual, err := resolver.Resolve("6.0.1")
	assert.NoError(t, err)
	assert.Equal(t, "537.36", actual)

	actual, err = resolver.Resolve("7")
	assert.NoError(t, err)
	assert.Equal(t, "600.1", actual)

	_, err = resolver.Resolve("8.0")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = resolver.Resolve("4.2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func Test_Versions_ReturnsCopy(t *testing.T) {
	versions := Versions()
	versions["4.2"] = "1.0"

	actual, err := Resolve("4.2")
	assert.NoError(t, err)
	assert.Equal(t, "534.30", actual)
}
