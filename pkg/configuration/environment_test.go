package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadEnvFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "device.env")
	content := "ANDROID_RELEASE=4.4.4\nANDROID_MODEL=\"Nexus 7\"\nANDROID_BUILD_ID=KTU84P\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	// variables already present are kept
	t.Setenv("ANDROID_BUILD_ID", "KOT49H")
	t.Setenv("ANDROID_RELEASE", "")
	os.Unsetenv("ANDROID_RELEASE")
	t.Setenv("ANDROID_MODEL", "")
	os.Unsetenv("ANDROID_MODEL")

	require.NoError(t, LoadEnvFile(file))

	config := NewInMemory()
	assert.Equal(t, "4.4.4", config.GetString(ANDROID_RELEASE))
	assert.Equal(t, "Nexus 7", config.GetString(ANDROID_MODEL))
	assert.Equal(t, "KOT49H", config.GetString(ANDROID_BUILD_ID))
}

func Test_LoadEnvFile_Missing(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}
