package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetters(t *testing.T) {
	t.Setenv("CM_TEST_INT", "42")
	t.Setenv("CM_TEST_BAD_INT", "forty-two")
	t.Setenv("CM_TEST_DURATION", "3s")
	t.Setenv("CM_TEST_BOOL", "true")
	t.Setenv("CM_TEST_EMPTY", "")

	assert.Equal(t, 42, GetIntDefault("CM_TEST_INT", 1))
	assert.Equal(t, 1, GetIntDefault("CM_TEST_BAD_INT", 1))
	assert.Equal(t, 7, GetIntDefault("CM_TEST_MISSING", 7))
	assert.Equal(t, 3*time.Second, GetDurationDefault("CM_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, GetDurationDefault("CM_TEST_MISSING", time.Second))
	assert.True(t, GetBoolDefault("CM_TEST_BOOL", false))
	assert.Equal(t, "fallback", GetDefault("CM_TEST_EMPTY", "fallback"))
	assert.Equal(t, "", Get("CM_TEST_MISSING"))
}

func TestLoadDoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("CM_TEST_FROM_FILE=file\nCM_TEST_PRESET=file\n"), 0o600))

	t.Setenv("CM_TEST_PRESET", "process")
	t.Cleanup(func() { os.Unsetenv("CM_TEST_FROM_FILE") })

	require.NoError(t, Load(file))

	assert.Equal(t, "file", Get("CM_TEST_FROM_FILE"))
	assert.Equal(t, "process", Get("CM_TEST_PRESET"))
}
