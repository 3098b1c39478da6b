package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "title", cfg.View.DefaultSort)

	cfg2 := GetGlobalConfig()
	assert.Same(t, cfg, cfg2)

	ResetGlobalConfigForTest()
	cfg3 := GetGlobalConfig()
	assert.NotSame(t, cfg, cfg3)
}

func TestSetGlobalConfig(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	custom := New()
	custom.API.Endpoint = "http://localhost/posts"
	custom.Logging.Level = "debug"
	custom.Logging.File = "/tmp/postview-test.log"
	SetGlobalConfig(custom)

	assert.Same(t, custom, GetGlobalConfig())
	assert.Equal(t, "http://localhost/posts", GetEndpoint())
	assert.Equal(t, "debug", GetLogLevel())
	assert.Equal(t, "/tmp/postview-test.log", GetLogFile())
	assert.Equal(t, custom.Logging, GetLoggingConfig())
}

func TestGetConfigDir(t *testing.T) {
	t.Run("POSTVIEW_HOME", func(t *testing.T) {
		t.Setenv(EnvHome, "/custom/home")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/custom/home", dir)
	})

	t.Run("user home", func(t *testing.T) {
		tmpHome := t.TempDir()
		t.Setenv(EnvHome, "")
		t.Setenv("HOME", tmpHome)
		t.Setenv("USERPROFILE", tmpHome)

		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpHome, ".postview"), dir)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "postview")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	stat, err := os.Stat(home)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
}

func TestEnsureLogDir(t *testing.T) {
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logDir := filepath.Join(t.TempDir(), "nested", "logs")
	cfg := New()
	cfg.Logging.File = filepath.Join(logDir, "postview.log")
	SetGlobalConfig(cfg)

	require.NoError(t, EnsureLogDir())
	stat, err := os.Stat(logDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())

	cfg.Logging.File = ""
	assert.NoError(t, EnsureLogDir())
}
