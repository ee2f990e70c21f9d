package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_DB", "")
	t.Setenv("FEATURE_PARENT_CHILD", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 0, cfg.Redis.DB)
	require.False(t, cfg.Features.ParentChild)
	require.Equal(t, 10*time.Second, cfg.Profile.Timeout())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FEATURE_PARENT_CHILD", "true")
	t.Setenv("PROFILE_API_TIMEOUT_SECONDS", "2")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, 3, cfg.Redis.DB)
	require.True(t, cfg.Features.ParentChild)
	require.Equal(t, 2*time.Second, cfg.Profile.Timeout())
	require.Zero(t, cfg.App.RequestTimeout())
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}

func TestGetEnvAsBool_FallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_FLAG", "maybe")
	require.True(t, getEnvAsBool("SOME_FLAG", true))
}
