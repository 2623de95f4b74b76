//go:build unit

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronniefr/Weather-web-app/internal/config"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, 100*time.Millisecond, cfg.Weather.SimulatedLatency)
	assert.Equal(t, "./web/static", cfg.Client.StaticDir)
	assert.Equal(t, "*", cfg.Client.AllowedOrigin)
	assert.Equal(t, "./log/weather-web-app.log", cfg.LogsPath)
	assert.Equal(t, "./log/access.log", cfg.AccessLogPath)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_MODE", "debug")
	t.Setenv("WEATHER_SIMULATED_LATENCY", "0s")
	t.Setenv("CLIENT_ALLOWED_ORIGIN", "http://localhost:3000")

	cfg, err := config.NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, time.Duration(0), cfg.Weather.SimulatedLatency)
	assert.Equal(t, "http://localhost:3000", cfg.Client.AllowedOrigin)
	assert.Equal(t, "127.0.0.1:9090", cfg.ServerAddress())
}

func TestNewConfig_RejectsMalformedDuration(t *testing.T) {
	t.Setenv("WEATHER_SIMULATED_LATENCY", "not-a-duration")

	_, err := config.NewConfig()
	require.Error(t, err)
}
