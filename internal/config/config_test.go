package config

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, 600.0, cfg.Dispatch.FallbackRadiusKm)
	assert.Equal(t, int64(100), cfg.Dispatch.FallbackRunTime)
	assert.False(t, cfg.Assets.Enabled())
	assert.Equal(t, 15*time.Minute, cfg.Assets.PresignTTL)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("DISPATCH_TIMEZONE", "Asia/Kolkata")
	t.Setenv("DISPATCH_FALLBACK_ASSETS", "memes/a.jpg,memes/b.jpg")
	t.Setenv("ASSETS_BUCKET", "creatives")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, []string{"memes/a.jpg", "memes/b.jpg"}, cfg.Dispatch.FallbackAssets)
	assert.True(t, cfg.Assets.Enabled())

	loc, err := cfg.Dispatch.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestLoggerTagsRecords(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_SERVICE", "mooh-ads-test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mooh-ads-test", cfg.Log.Service)
	assert.False(t, cfg.Log.AddSource)

	var buf bytes.Buffer
	cfg.Log.NewLogger(&buf, "dev").Debug("hidden")
	cfg.Log.NewLogger(&buf, "dev").Info("campaign dispatched", slog.Int64("campaign_id", 3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "campaign dispatched", rec["msg"])
	assert.Equal(t, "mooh-ads-test", rec["service"])
	assert.Equal(t, "dev", rec["env"])
	assert.Equal(t, float64(3), rec["campaign_id"])
}
