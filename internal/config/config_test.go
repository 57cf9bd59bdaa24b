package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SESSION_SECRET", "keyboard cat")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, "influencehub", cfg.Mongo.Database)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "https://www.googleapis.com/youtube/v3", cfg.YouTube.BaseURL)
	assert.Len(t, cfg.AI.MockIDs, 4)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")
	t.Setenv("SESSION_SECRET", "keyboard cat")

	_, err := Load("testdata/does-not-exist.env")
	assert.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("SESSION_SECRET", "s")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("PORT", "9000")
	t.Setenv("AI_MATCHER_MOCK_IDS", "a,b")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, uint16(9000), cfg.Port)
	assert.Equal(t, []string{"a", "b"}, cfg.AI.MockIDs)
}

func TestLoggerLevels(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, Logger{Level: "DEBUG"}.ZapLevel())
	assert.Equal(t, zapcore.WarnLevel, Logger{Level: "warning"}.ZapLevel())
	assert.Equal(t, zapcore.InfoLevel, Logger{Level: "nope"}.ZapLevel())
	assert.Equal(t, "console", Logger{Format: "Console"}.ZapFormat())
	assert.Equal(t, "json", Logger{Format: "text"}.ZapFormat())
}
