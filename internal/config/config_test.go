package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	unsetEnv(t, "LLM_API_KEY", "PORT", "VIDEO_WINDOW", "MAX_COMMENTS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "yt-key", cfg.YouTubeAPIKey)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 10, cfg.VideoWindow)
	assert.Equal(t, 50, cfg.MaxComments)
	assert.False(t, cfg.LLMEnabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("LLM_API_KEY", "llm-key")
	t.Setenv("PORT", "9090")
	t.Setenv("VIDEO_WINDOW", "5")
	t.Setenv("FETCH_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.VideoWindow)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.LLMEnabled())
}

func TestValidateRejectsNonPositiveLimits(t *testing.T) {
	cfg := &Config{YouTubeAPIKey: "k", VideoWindow: 0, MaxComments: 50}
	assert.Error(t, cfg.Validate())

	cfg = &Config{YouTubeAPIKey: "k", VideoWindow: 10, MaxComments: -1}
	assert.Error(t, cfg.Validate())

	cfg = &Config{YouTubeAPIKey: "k", VideoWindow: 10, MaxComments: 50}
	assert.NoError(t, cfg.Validate())
}
