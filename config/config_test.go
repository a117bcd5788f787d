package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GEMINI_IMAGE_MODEL", "GEMINI_TEXT_MODEL", "JWT_SECRET", "LOG_LEVEL",
		"NOTIFICATION_DURATION", "GENERATION_TIMEOUT", "FEEDBACK_TIMEOUT", "SESSION_IDLE_TIMEOUT", "MAX_UPLOAD_BYTES"} {
		t.Setenv(key, "")
	}

	LoadConfig()

	assert.Equal(t, "8080", Port)
	assert.Equal(t, "gemini-2.5-flash-image-preview", GeminiImageModel)
	assert.Equal(t, "gemini-2.5-flash", GeminiTextModel)
	assert.Empty(t, JWTSecret)
	assert.Equal(t, "info", LogLevel)
	assert.Equal(t, 2500*time.Millisecond, NotificationDuration)
	assert.Equal(t, 5*time.Minute, GenerationTimeout)
	assert.Equal(t, time.Minute, FeedbackTimeout)
	assert.Equal(t, 30*time.Minute, SessionIdleTimeout)
	assert.Equal(t, int64(10<<20), MaxUploadBytes)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("NOTIFICATION_DURATION", "1s")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("FEEDBACK_TIMEOUT", "not-a-duration")

	LoadConfig()

	assert.Equal(t, "9090", Port)
	assert.Equal(t, "s3cret", JWTSecret)
	assert.Equal(t, time.Second, NotificationDuration)
	assert.Equal(t, int64(2048), MaxUploadBytes)
	assert.Equal(t, time.Minute, FeedbackTimeout)
}
