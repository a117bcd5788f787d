package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port                 string
	GeminiAPIKey         string
	GeminiImageModel     string
	GeminiTextModel      string
	JWTSecret            string
	LogLevel             string
	NotificationDuration time.Duration
	GenerationTimeout    time.Duration
	FeedbackTimeout      time.Duration
	SessionIdleTimeout   time.Duration
	MaxUploadBytes       int64
)

// LoadConfig loads environment variables from .env file
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values or system environment variables")
	}

	Port = getEnv("PORT", "8080")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	GeminiImageModel = getEnv("GEMINI_IMAGE_MODEL", "gemini-2.5-flash-image-preview")
	GeminiTextModel = getEnv("GEMINI_TEXT_MODEL", "gemini-2.5-flash")

	// Auth is disabled when no secret is configured
	JWTSecret = os.Getenv("JWT_SECRET")

	LogLevel = getEnv("LOG_LEVEL", "info")

	NotificationDuration = getDuration("NOTIFICATION_DURATION", 2500*time.Millisecond)
	GenerationTimeout = getDuration("GENERATION_TIMEOUT", 5*time.Minute)
	FeedbackTimeout = getDuration("FEEDBACK_TIMEOUT", time.Minute)
	SessionIdleTimeout = getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute)

	MaxUploadBytes = getInt64("MAX_UPLOAD_BYTES", 10<<20)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s (%q), using %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}

func getInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n <= 0 {
		log.Printf("Invalid integer for %s (%q), using %d", key, value, defaultValue)
		return defaultValue
	}
	return n
}
