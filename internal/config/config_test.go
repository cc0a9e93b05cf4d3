package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Run("returns environment variable value when set", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_VAR", "custom_value")

		result := getEnv("TEST_CONFIG_VAR", "default_value")

		assert.Equal(t, "custom_value", result)
	})

	t.Run("returns default value when env var not set", func(t *testing.T) {
		result := getEnv("NONEXISTENT_CONFIG_VAR_12345", "default_value")

		assert.Equal(t, "default_value", result)
	})

	t.Run("returns default value when env var is empty string", func(t *testing.T) {
		t.Setenv("EMPTY_CONFIG_VAR", "")

		result := getEnv("EMPTY_CONFIG_VAR", "default_value")

		assert.Equal(t, "default_value", result)
	})
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
	}{
		{"minutes", "15m", 15 * time.Minute},
		{"hours", "24h", 24 * time.Hour},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseDuration(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("loads config with all required env vars", func(t *testing.T) {
		// Set required env vars
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")
		t.Setenv("JWT_SECRET", "test-secret-key")

		// Set optional env vars to test custom values
		t.Setenv("SERVER_PORT", "3000")
		t.Setenv("GIN_MODE", "release")
		t.Setenv("APP_ENV", "production")
		t.Setenv("REDIS_URI", "redis.example.com:6379")
		t.Setenv("JWT_EXPIRY", "30m")
		t.Setenv("S3_ENDPOINT", "s3.example.com:9000")
		t.Setenv("S3_ACCESS_KEY", "myaccesskey")
		t.Setenv("S3_SECRET_KEY", "mysecretkey")
		t.Setenv("S3_BUCKET", "my-bucket")
		t.Setenv("S3_USE_SSL", "true")
		t.Setenv("BREVO_API_KEY", "brevo-key")
		t.Setenv("BREVO_SENDER_EMAIL", "noreply@example.com")

		cfg := Load()

		require.NotNil(t, cfg)

		// Required fields
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "testdb", cfg.MongoDatabase)
		assert.Equal(t, "test-secret-key", cfg.JWTSecret)

		// Optional fields with custom values
		assert.Equal(t, "3000", cfg.ServerPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "redis.example.com:6379", cfg.RedisURI)
		assert.Equal(t, 30*time.Minute, cfg.JWTExpiry)
		assert.Equal(t, "s3.example.com:9000", cfg.S3Endpoint)
		assert.Equal(t, "myaccesskey", cfg.S3AccessKey)
		assert.Equal(t, "mysecretkey", cfg.S3SecretKey)
		assert.Equal(t, "my-bucket", cfg.S3Bucket)
		assert.True(t, cfg.S3UseSSL)
		assert.Equal(t, "brevo-key", cfg.BrevoAPIKey)
		assert.Equal(t, "noreply@example.com", cfg.BrevoSenderEmail)
	})

	t.Run("applies defaults for optional vars", func(t *testing.T) {
		t.Setenv("MONGO_URI", "mongodb://localhost:27017")
		t.Setenv("MONGO_DATABASE", "testdb")
		t.Setenv("JWT_SECRET", "test-secret-key")

		// Make sure optional vars are unset
		t.Setenv("SERVER_PORT", "")
		t.Setenv("GIN_MODE", "")
		t.Setenv("APP_ENV", "")
		t.Setenv("JWT_EXPIRY", "")
		t.Setenv("S3_BUCKET", "")
		t.Setenv("BREVO_SENDER_NAME", "")

		cfg := Load()

		require.NotNil(t, cfg)
		assert.Equal(t, "8080", cfg.ServerPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
		assert.Equal(t, "skillswap-photos", cfg.S3Bucket)
		assert.Equal(t, "SkillSwap", cfg.BrevoSenderName)
		assert.False(t, cfg.S3UseSSL)
	})
}

func TestIsProduction(t *testing.T) {
	assert.True(t, (&Config{Environment: "production"}).IsProduction())
	assert.False(t, (&Config{Environment: "development"}).IsProduction())
}
