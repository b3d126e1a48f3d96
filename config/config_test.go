package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pointConfigAway(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestLoadConfigDefaults(t *testing.T) {
	pointConfigAway(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, 3, cfg.LLMMaxAttempts)
	assert.Equal(t, time.Second, cfg.RetryBaseDelay())
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.AnthropicModel)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, StoreBackendFile, cfg.StoreBackend)
	assert.Equal(t, "feedback_summary.json", cfg.FeedbackSummaryPath)
	assert.Equal(t, "feedback_log.jsonl", cfg.FeedbackLogPath)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.DigestSchedule)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	pointConfigAway(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "test-key")
	t.Setenv("LLM_MAX_ATTEMPTS", "5")
	t.Setenv("LLM_RETRY_BASE_DELAY", "250ms")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("DIGEST_SCHEDULE", "@hourly")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "anthropic", cfg.LLMProvider)
	assert.Equal(t, "test-key", cfg.AnthropicAPIKey)
	assert.Equal(t, 5, cfg.LLMMaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.RetryBaseDelay())
	assert.Equal(t, StoreBackendRedis, cfg.StoreBackend)
	assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "@hourly", cfg.DigestSchedule)
}

func TestLoadConfigFromYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	yamlBody := `server_port: "9999"
llm_provider: openai
openai_api_key: yaml-key
store_backend: gorm
db_driver: sqlite
sqlite_path: data/app.db
cors_allowed_origins:
  - http://localhost:5173
digest_schedule: "0 8 * * *"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlBody), 0644))
	t.Setenv("CONFIG_PATH", configPath)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "yaml-key", cfg.OpenAIAPIKey)
	assert.Equal(t, StoreBackendGorm, cfg.StoreBackend)
	assert.Equal(t, DBDriverSQLite, cfg.DBDriver)
	assert.Equal(t, "data/app.db", cfg.SQLitePath)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "0 8 * * *", cfg.DigestSchedule)
}

func TestLoadConfigEnvBeatsYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("llm_provider: openai\n"), 0644))
	t.Setenv("CONFIG_PATH", configPath)
	t.Setenv("LLM_PROVIDER", "gemini")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLMProvider)
}

func TestSecretFileIndirection(t *testing.T) {
	pointConfigAway(t)

	keyFile := filepath.Join(t.TempDir(), "gemini_key")
	require.NoError(t, os.WriteFile(keyFile, []byte("file-secret\n"), 0600))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_FILE", keyFile)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.GeminiAPIKey)

	t.Run("direct env value wins over the file", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-secret")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "env-secret", cfg.GeminiAPIKey)
	})
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name     string
		envKey   string
		envValue string
		wantIn   string
	}{
		{"rejects unknown store backend", "STORE_BACKEND", "cloud", "store_backend"},
		{"rejects unknown provider", "LLM_PROVIDER", "cohere", "llm_provider"},
		{"rejects negative attempts", "LLM_MAX_ATTEMPTS", "-1", "llm_max_attempts"},
		{"rejects unparseable delay", "LLM_RETRY_BASE_DELAY", "fast", "llm_retry_base_delay"},
		{"rejects a non-numeric port", "SERVER_PORT", "http", "server_port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pointConfigAway(t)
			t.Setenv(tt.envKey, tt.envValue)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestPostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "recipes",
		DBPassword: "shh",
		DBName:     "recipechat",
		DBSSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=recipes password=shh dbname=recipechat sslmode=require",
		cfg.PostgresDSN())
}

func TestRedisAddr(t *testing.T) {
	cfg := &Config{RedisHost: "cache.internal", RedisPort: "6380"}
	assert.Equal(t, "cache.internal:6380", cfg.RedisAddr())
}
