package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string `yaml:"server_port"`
	Environment string `yaml:"environment"`

	// LLM provider selection and retry policy
	LLMProvider       string `yaml:"llm_provider"`
	LLMMaxAttempts    int    `yaml:"llm_max_attempts"`
	LLMRetryBaseDelay string `yaml:"llm_retry_base_delay"`

	GeminiAPIKey    string `yaml:"gemini_api_key"`
	GeminiModel     string `yaml:"gemini_model"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	AnthropicModel  string `yaml:"anthropic_model"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	OpenAIModel     string `yaml:"openai_model"`
	AWSRegion       string `yaml:"aws_region"`
	BedrockModelID  string `yaml:"bedrock_model_id"`

	// Feedback store selection
	StoreBackend        string `yaml:"store_backend"`
	FeedbackSummaryPath string `yaml:"feedback_summary_path"`
	FeedbackLogPath     string `yaml:"feedback_log_path"`

	// Database configuration (gorm backend)
	DBDriver   string `yaml:"db_driver"`
	SQLitePath string `yaml:"sqlite_path"`
	DBHost     string `yaml:"db_host"`
	DBPort     string `yaml:"db_port"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
	DBName     string `yaml:"db_name"`
	DBSSLMode  string `yaml:"db_ssl_mode"`

	// Redis configuration (redis backend)
	RedisURL      string `yaml:"redis_url"`
	RedisHost     string `yaml:"redis_host"`
	RedisPort     string `yaml:"redis_port"`
	RedisPassword string `yaml:"redis_password"`

	// HTTP configuration
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`

	// Feedback digest cron schedule, empty disables it
	DigestSchedule string `yaml:"digest_schedule"`
}

// LoadConfig builds the configuration: an optional YAML file first, then
// environment variables on top, then defaults for whatever is still empty.
// Secrets also accept the *_FILE indirection used for Docker secrets.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	envOverride(&cfg.ServerPort, "SERVER_PORT")
	envOverride(&cfg.Environment, "ENVIRONMENT")

	envOverride(&cfg.LLMProvider, "LLM_PROVIDER")
	if err := envOverrideInt(&cfg.LLMMaxAttempts, "LLM_MAX_ATTEMPTS"); err != nil {
		return nil, err
	}
	envOverride(&cfg.LLMRetryBaseDelay, "LLM_RETRY_BASE_DELAY")

	secretOverride(&cfg.GeminiAPIKey, "GEMINI_API_KEY")
	envOverride(&cfg.GeminiModel, "GEMINI_MODEL")
	secretOverride(&cfg.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	envOverride(&cfg.AnthropicModel, "ANTHROPIC_MODEL")
	secretOverride(&cfg.OpenAIAPIKey, "OPENAI_API_KEY")
	envOverride(&cfg.OpenAIModel, "OPENAI_MODEL")
	envOverride(&cfg.AWSRegion, "AWS_REGION")
	envOverride(&cfg.BedrockModelID, "BEDROCK_MODEL_ID")

	envOverride(&cfg.StoreBackend, "STORE_BACKEND")
	envOverride(&cfg.FeedbackSummaryPath, "FEEDBACK_SUMMARY_PATH")
	envOverride(&cfg.FeedbackLogPath, "FEEDBACK_LOG_PATH")

	envOverride(&cfg.DBDriver, "DB_DRIVER")
	envOverride(&cfg.SQLitePath, "SQLITE_PATH")
	envOverride(&cfg.DBHost, "DB_HOST")
	envOverride(&cfg.DBPort, "DB_PORT")
	envOverride(&cfg.DBUser, "DB_USER")
	secretOverride(&cfg.DBPassword, "DB_PASSWORD")
	envOverride(&cfg.DBName, "DB_NAME")
	envOverride(&cfg.DBSSLMode, "DB_SSL_MODE")

	envOverride(&cfg.RedisURL, "REDIS_URL")
	envOverride(&cfg.RedisHost, "REDIS_HOST")
	envOverride(&cfg.RedisPort, "REDIS_PORT")
	secretOverride(&cfg.RedisPassword, "REDIS_PASSWORD")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = nil
		for _, origin := range strings.Split(origins, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
			}
		}
	}

	envOverride(&cfg.DigestSchedule, "DIGEST_SCHEDULE")

	applyDefaults(cfg)

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.Environment == "" {
		cfg.Environment = string(Development)
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "gemini"
	}
	if cfg.LLMMaxAttempts == 0 {
		cfg.LLMMaxAttempts = 3
	}
	if cfg.LLMRetryBaseDelay == "" {
		cfg.LLMRetryBaseDelay = "1s"
	}
	if cfg.GeminiModel == "" {
		cfg.GeminiModel = "gemini-2.5-flash"
	}
	if cfg.AnthropicModel == "" {
		cfg.AnthropicModel = "claude-3-5-sonnet-20241022"
	}
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}
	if cfg.AWSRegion == "" {
		cfg.AWSRegion = "us-east-1"
	}
	if cfg.BedrockModelID == "" {
		cfg.BedrockModelID = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	}
	if cfg.StoreBackend == "" {
		cfg.StoreBackend = StoreBackendFile
	}
	if cfg.FeedbackSummaryPath == "" {
		cfg.FeedbackSummaryPath = "feedback_summary.json"
	}
	if cfg.FeedbackLogPath == "" {
		cfg.FeedbackLogPath = "feedback_log.jsonl"
	}
	if cfg.DBDriver == "" {
		cfg.DBDriver = DBDriverSQLite
	}
	if cfg.SQLitePath == "" {
		cfg.SQLitePath = "recipechat.db"
	}
	if cfg.DBHost == "" {
		cfg.DBHost = "localhost"
	}
	if cfg.DBPort == "" {
		cfg.DBPort = "5432"
	}
	if cfg.DBUser == "" {
		cfg.DBUser = "postgres"
	}
	if cfg.DBName == "" {
		cfg.DBName = "recipechat"
	}
	if cfg.DBSSLMode == "" {
		cfg.DBSSLMode = "disable"
	}
	if cfg.RedisHost == "" {
		cfg.RedisHost = "localhost"
	}
	if cfg.RedisPort == "" {
		cfg.RedisPort = "6379"
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}
}

func envOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
	}
}

func envOverrideInt(field *int, envKey string) error {
	val := os.Getenv(envKey)
	if val == "" {
		return nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", envKey, val, err)
	}
	*field = parsed
	return nil
}

// secretOverride applies the env value, or the content of the file named
// by the *_FILE variant when only that is set.
func secretOverride(field *string, envKey string) {
	if val := os.Getenv(envKey); val != "" {
		*field = val
		return
	}
	if path := os.Getenv(envKey + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			*field = strings.TrimSpace(string(data))
		}
	}
}
