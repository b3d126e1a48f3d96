package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validStoreBackends = []string{StoreBackendFile, StoreBackendGorm, StoreBackendRedis}
	validDBDrivers     = []string{DBDriverSQLite, DBDriverPostgres}
	validLLMProviders  = []string{"gemini", "google", "anthropic", "claude", "openai", "bedrock", "aws"}
)

// ValidateConfig checks the cross-field constraints that would otherwise
// only surface mid-request.
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errors = append(errors, ValidationError{"server_port", fmt.Sprintf("must be a port number, got %q", cfg.ServerPort)}.Error())
	}

	if !contains(validStoreBackends, cfg.StoreBackend) {
		errors = append(errors, ValidationError{"store_backend", fmt.Sprintf("must be one of %s, got %q", strings.Join(validStoreBackends, ", "), cfg.StoreBackend)}.Error())
	}

	if cfg.StoreBackend == StoreBackendGorm && !contains(validDBDrivers, cfg.DBDriver) {
		errors = append(errors, ValidationError{"db_driver", fmt.Sprintf("must be one of %s, got %q", strings.Join(validDBDrivers, ", "), cfg.DBDriver)}.Error())
	}

	if !contains(validLLMProviders, cfg.LLMProvider) {
		errors = append(errors, ValidationError{"llm_provider", fmt.Sprintf("must be one of %s, got %q", strings.Join(validLLMProviders, ", "), cfg.LLMProvider)}.Error())
	}

	if cfg.LLMMaxAttempts < 1 {
		errors = append(errors, ValidationError{"llm_max_attempts", fmt.Sprintf("must be >= 1, got %d", cfg.LLMMaxAttempts)}.Error())
	}

	if delay, err := time.ParseDuration(cfg.LLMRetryBaseDelay); err != nil || delay <= 0 {
		errors = append(errors, ValidationError{"llm_retry_base_delay", fmt.Sprintf("must be a positive duration, got %q", cfg.LLMRetryBaseDelay)}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}

// RetryBaseDelay returns the parsed retry delay. ValidateConfig already
// guarantees it parses.
func (c *Config) RetryBaseDelay() time.Duration {
	delay, err := time.ParseDuration(c.LLMRetryBaseDelay)
	if err != nil {
		return time.Second
	}
	return delay
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
